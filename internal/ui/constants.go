package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCalculate = "🔍"
	IconExport    = "💾"
	IconPlaylist  = "📋"
	IconChannel   = "👤"
	IconDuration  = "⏱"
	IconError     = "❌"
)

// Text fragments
const (
	SecondsLabelFormat = "%.0f seconds"
	CountLabelFormat   = "%d"
)

// Layout sizing
const (
	ResultCardPadding   float32 = 12
	StatValueMinWidth   float32 = 120
	APIKeyDialogWidth   float32 = 520
	APIKeyDialogHeight  float32 = 340
	ResultsScrollHeight float32 = 320
)

// External URLs
const (
	GoogleConsoleURL   = "https://console.cloud.google.com/apis/api/youtube.googleapis.com"
	ExamplePlaylistURL = "https://www.youtube.com/playlist?list=PLxxxxxx"
)

// File export
const (
	ReportFileExtension = ".txt"
	DefaultReportName   = "playlist-duration.txt"
)
