package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/yt-playlist-duration/internal/config"
	"github.com/ytget/yt-playlist-duration/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-playlist-duration"
	AppName = "YT Playlist Duration"

	WindowWidth  = 760
	WindowHeight = 640
)

func main() {
	setupLogging()
	log.Info().Str("version", version).Msg("starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	credentials, err := config.NewCredentialStore()
	if err != nil {
		// Fall back to the working directory; the app still runs, the key
		// just lands next to the binary.
		log.Warn().Err(err).Msg("user config dir unavailable, storing credential in working directory")
		credentials = config.NewCredentialStoreAt(".env")
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, credentials)

	// Show and run
	myWindow.ShowAndRun()
}

// setupLogging configures the global zerolog logger for console output.
func setupLogging() {
	level := zerolog.InfoLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
