package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyAppSubtitle       = "app_subtitle"
	KeyCalculate         = "calculate"
	KeyCalculating       = "calculating"
	KeyExport            = "export"
	KeyEnterPlaylist     = "enter_playlist"
	KeyExampleHint       = "example_hint"
	KeyPleaseEnterInput  = "please_enter_input"
	KeyReady             = "ready"
	KeyCalculationFailed = "calculation_failed"
	KeyResults           = "results"
	KeyTotalDuration     = "total_duration"
	KeyProcessedVideos   = "processed_videos"
	KeyFailedVideos      = "failed_videos"
	KeyAverageDuration   = "average_duration"
	KeyLongestVideo      = "longest_video"
	KeyShortestVideo     = "shortest_video"
	KeyMedianDuration    = "median_duration"
	KeyExportDone        = "export_done"
	KeyExportFailed      = "export_failed"
	KeyAPIKeyTitle       = "api_key_title"
	KeyAPIKeyHint        = "api_key_hint"
	KeyAPIKeyLabel       = "api_key_label"
	KeyAPIKeyMissing     = "api_key_missing"
	KeyAPIKeySaved       = "api_key_saved"
	KeyOpenConsole       = "open_console"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyLanguage          = "language"
	KeyFile              = "file"
	KeySettings          = "settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Playlist Duration Calculator",
		KeyAppSubtitle:       "Calculate total duration of any YouTube playlist",
		KeyCalculate:         "Calculate Duration",
		KeyCalculating:       "Calculating...",
		KeyExport:            "Export Results",
		KeyEnterPlaylist:     "Enter YouTube Playlist URL or ID",
		KeyExampleHint:       "Example: " + ExamplePlaylistURL,
		KeyPleaseEnterInput:  "Please enter a playlist URL or ID",
		KeyReady:             "Ready to calculate...",
		KeyCalculationFailed: "Failed to calculate playlist duration",
		KeyResults:           "Results",
		KeyTotalDuration:     "Total Duration",
		KeyProcessedVideos:   "Videos Processed",
		KeyFailedVideos:      "Videos Failed",
		KeyAverageDuration:   "Average Duration",
		KeyLongestVideo:      "Longest Video",
		KeyShortestVideo:     "Shortest Video",
		KeyMedianDuration:    "Median Duration",
		KeyExportDone:        "Results exported",
		KeyExportFailed:      "Failed to export results",
		KeyAPIKeyTitle:       "YouTube API Key Required",
		KeyAPIKeyHint:        "To use this application you need a YouTube Data API v3 key:\n1. Go to Google Cloud Console\n2. Create a project or select an existing one\n3. Enable YouTube Data API v3\n4. Create an API key and enter it below",
		KeyAPIKeyLabel:       "API Key",
		KeyAPIKeyMissing:     "YouTube API key is not configured",
		KeyAPIKeySaved:       "API key saved successfully!",
		KeyOpenConsole:       "Open Google Console",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyLanguage:          "Language",
		KeyFile:              "File",
		KeySettings:          "Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Калькулятор длительности плейлистов YouTube",
		KeyAppSubtitle:       "Подсчёт общей длительности любого плейлиста YouTube",
		KeyCalculate:         "Рассчитать длительность",
		KeyCalculating:       "Расчёт...",
		KeyExport:            "Экспорт результатов",
		KeyEnterPlaylist:     "Введите URL или ID плейлиста YouTube",
		KeyExampleHint:       "Пример: " + ExamplePlaylistURL,
		KeyPleaseEnterInput:  "Пожалуйста, введите URL или ID плейлиста",
		KeyReady:             "Готов к расчёту...",
		KeyCalculationFailed: "Не удалось рассчитать длительность плейлиста",
		KeyResults:           "Результаты",
		KeyTotalDuration:     "Общая длительность",
		KeyProcessedVideos:   "Обработано видео",
		KeyFailedVideos:      "Пропущено видео",
		KeyAverageDuration:   "Средняя длительность",
		KeyLongestVideo:      "Самое длинное видео",
		KeyShortestVideo:     "Самое короткое видео",
		KeyMedianDuration:    "Медианная длительность",
		KeyExportDone:        "Результаты экспортированы",
		KeyExportFailed:      "Не удалось экспортировать результаты",
		KeyAPIKeyTitle:       "Требуется ключ YouTube API",
		KeyAPIKeyHint:        "Для работы приложения нужен ключ YouTube Data API v3:\n1. Откройте Google Cloud Console\n2. Создайте или выберите проект\n3. Включите YouTube Data API v3\n4. Создайте ключ API и введите его ниже",
		KeyAPIKeyLabel:       "Ключ API",
		KeyAPIKeyMissing:     "Ключ YouTube API не настроен",
		KeyAPIKeySaved:       "Ключ API успешно сохранён!",
		KeyOpenConsole:       "Открыть Google Console",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyLanguage:          "Язык",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Calculadora de Duração de Playlists do YouTube",
		KeyAppSubtitle:       "Calcule a duração total de qualquer playlist do YouTube",
		KeyCalculate:         "Calcular Duração",
		KeyCalculating:       "Calculando...",
		KeyExport:            "Exportar Resultados",
		KeyEnterPlaylist:     "Digite a URL ou ID da playlist do YouTube",
		KeyExampleHint:       "Exemplo: " + ExamplePlaylistURL,
		KeyPleaseEnterInput:  "Por favor, digite uma URL ou ID de playlist",
		KeyReady:             "Pronto para calcular...",
		KeyCalculationFailed: "Falha ao calcular a duração da playlist",
		KeyResults:           "Resultados",
		KeyTotalDuration:     "Duração Total",
		KeyProcessedVideos:   "Vídeos Processados",
		KeyFailedVideos:      "Vídeos Ignorados",
		KeyAverageDuration:   "Duração Média",
		KeyLongestVideo:      "Vídeo Mais Longo",
		KeyShortestVideo:     "Vídeo Mais Curto",
		KeyMedianDuration:    "Duração Mediana",
		KeyExportDone:        "Resultados exportados",
		KeyExportFailed:      "Falha ao exportar resultados",
		KeyAPIKeyTitle:       "Chave da API do YouTube Necessária",
		KeyAPIKeyHint:        "Para usar este aplicativo você precisa de uma chave YouTube Data API v3:\n1. Acesse o Google Cloud Console\n2. Crie ou selecione um projeto\n3. Ative a YouTube Data API v3\n4. Crie uma chave de API e insira-a abaixo",
		KeyAPIKeyLabel:       "Chave de API",
		KeyAPIKeyMissing:     "A chave da API do YouTube não está configurada",
		KeyAPIKeySaved:       "Chave de API salva com sucesso!",
		KeyOpenConsole:       "Abrir Google Console",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyLanguage:          "Idioma",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
	}
}
