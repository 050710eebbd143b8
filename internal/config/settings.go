package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage  = "app_language"
	KeyExportDir = "last_export_directory"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration backed by Fyne preferences.
// The API credential is handled separately by CredentialStore because it is
// shared with the environment and stored as a plain key=value file.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetExportDirectory returns the directory of the last report export, or ""
// when no export has happened yet.
func (s *Settings) GetExportDirectory() string {
	return s.app.Preferences().String(KeyExportDir)
}

// SetExportDirectory remembers the directory of the last report export
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
