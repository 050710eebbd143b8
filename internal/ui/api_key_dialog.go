package ui

import (
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/yt-playlist-duration/internal/config"
)

// APIKeyDialog collects the YouTube Data API credential on first run and
// persists it through the credential store.
type APIKeyDialog struct {
	window       fyne.Window
	app          fyne.App
	credentials  *config.CredentialStore
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func(apiKey string)

	keyEntry *widget.Entry
}

// NewAPIKeyDialog creates the credential dialog. onSaved is invoked after the
// key has been validated non-empty and written to disk.
func NewAPIKeyDialog(window fyne.Window, app fyne.App, credentials *config.CredentialStore, localization *Localization, onSaved func(apiKey string)) *APIKeyDialog {
	d := &APIKeyDialog{
		window:       window,
		app:          app,
		credentials:  credentials,
		localization: localization,
		onSaved:      onSaved,
	}

	d.createUI()
	return d
}

// Show displays the dialog
func (d *APIKeyDialog) Show() {
	d.dialog.Show()
	d.window.Canvas().Focus(d.keyEntry)
}

// createUI creates the dialog content
func (d *APIKeyDialog) createUI() {
	instructions := widget.NewLabel(d.localization.GetText(KeyAPIKeyHint))
	instructions.Wrapping = fyne.TextWrapWord

	d.keyEntry = widget.NewPasswordEntry()
	d.keyEntry.SetPlaceHolder(d.localization.GetText(KeyAPIKeyLabel))

	consoleBtn := widget.NewButton(d.localization.GetText(KeyOpenConsole), d.onOpenConsole)
	consoleBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		instructions,
		widget.NewSeparator(),
		widget.NewLabel(d.localization.GetText(KeyAPIKeyLabel)+":"),
		d.keyEntry,
		consoleBtn,
	)

	d.dialog = dialog.NewCustomConfirm(
		d.localization.GetText(KeyAPIKeyTitle),
		d.localization.GetText(KeySave),
		d.localization.GetText(KeyCancel),
		form,
		d.onSave,
		d.window,
	)

	d.dialog.Resize(fyne.NewSize(APIKeyDialogWidth, APIKeyDialogHeight))
}

// onOpenConsole opens the Google Cloud Console page for the Data API
func (d *APIKeyDialog) onOpenConsole() {
	consoleURL, err := url.Parse(GoogleConsoleURL)
	if err != nil {
		return
	}
	if err := d.app.OpenURL(consoleURL); err != nil {
		log.Warn().Err(err).Msg("could not open Google Console URL")
	}
}

// onSave persists the entered key
func (d *APIKeyDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	apiKey := strings.TrimSpace(d.keyEntry.Text)
	if apiKey == "" {
		dialog.ShowInformation(
			d.localization.GetText(KeyAPIKeyTitle),
			d.localization.GetText(KeyAPIKeyMissing),
			d.window,
		)
		return
	}

	if err := d.credentials.Save(apiKey); err != nil {
		log.Error().Err(err).Msg("failed to save API credential")
		dialog.ShowError(err, d.window)
		return
	}

	if d.onSaved != nil {
		d.onSaved(apiKey)
	}

	dialog.ShowInformation(
		d.localization.GetText(KeyAPIKeyTitle),
		d.localization.GetText(KeyAPIKeySaved),
		d.window,
	)
}
