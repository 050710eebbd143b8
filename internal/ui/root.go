package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/yt-playlist-duration/internal/calc"
	"github.com/ytget/yt-playlist-duration/internal/config"
	"github.com/ytget/yt-playlist-duration/internal/export"
	"github.com/ytget/yt-playlist-duration/internal/model"
	"github.com/ytget/yt-playlist-duration/internal/youtube"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	credentials  *config.CredentialStore
	localization *Localization

	// calcSvc stays nil until an API key is configured.
	calcSvc *calc.Service

	inputEntry   *widget.Entry
	calculateBtn *widget.Button
	exportBtn    *widget.Button

	progressLabel     *widget.Label
	progressSpinner   *widget.ProgressBarInfinite
	progressContainer *fyne.Container

	resultsContainer *fyne.Container
	lastResult       *model.CalculationResult

	// Exactly one calculation may run at a time.
	busyMutex sync.Mutex
	busy      bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, credentials *config.CredentialStore) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		credentials:  credentials,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.initCalculator()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Input row
	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPlaylist))
	ui.inputEntry.OnSubmitted = func(string) {
		ui.onCalculateClick()
	}

	ui.calculateBtn = widget.NewButton(IconCalculate+" "+ui.localization.GetText(KeyCalculate), ui.onCalculateClick)
	ui.calculateBtn.Importance = widget.HighImportance

	exampleLabel := widget.NewLabel(ui.localization.GetText(KeyExampleHint))
	exampleLabel.TextStyle = fyne.TextStyle{Italic: true}

	inputRow := container.NewBorder(nil, nil, nil, ui.calculateBtn, ui.inputEntry)
	topPanel := container.NewVBox(inputRow, exampleLabel)

	// Progress panel under the input (hidden while idle)
	ui.progressLabel = widget.NewLabel(ui.localization.GetText(KeyReady))
	ui.progressSpinner = widget.NewProgressBarInfinite()
	ui.progressContainer = container.NewVBox(ui.progressLabel, ui.progressSpinner)
	ui.progressContainer.Hide()

	// Results area, populated after a successful run
	ui.resultsContainer = container.NewVBox()

	ui.exportBtn = widget.NewButton(IconExport+" "+ui.localization.GetText(KeyExport), ui.onExportClick)
	ui.exportBtn.Disable()

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.progressContainer), // top
		container.NewPadded(ui.exportBtn),                 // bottom
		nil,                                               // left
		nil,                                               // right
		container.NewVScroll(ui.resultsContainer),         // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	apiKeyItem := fyne.NewMenuItem(ui.localization.GetText(KeyAPIKeyTitle), ui.onShowAPIKeyDialog)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), apiKeyItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// initCalculator wires the calculation service once a credential exists,
// otherwise prompts for one.
func (ui *RootUI) initCalculator() {
	apiKey, err := ui.credentials.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load API credential")
	}

	if apiKey == "" {
		ui.onShowAPIKeyDialog()
		return
	}

	ui.setAPIKey(apiKey)
}

// setAPIKey (re)creates the pipeline service for the given credential.
func (ui *RootUI) setAPIKey(apiKey string) {
	ui.calcSvc = calc.NewService(youtube.NewClient(apiKey))
}

// onShowAPIKeyDialog shows the credential dialog
func (ui *RootUI) onShowAPIKeyDialog() {
	NewAPIKeyDialog(ui.window, ui.app, ui.credentials, ui.localization, ui.setAPIKey).Show()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterPlaylist))
	ui.calculateBtn.SetText(IconCalculate + " " + ui.localization.GetText(KeyCalculate))
	ui.exportBtn.SetText(IconExport + " " + ui.localization.GetText(KeyExport))

	if ui.lastResult != nil {
		ui.renderResult(ui.lastResult)
	}
}

// tryAcquire flips the busy flag; returns false when a run is in flight.
func (ui *RootUI) tryAcquire() bool {
	ui.busyMutex.Lock()
	defer ui.busyMutex.Unlock()

	if ui.busy {
		return false
	}
	ui.busy = true
	return true
}

func (ui *RootUI) release() {
	ui.busyMutex.Lock()
	defer ui.busyMutex.Unlock()
	ui.busy = false
}

// onCalculateClick handles the calculate button click
func (ui *RootUI) onCalculateClick() {
	input := strings.TrimSpace(ui.inputEntry.Text)
	if input == "" {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPleaseEnterInput)), ui.window.Canvas())
		return
	}

	if ui.calcSvc == nil {
		ui.onShowAPIKeyDialog()
		return
	}

	if !ui.tryAcquire() {
		return
	}

	ui.calculateBtn.Disable()
	ui.calculateBtn.SetText(ui.localization.GetText(KeyCalculating))
	ui.progressLabel.SetText(ui.localization.GetText(KeyReady))
	ui.progressContainer.Show()

	log.Info().Str("input", input).Msg("starting calculation")

	go ui.runCalculation(input)
}

// runCalculation executes the pipeline off the UI thread. Results and
// progress reach widgets only through fyne.Do.
func (ui *RootUI) runCalculation(input string) {
	result, err := ui.calcSvc.Calculate(context.Background(), input, func(stage string) {
		fyne.Do(func() {
			ui.progressLabel.SetText(stage)
		})
	})

	ui.release()

	fyne.Do(func() {
		ui.progressContainer.Hide()
		ui.calculateBtn.SetText(IconCalculate + " " + ui.localization.GetText(KeyCalculate))
		ui.calculateBtn.Enable()

		if err != nil {
			ui.showError(err)
			return
		}

		ui.lastResult = result
		ui.renderResult(result)
		ui.exportBtn.Enable()
		ui.inputEntry.SetText("")
	})
}

// showError surfaces one user-facing message; the app stays idle and usable.
func (ui *RootUI) showError(err error) {
	log.Error().Err(err).Msg("calculation failed")
	dialog.ShowError(fmt.Errorf("%s:\n%w", ui.localization.GetText(KeyCalculationFailed), err), ui.window)
}

// renderResult rebuilds the results area for a finished run.
func (ui *RootUI) renderResult(result *model.CalculationResult) {
	ui.resultsContainer.RemoveAll()

	titleLabel := widget.NewLabel(IconPlaylist + " " + result.Playlist.Title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	channelLabel := widget.NewLabel(IconChannel + " " + result.Playlist.Channel)

	// Headline: total duration in compound and raw-seconds form
	totalHeading := widget.NewLabel(IconDuration + " " + ui.localization.GetText(KeyTotalDuration))
	totalHeading.TextStyle = fyne.TextStyle{Bold: true}
	totalValue := widget.NewLabel(calc.FormatDuration(result.TotalSeconds))
	totalValue.TextStyle = fyne.TextStyle{Bold: true}
	secondsValue := widget.NewLabel(fmt.Sprintf(SecondsLabelFormat, result.TotalSeconds))

	statsGrid := container.NewGridWithColumns(2,
		ui.statCard(ui.localization.GetText(KeyProcessedVideos), fmt.Sprintf(CountLabelFormat, result.Stats.Processed)),
		ui.statCard(ui.localization.GetText(KeyAverageDuration), calc.FormatDuration(result.AverageSeconds)),
		ui.statCard(ui.localization.GetText(KeyLongestVideo), calc.FormatDuration(result.LongestSeconds)),
		ui.statCard(ui.localization.GetText(KeyShortestVideo), calc.FormatDuration(result.ShortestSeconds)),
		ui.statCard(ui.localization.GetText(KeyMedianDuration), calc.FormatDuration(result.MedianSeconds)),
		ui.statCard(ui.localization.GetText(KeyFailedVideos), fmt.Sprintf(CountLabelFormat, result.Stats.Failed)),
	)

	ui.resultsContainer.Add(container.NewVBox(
		titleLabel,
		channelLabel,
		widget.NewSeparator(),
		container.NewCenter(container.NewVBox(totalHeading, container.NewCenter(totalValue), container.NewCenter(secondsValue))),
		widget.NewSeparator(),
		statsGrid,
	))
	ui.resultsContainer.Refresh()
}

// statCard renders one name/value cell of the statistics grid.
func (ui *RootUI) statCard(name, value string) fyne.CanvasObject {
	nameLabel := widget.NewLabel(name)
	valueLabel := widget.NewLabel(value)
	valueLabel.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(container.NewCenter(nameLabel), container.NewCenter(valueLabel))
}

// onExportClick writes the last result as a plaintext report to a
// user-chosen path.
func (ui *RootUI) onExportClick() {
	if ui.lastResult == nil {
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		if err := export.WriteReport(writer, ui.lastResult); err != nil {
			log.Error().Err(err).Msg("report export failed")
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyExportFailed), err), ui.window)
			return
		}

		ui.settings.SetExportDirectory(filepath.Dir(writer.URI().Path()))
		log.Info().Str("path", writer.URI().Path()).Msg("report exported")
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyExportDone)), ui.window.Canvas())
	}, ui.window)

	fd.SetFileName(DefaultReportName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{ReportFileExtension}))
	fd.Show()
}
