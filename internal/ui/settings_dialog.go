package ui

import (
	"path/filepath"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/config"
	"github.com/ytget/juice-tracker/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	databasePathEntry *widget.Entry
	backendSelect     *widget.Select
	cacheTTLEntry     *widget.Entry
	logLevelSelect    *widget.Select
	languageSelect    *widget.Select

	onSaved func(restartRequired bool)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(restartRequired bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Database file selection
	sd.databasePathEntry = widget.NewEntry()
	sd.databasePathEntry.SetPlaceHolder(platform.DatabaseFileName)

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	databasePathRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.databasePathEntry)

	sd.backendSelect = widget.NewSelect(sd.settings.GetStorageBackendOptions(), nil)

	sd.cacheTTLEntry = widget.NewEntry()
	sd.cacheTTLEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxCacheTTLSeconds))

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDatabasePath)+":"),
		databasePathRow,

		widget.NewLabel(sd.localization.GetText(KeyStorageBackend)+":"),
		sd.backendSelect,

		widget.NewLabel(sd.localization.GetText(KeyCacheTTL)+":"),
		sd.cacheTTLEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.databasePathEntry.SetText(sd.settings.GetDatabasePath())
	sd.backendSelect.SetSelected(sd.settings.GetStorageBackend())
	sd.cacheTTLEntry.SetText(strconv.Itoa(int(sd.settings.GetCacheTTL().Seconds())))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory picks the folder that holds the database file
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.databasePathEntry.SetText(filepath.Join(uri.Path(), platform.DatabaseFileName))
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
}

// apply writes the form values to settings and reports whether the store
// has to be reopened for them to take effect
func (sd *SettingsDialog) apply() (restartRequired bool) {
	if path := sd.databasePathEntry.Text; path != "" && path != sd.settings.GetDatabasePath() {
		sd.settings.SetDatabasePath(path)
		restartRequired = true
	}

	if backend := sd.backendSelect.Selected; backend != "" && backend != sd.settings.GetStorageBackend() {
		sd.settings.SetStorageBackend(backend)
		restartRequired = true
	}

	if ttlStr := sd.cacheTTLEntry.Text; ttlStr != "" {
		if ttl, err := strconv.Atoi(ttlStr); err == nil {
			ttl = config.ClampCacheTTLSeconds(ttl)
			if ttl != int(sd.settings.GetCacheTTL().Seconds()) {
				restartRequired = true
			}
			sd.settings.SetCacheTTLSeconds(ttl)
		}
	}

	if levelStr := sd.logLevelSelect.Selected; levelStr != "" {
		if level, err := zerolog.ParseLevel(levelStr); err == nil {
			sd.settings.SetLogLevel(level)
			zerolog.SetGlobalLevel(level)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	log.Info().Bool("restart_required", restartRequired).Msg("settings saved")
	if sd.onSaved != nil {
		sd.onSaved(restartRequired)
	}
	return restartRequired
}
