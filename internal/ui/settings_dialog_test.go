package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/juice-tracker/internal/config"
	"github.com/ytget/juice-tracker/internal/store"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *[]bool) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	var saved []bool
	sd := NewSettingsDialog(settings, NewLocalization(), w, func(restartRequired bool) {
		saved = append(saved, restartRequired)
	})
	sd.loadCurrentSettings()
	return sd, settings, &saved
}

func TestSettingsDialogLoadsCurrentSettings(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	assert.Equal(t, settings.GetDatabasePath(), sd.databasePathEntry.Text)
	assert.Equal(t, store.BackendSQLite, sd.backendSelect.Selected)
	assert.Equal(t, "30", sd.cacheTTLEntry.Text)
	assert.Equal(t, "info", sd.logLevelSelect.Selected)
	assert.Equal(t, config.DefaultLanguage, sd.languageSelect.Selected)
}

func TestSettingsDialogApplyWithoutStorageChange(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	sd, settings, saved := newTestSettingsDialog(t)

	sd.logLevelSelect.SetSelected("debug")
	sd.languageSelect.SetSelected("ru")

	assert.False(t, sd.apply())
	assert.Equal(t, []bool{false}, *saved)
	assert.Equal(t, zerolog.DebugLevel, settings.GetLogLevel())
	assert.Equal(t, "ru", settings.GetLanguage())
}

func TestSettingsDialogApplyStorageChange(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	sd, settings, saved := newTestSettingsDialog(t)

	sd.backendSelect.SetSelected(store.BackendMemory)
	sd.cacheTTLEntry.SetText("120")
	sd.databasePathEntry.SetText("/tmp/other/juices.db")

	assert.True(t, sd.apply())
	assert.Equal(t, []bool{true}, *saved)
	assert.Equal(t, store.BackendMemory, settings.GetStorageBackend())
	assert.Equal(t, 2*time.Minute, settings.GetCacheTTL())
	assert.Equal(t, "/tmp/other/juices.db", settings.GetDatabasePath())
}

func TestSettingsDialogIgnoresBadTTL(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	sd.cacheTTLEntry.SetText("soon")
	assert.False(t, sd.apply())
	assert.Equal(t, config.DefaultCacheTTLSeconds*time.Second, settings.GetCacheTTL())
}

func TestSettingsDialogClampedTTLNeedsNoRestart(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)
	settings.SetCacheTTLSeconds(config.MaxCacheTTLSeconds)

	sd.cacheTTLEntry.SetText("5000")
	assert.False(t, sd.apply(), "5000 clamps to the stored maximum")
	assert.Equal(t, config.MaxCacheTTLSeconds*time.Second, settings.GetCacheTTL())

	sd.cacheTTLEntry.SetText("-3")
	assert.True(t, sd.apply())
	assert.Equal(t, time.Duration(0), settings.GetCacheTTL())
}
