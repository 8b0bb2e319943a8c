package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/config"
	"github.com/ytget/juice-tracker/internal/entry"
	"github.com/ytget/juice-tracker/internal/listdiff"
	"github.com/ytget/juice-tracker/internal/model"
	"github.com/ytget/juice-tracker/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        store.Store
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	addBtn      *widget.Button
	settingsBtn *widget.Button
	juiceList   *widget.List
	emptyLabel  *widget.Label

	// rows shown by juiceList; replaced as a whole on every reload
	juices      []model.Juice
	juicesMutex sync.RWMutex

	// current add/edit session, nil when no dialog is open
	entryDialog *EntryDialog
}

// NewRootUI creates and initializes the main UI and loads the stored entries
func NewRootUI(window fyne.Window, s store.Store, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		store:        s,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Store mutations may happen off the UI thread
	s.SetUpdateCallback(ui.onStoreUpdate)

	if err := ui.Reload(context.Background()); err != nil {
		ui.showError(KeyErrorLoading, err)
	}

	log.Debug().Msg("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addBtn = widget.NewButton(IconAdd+" "+ui.localization.GetText(KeyAddJuice), func() {
		ui.ShowEntryDialog(0)
	})
	ui.addBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	topPanel := container.NewBorder(nil, nil, ui.settingsBtn, ui.addBtn, title)

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoJuices))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Hide()

	rowSize := ui.mobile.RowMinSize()
	ui.juiceList = widget.NewList(
		ui.juiceCount,
		func() fyne.CanvasObject {
			return NewJuiceRow(model.NewJuice(), ui.localization, rowSize)
		},
		ui.updateJuiceItem,
	)
	ui.juiceList.OnSelected = func(id widget.ListItemID) {
		ui.juiceList.UnselectAll()
		if juice, ok := ui.juiceAt(id); ok {
			ui.ShowEntryDialog(juice.ID)
		}
	}

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		container.NewStack(ui.juiceList, container.NewCenter(ui.emptyLabel)),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.addBtn.SetText(IconAdd + " " + ui.localization.GetText(KeyAddJuice))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoJuices))
	ui.juiceList.Refresh()
}

func (ui *RootUI) juiceCount() int {
	ui.juicesMutex.RLock()
	defer ui.juicesMutex.RUnlock()
	return len(ui.juices)
}

func (ui *RootUI) juiceAt(id widget.ListItemID) (model.Juice, bool) {
	ui.juicesMutex.RLock()
	defer ui.juicesMutex.RUnlock()
	if id < 0 || id >= len(ui.juices) {
		return model.Juice{}, false
	}
	return ui.juices[id], true
}

// Juices returns a copy of the rows currently shown
func (ui *RootUI) Juices() []model.Juice {
	ui.juicesMutex.RLock()
	defer ui.juicesMutex.RUnlock()
	return append([]model.Juice(nil), ui.juices...)
}

// updateJuiceItem binds a list row to the entry at id
func (ui *RootUI) updateJuiceItem(id widget.ListItemID, item fyne.CanvasObject) {
	juice, ok := ui.juiceAt(id)
	if !ok {
		return
	}
	if row, ok := item.(*JuiceRow); ok {
		row.SetOnDelete(ui.onDeleteJuice)
		row.UpdateJuice(juice)
	}
}

// Reload lists the store and applies the difference to the visible rows
func (ui *RootUI) Reload(ctx context.Context) error {
	next, err := ui.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list juices: %w", err)
	}
	ui.applyRows(next)
	return nil
}

// applyRows swaps in next and refreshes only what the diff touched
func (ui *RootUI) applyRows(next []model.Juice) listdiff.Summary {
	ui.juicesMutex.Lock()
	ops := listdiff.Juices(ui.juices, next)
	ui.juices = next
	ui.juicesMutex.Unlock()

	summary := listdiff.Summarize(ops)
	log.Debug().
		Int("rows", len(next)).
		Int("inserts", summary.Inserts).
		Int("removes", summary.Removes).
		Int("moves", summary.Moves).
		Int("updates", summary.Updates).
		Msg("juice list diff")

	fyne.Do(func() {
		switch {
		case summary.Structural():
			ui.juiceList.Refresh()
		default:
			for _, op := range ops {
				ui.juiceList.RefreshItem(op.Index)
			}
		}
		if len(next) == 0 {
			ui.emptyLabel.Show()
		} else {
			ui.emptyLabel.Hide()
		}
	})
	return summary
}

// onStoreUpdate is called by the store after every mutation
func (ui *RootUI) onStoreUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	if err := ui.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("failed to reload juices after update")
		fyne.Do(func() { ui.showError(KeyErrorLoading, err) })
	}
}

// ShowEntryDialog opens the add/edit form; a non-positive id adds a new entry
func (ui *RootUI) ShowEntryDialog(id int64) *EntryDialog {
	if ui.entryDialog != nil {
		return ui.entryDialog
	}

	controller := entry.NewController(ui.store, entry.WithLogger(log.Logger))
	ui.entryDialog = NewEntryDialog(ui.window, controller, ui.localization, ui.onEntryClosed)
	ui.entryDialog.Show(context.Background(), id)
	return ui.entryDialog
}

// onEntryClosed ends the current add/edit session
func (ui *RootUI) onEntryClosed(juice model.Juice, state entry.State) {
	ui.entryDialog = nil
	log.Info().Int64("id", juice.ID).Str("state", state.String()).Msg("entry session finished")
}

// onDeleteJuice asks for confirmation and deletes the entry
func (ui *RootUI) onDeleteJuice(juice model.Juice) {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDelete),
		ui.localization.GetText(KeyDeleteConfirm)+"\n"+singleLine(juice.Name),
		func(confirmed bool) {
			if confirmed {
				ui.deleteJuice(juice.ID)
			}
		},
		ui.window,
	)
}

// deleteJuice removes the entry; the list follows through the store callback
func (ui *RootUI) deleteJuice(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	if err := ui.store.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete juice")
		ui.showError(KeyErrorDeleting, err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(restartRequired bool) {
		ui.onLanguageChange(ui.settings.GetLanguage())
		message := ui.localization.GetText(KeySettingsSaved)
		if restartRequired {
			message += "\n" + ui.localization.GetText(KeyRestartRequired)
		}
		dialog.ShowInformation(ui.localization.GetText(KeySettings), message, ui.window)
	}).Show()
}

func (ui *RootUI) showError(key string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(key), err), ui.window)
}
