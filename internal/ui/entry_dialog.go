package ui

import (
	"context"
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/entry"
	"github.com/ytget/juice-tracker/internal/model"
)

// EntryDialog is the modal add/edit form. Every widget change is forwarded to
// an entry.Controller, which owns the field values and the session state.
type EntryDialog struct {
	window       fyne.Window
	controller   *entry.Controller
	localization *Localization
	mobile       *MobileUI
	logger       zerolog.Logger
	content      fyne.CanvasObject
	dialog       *dialog.CustomDialog

	// UI components
	nameEntry        *widget.Entry
	descriptionEntry *widget.Entry
	colorSelect      *widget.Select
	swatch           *canvas.Rectangle
	ratingSlider     *widget.Slider
	ratingLabel      *widget.Label
	saveBtn          *widget.Button
	cancelBtn        *widget.Button

	// populating is set while widgets are filled from the controller so the
	// resulting change events are not taken for user edits
	populating bool
	closed     bool

	// runOnMain moves load results onto the UI thread
	runOnMain func(func())

	onClosed func(juice model.Juice, state entry.State)
}

// NewEntryDialog creates the form for one add/edit session
func NewEntryDialog(window fyne.Window, controller *entry.Controller, localization *Localization, onClosed func(model.Juice, entry.State)) *EntryDialog {
	d := &EntryDialog{
		window:       window,
		controller:   controller,
		localization: localization,
		mobile:       NewMobileUI(),
		logger:       log.With().Str("session", controller.SessionID()).Logger(),
		onClosed:     onClosed,
		runOnMain:    fyne.Do,
	}

	d.createUI()
	d.populate(controller.Snapshot())
	d.updateActions(controller.Submittable())
	controller.OnChange(d.handleChange)
	return d
}

// Show displays the dialog and loads the entry with the given id.
// A non-positive id opens an empty form for a new entry.
func (d *EntryDialog) Show(ctx context.Context, id int64) <-chan struct{} {
	title := KeyAddJuice
	if id > 0 {
		title = KeyEditJuice
	}
	d.dialog = dialog.NewCustomWithoutButtons(d.localization.GetText(title), d.content, d.window)
	d.dialog.SetOnClosed(func() {
		// Dismissed without Save or Cancel
		if !d.closed {
			d.controller.Cancel()
		}
	})

	size := fyne.NewSize(EntryDialogWidth, EntryDialogHeight)
	if c := d.window.Canvas(); c != nil {
		size = d.mobile.DialogSize(size, c.Size())
	}
	d.dialog.Resize(size)
	d.dialog.Show()

	return d.controller.Load(ctx, id)
}

// createUI creates the dialog UI
func (d *EntryDialog) createUI() {
	d.nameEntry = widget.NewEntry()
	d.nameEntry.SetPlaceHolder(d.localization.GetText(KeyNamePlaceholder))
	d.nameEntry.OnChanged = func(text string) {
		if d.populating {
			return
		}
		d.controller.SetName(text)
	}

	d.descriptionEntry = widget.NewMultiLineEntry()
	d.descriptionEntry.SetPlaceHolder(d.localization.GetText(KeyDescriptionPlaceholder))
	d.descriptionEntry.Wrapping = fyne.TextWrapWord
	d.descriptionEntry.SetMinRowsVisible(3)
	d.descriptionEntry.OnChanged = func(text string) {
		if d.populating {
			return
		}
		d.controller.SetDescription(text)
	}

	d.swatch = canvas.NewRectangle(model.DefaultColor().RGBA())
	d.swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))
	d.swatch.CornerRadius = SwatchSize / 2

	d.colorSelect = widget.NewSelect(model.ColorLabels(), func(string) {
		if d.populating {
			return
		}
		index := d.colorSelect.SelectedIndex()
		if index < 0 {
			d.controller.ClearColorSelection()
			return
		}
		d.controller.SelectColorIndex(index)
	})

	d.ratingLabel = widget.NewLabel("")
	d.ratingSlider = widget.NewSlider(model.MinRating, model.MaxRating)
	d.ratingSlider.Step = 1
	d.ratingSlider.OnChanged = func(value float64) {
		if d.populating {
			return
		}
		d.controller.SetRating(int(math.Round(value)))
	}

	d.saveBtn = widget.NewButton(d.localization.GetText(KeySave), d.onSave)
	d.saveBtn.Importance = widget.HighImportance
	d.cancelBtn = widget.NewButton(d.localization.GetText(KeyCancel), d.onCancel)

	form := widget.NewForm(
		widget.NewFormItem(d.localization.GetText(KeyName), d.nameEntry),
		widget.NewFormItem(d.localization.GetText(KeyDescription), d.descriptionEntry),
		widget.NewFormItem(d.localization.GetText(KeyColor), container.NewBorder(nil, nil, container.NewCenter(d.swatch), nil, d.colorSelect)),
		widget.NewFormItem(d.localization.GetText(KeyRating), container.NewBorder(nil, nil, nil, d.ratingLabel, d.ratingSlider)),
	)

	buttons := container.NewGridWithColumns(2, d.cancelBtn, d.saveBtn)
	d.content = container.NewBorder(nil, buttons, nil, nil, form)
}

// handleChange receives every controller transition. Load results arrive on
// the loader goroutine and are moved onto the UI thread.
func (d *EntryDialog) handleChange(ch entry.Change) {
	if ch.FromLoad {
		d.runOnMain(d.syncFromController)
		return
	}
	d.render(ch)
}

// render reflects a user-driven transition. User edits already show in
// their widgets, so only derived decorations are updated.
func (d *EntryDialog) render(ch entry.Change) {
	if ch.State.IsTerminal() {
		d.close(ch)
		return
	}
	d.updateDecorations(ch.Juice)
	d.updateActions(ch.Submittable)
}

// syncFromController copies the controller's current values into the widgets.
// It runs after a load landed; edits typed since then are part of the snapshot.
func (d *EntryDialog) syncFromController() {
	current := d.controller.Current()
	if current.State.IsTerminal() {
		d.close(current)
		return
	}
	d.populate(current.Juice)
	d.updateActions(current.Submittable)
}

// populate fills the widgets from juice without reporting edits
func (d *EntryDialog) populate(juice model.Juice) {
	d.populating = true
	defer func() { d.populating = false }()

	setEntryText(d.nameEntry, juice.Name)
	setEntryText(d.descriptionEntry, juice.Description)
	d.colorSelect.SetSelectedIndex(juice.Color.Index())
	d.ratingSlider.SetValue(float64(juice.Rating))
	d.updateDecorations(juice)
}

// setEntryText leaves an entry alone when it already shows text, keeping the cursor
func setEntryText(e *widget.Entry, text string) {
	if e.Text != text {
		e.SetText(text)
	}
}

func (d *EntryDialog) updateDecorations(juice model.Juice) {
	d.swatch.FillColor = juice.Color.RGBA()
	d.swatch.Refresh()
	d.ratingLabel.SetText(fmt.Sprintf(RatingLabelFormat, juice.Rating, model.MaxRating))
}

func (d *EntryDialog) updateActions(submittable bool) {
	if submittable {
		d.saveBtn.Enable()
	} else {
		d.saveBtn.Disable()
	}
}

// onSave handles the save button
func (d *EntryDialog) onSave() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	if err := d.controller.Save(ctx); err != nil {
		d.logger.Warn().Err(err).Msg("save rejected")
		dialog.ShowError(fmt.Errorf("%s: %w", d.localization.GetText(KeyErrorSaving), err), d.window)
	}
}

// onCancel handles the cancel button
func (d *EntryDialog) onCancel() {
	d.controller.Cancel()
}

// close hides the dialog once the session reached a terminal state
func (d *EntryDialog) close(ch entry.Change) {
	if d.closed {
		return
	}
	d.closed = true
	if d.dialog != nil {
		d.dialog.Hide()
	}

	d.logger.Debug().Str("state", ch.State.String()).Int64("id", ch.Juice.ID).Msg("entry dialog closed")
	if d.onClosed != nil {
		d.onClosed(ch.Juice, ch.State)
	}
}
