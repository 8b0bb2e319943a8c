package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/model"
)

// ratingStars renders a rating as filled and empty stars
func ratingStars(rating int) string {
	rating = model.ClampRating(rating)
	return strings.Repeat(IconStarFull, rating) + strings.Repeat(IconStarEmpty, model.MaxRating-rating)
}

// singleLine flattens text so a row never grows past its fixed height
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}

// JuiceRow represents one entry in the juice list
type JuiceRow struct {
	widget.BaseWidget

	juice        model.Juice
	localization *Localization
	minSize      fyne.Size

	// UI components
	swatch           *canvas.Rectangle
	nameLabel        *widget.Label
	descriptionLabel *widget.Label
	ratingLabel      *widget.Label
	deleteBtn        *widget.Button

	// Callbacks
	onDelete func(juice model.Juice)
}

// NewJuiceRow creates a new row widget showing juice
func NewJuiceRow(juice model.Juice, localization *Localization, minSize fyne.Size) *JuiceRow {
	jr := &JuiceRow{
		juice:        juice,
		localization: localization,
		minSize:      minSize,
	}
	jr.ExtendBaseWidget(jr)
	jr.createUI()
	jr.updateFromJuice()
	return jr
}

// SetOnDelete sets the delete action callback
func (jr *JuiceRow) SetOnDelete(onDelete func(juice model.Juice)) {
	jr.onDelete = onDelete
}

// Juice returns the entry currently shown
func (jr *JuiceRow) Juice() model.Juice {
	return jr.juice
}

// UpdateJuice updates the row with new entry data
func (jr *JuiceRow) UpdateJuice(juice model.Juice) {
	jr.juice = juice
	jr.updateFromJuice()
	jr.Refresh()
}

// createUI creates the UI components
func (jr *JuiceRow) createUI() {
	jr.swatch = canvas.NewRectangle(model.DefaultColor().RGBA())
	jr.swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))
	jr.swatch.CornerRadius = SwatchSize / 2

	jr.nameLabel = widget.NewLabel("")
	jr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	jr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	jr.descriptionLabel = widget.NewLabel("")
	jr.descriptionLabel.Truncation = fyne.TextTruncateEllipsis

	jr.ratingLabel = widget.NewLabel("")
	jr.ratingLabel.Alignment = fyne.TextAlignTrailing

	jr.deleteBtn = widget.NewButton(IconDelete, func() {
		current := jr.juice
		if jr.onDelete == nil {
			log.Warn().Int64("id", current.ID).Msg("delete callback is not set")
			return
		}
		jr.onDelete(current)
	})
	jr.deleteBtn.Importance = widget.LowImportance
}

// updateFromJuice updates UI components based on the entry
func (jr *JuiceRow) updateFromJuice() {
	name := singleLine(jr.juice.Name)
	if name == "" {
		name = DashPlaceholder
	}
	jr.nameLabel.SetText(name)
	jr.descriptionLabel.SetText(singleLine(jr.juice.Description))
	jr.ratingLabel.SetText(ratingStars(jr.juice.Rating))

	jr.swatch.FillColor = jr.juice.Color.RGBA()
	jr.swatch.Refresh()
}

// CreateRenderer creates the widget renderer
func (jr *JuiceRow) CreateRenderer() fyne.WidgetRenderer {
	r := &juiceRowRenderer{juiceRow: jr}
	r.createLayout()
	return r
}

type juiceRowRenderer struct {
	juiceRow *JuiceRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *juiceRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *juiceRowRenderer) MinSize() fyne.Size {
	return r.layout.MinSize().Max(r.juiceRow.minSize)
}

// Refresh refreshes the renderer
func (r *juiceRowRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *juiceRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *juiceRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *juiceRowRenderer) createLayout() {
	jr := r.juiceRow

	// Fixed width for the stars so names line up across rows
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(RatingLabelWidth, 0))
	rating := container.NewStack(spacer, jr.ratingLabel)

	text := container.NewVBox(jr.nameLabel, jr.descriptionLabel)
	left := container.NewCenter(jr.swatch)
	right := container.NewHBox(rating, jr.deleteBtn)

	r.layout = container.NewVBox(
		container.NewBorder(nil, nil, left, right, text),
		widget.NewSeparator(),
	)
}

