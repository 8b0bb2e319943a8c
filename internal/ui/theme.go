package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Juice palette
var (
	juiceOrange = color.NRGBA{R: 239, G: 108, B: 0, A: 255}
	juicePulp   = color.NRGBA{R: 255, G: 248, B: 236, A: 255}
)

// JuiceTheme tints the default theme orange and gives list rows room for two
// text lines plus a color swatch. Everything else comes from the default theme.
type JuiceTheme struct {
	fyne.Theme
}

// NewJuiceTheme creates the application theme
func NewJuiceTheme() fyne.Theme {
	return &JuiceTheme{Theme: theme.DefaultTheme()}
}

// Color overrides the accent colors; the light background is warmed to match
func (t *JuiceTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return juiceOrange
	case theme.ColorNameFocus, theme.ColorNameSelection:
		c := juiceOrange
		c.A = 72
		return c
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return juicePulp
		}
	}
	return t.Theme.Color(name, variant)
}

// Size rounds inputs so they echo the round swatches
func (t *JuiceTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return SwatchSize / 4
	case theme.SizeNameSelectionRadius:
		return SwatchSize / 6
	}
	return t.Theme.Size(name)
}
