package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconAdd       = "+"
	IconDelete    = "🗑️"
	IconStarFull  = "★"
	IconStarEmpty = "☆"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	RatingLabelFormat = "%d / %d"
)

// Layout sizing (JuiceRow / lists)
const (
	SwatchSize       float32 = 24
	RatingLabelWidth float32 = 96

	RowMinWidth  float32 = 320
	RowMinHeight float32 = 64

	// Mobile-specific sizing
	MobileRowMinWidth  float32 = 280
	MobileRowMinHeight float32 = 88
)

// Dialog sizing
const (
	EntryDialogWidth     float32 = 420
	EntryDialogHeight    float32 = 360
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

// Store call timeouts
const (
	StoreCallTimeout = 5 * time.Second
)
