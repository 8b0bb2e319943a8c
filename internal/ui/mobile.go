package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// RowMinSize returns the minimum size of a list row
func (m *MobileUI) RowMinSize() fyne.Size {
	if m.IsMobileDevice() {
		return fyne.NewSize(MobileRowMinWidth, MobileRowMinHeight)
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// DialogSize returns the size for a modal dialog; on mobile it fills the canvas
func (m *MobileUI) DialogSize(desktop fyne.Size, canvas fyne.Size) fyne.Size {
	if m.IsMobileDevice() && canvas.Width > 0 && canvas.Height > 0 {
		return canvas
	}
	return desktop
}

