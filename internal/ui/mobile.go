package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides device-dependent layout decisions
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device.IsMobile()
}

// ContentPadding returns the page padding around rendered documents
func (m *MobileUI) ContentPadding() float32 {
	if m.IsMobileDevice() {
		return 12
	}
	return 8
}

// PrepareWindow sizes the window for desktop runs; mobile windows are
// always full screen.
func (m *MobileUI) PrepareWindow(w fyne.Window) {
	if m.IsMobileDevice() {
		return
	}
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.CenterOnScreen()
}
