package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
)

// BackSurface is the part of the browser surface the back key needs
type BackSurface interface {
	CanGoBack() bool
	GoBack()
}

// systemBack is implemented by drivers with a platform back action
type systemBack interface {
	GoBack()
}

// DefaultBackAction returns the platform's own back behaviour: the driver's
// GoBack on mobile, closing the window elsewhere.
func DefaultBackAction(driver fyne.Driver, w fyne.Window) func() {
	if d, ok := driver.(systemBack); ok {
		return d.GoBack
	}
	return w.Close
}

// BackHandler dismisses overlays and steps back through the surface
// history. The system back key falls back to the default action when
// neither applies.
type BackHandler struct {
	surface  BackSurface
	fallback func()
	overlay  func() bool
}

// NewBackHandler creates a handler; fallback may be nil
func NewBackHandler(surface BackSurface, fallback func()) *BackHandler {
	return &BackHandler{surface: surface, fallback: fallback}
}

// SetOverlayDismisser registers fn to close whatever overlay is showing.
// fn reports whether it closed anything.
func (h *BackHandler) SetOverlayDismisser(fn func() bool) {
	h.overlay = fn
}

// StepBack closes an overlay or goes back one history entry. It reports
// false when there was nothing to step back from.
func (h *BackHandler) StepBack() bool {
	if h.overlay != nil && h.overlay() {
		return true
	}
	if h.surface.CanGoBack() {
		h.surface.GoBack()
		return true
	}
	return false
}

// HandleBack handles the system back key. It reports whether the key was
// consumed; otherwise the fallback runs.
func (h *BackHandler) HandleBack() bool {
	if h.StepBack() {
		return true
	}
	if h.fallback != nil {
		h.fallback()
	}
	return false
}

// HandleKey routes a typed key and reports whether it was a back key
func (h *BackHandler) HandleKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case mobile.KeyBack:
		h.HandleBack()
	case fyne.KeyEscape:
		h.StepBack()
	default:
		return false
	}
	return true
}

// Install routes back keys on c to the handler. Alt+Left is registered as a
// desktop shortcut for StepBack.
func (h *BackHandler) Install(c fyne.Canvas) {
	previous := c.OnTypedKey()
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if h.HandleKey(ev) {
			return
		}
		if previous != nil {
			previous(ev)
		}
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
		h.StepBack()
	})
}
