package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

// Page zoom limits
const (
	DefaultZoom float32 = 1.0
	MinZoom     float32 = 0.5
	MaxZoom     float32 = 3.0
	ZoomStep    float32 = 0.1
)

// zoomTheme scales the text sizes of base
type zoomTheme struct {
	fyne.Theme
	scale float32
}

// Size implements fyne.Theme
func (z *zoomTheme) Size(name fyne.ThemeSizeName) float32 {
	size := z.Theme.Size(name)
	switch name {
	case theme.SizeNameText, theme.SizeNameHeadingText, theme.SizeNameSubHeadingText, theme.SizeNameCaptionText:
		return size * z.scale
	}
	return size
}

func clampZoom(scale float32) float32 {
	if scale < MinZoom {
		return MinZoom
	}
	if scale > MaxZoom {
		return MaxZoom
	}
	return scale
}

// Zoom returns the current page text scale
func (v *BrowserView) Zoom() float32 {
	return v.zoom.scale
}

// SetZoom scales the page text. It reports false and leaves the page alone
// when the surface does not support zoom.
func (v *BrowserView) SetZoom(scale float32) bool {
	if !v.engine.Settings().SupportZoom {
		return false
	}
	v.zoom = &zoomTheme{Theme: v.zoom.Theme, scale: clampZoom(scale)}
	v.page.Theme = v.zoom
	v.page.Refresh()
	return true
}

// InstallZoomShortcuts binds the default shortcut modifier with =, - and 0
// on c when zoom is supported.
func (v *BrowserView) InstallZoomShortcuts(c fyne.Canvas) {
	if !v.engine.Settings().SupportZoom {
		return
	}
	bind := func(key fyne.KeyName, fn func()) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
			fn()
		})
	}
	bind(fyne.KeyEqual, func() { v.SetZoom(v.Zoom() + ZoomStep) })
	bind(fyne.KeyMinus, func() { v.SetZoom(v.Zoom() - ZoomStep) })
	bind(fyne.Key0, func() { v.SetZoom(DefaultZoom) })
}
