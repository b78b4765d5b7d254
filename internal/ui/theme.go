package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ShellTheme matches the hosted web app's palette so the native chrome
// (progress bar, dialogs) blends with the page.
type ShellTheme struct{}

// NewShellTheme creates the shell theme
func NewShellTheme() fyne.Theme {
	return &ShellTheme{}
}

// Color returns theme colors
func (t *ShellTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 79, G: 70, B: 229, A: 255} // Indigo, the web app accent
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 67, G: 56, B: 202, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 15, G: 23, B: 42, A: 255}
		}
		return color.RGBA{R: 248, G: 250, B: 252, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 241, G: 245, B: 249, A: 255}
		}
		return color.RGBA{R: 30, G: 41, B: 59, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ShellTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShellTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes; the page text stays at the default size and
// only the chrome is tightened.
func (t *ShellTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameScrollBar:
		return 6
	case theme.SizeNameScrollBarSmall:
		return 2
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
