package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/insushim/neis-helper/internal/model"
)

// ProgressIndicator is the thin load bar above the browser view
type ProgressIndicator struct {
	bar   *widget.ProgressBar
	value model.LoadProgress
}

// NewProgressIndicator creates a hidden indicator at 0%
func NewProgressIndicator() *ProgressIndicator {
	bar := widget.NewProgressBar()
	bar.TextFormatter = func() string { return "" }
	bar.Hide()
	return &ProgressIndicator{bar: bar}
}

// SetProgress shows the bar at progress/100, hiding it once the load is complete
func (p *ProgressIndicator) SetProgress(progress int) {
	p.value = model.NewLoadProgress(progress)
	p.bar.SetValue(p.value.Fraction())
	if p.value.Visible() {
		p.bar.Show()
	} else {
		p.bar.Hide()
	}
}

// Value returns the last applied progress
func (p *ProgressIndicator) Value() int {
	return int(p.value)
}

// Visible reports whether the bar is shown
func (p *ProgressIndicator) Visible() bool {
	return p.bar.Visible()
}

// Widget returns the canvas object to place in the layout
func (p *ProgressIndicator) Widget() fyne.CanvasObject {
	return p.bar
}
