package model

// LoadProgress is a page load progress value in [0,100]
type LoadProgress int

const (
	ProgressStart    LoadProgress = 0
	ProgressComplete LoadProgress = 100
)

// NewLoadProgress clamps a reported value into range
func NewLoadProgress(value int) LoadProgress {
	if value < int(ProgressStart) {
		return ProgressStart
	}
	if value > int(ProgressComplete) {
		return ProgressComplete
	}
	return LoadProgress(value)
}

// Fraction returns the progress as 0.0 to 1.0
func (p LoadProgress) Fraction() float64 {
	return float64(p) / float64(ProgressComplete)
}

// Visible reports whether the indicator should be shown
func (p LoadProgress) Visible() bool {
	return p < ProgressComplete
}
