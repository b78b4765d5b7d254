package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBullet = "•"
	IconError  = "❌"
)

// Window sizing for desktop development runs
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 780
)

// Browser view layout
const (
	// Width used when the wide viewport setting is off
	NarrowViewportWidth float32 = 360

	HeadingTopSpacing   float32 = 6
	ListItemIndentation float32 = 12

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Gesture thresholds
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)
