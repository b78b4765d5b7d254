package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
	gh.tracking = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false
	duration := gh.now().Sub(gh.touchStartTime)

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y

	// Compare squared lengths
	moved := dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold

	switch {
	case moved:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.tracking = false
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// PullToRefreshWidget reloads its content on a downward swipe that starts
// while the content is scrolled to the top.
type PullToRefreshWidget struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	gestureHandler *GestureHandler
	refreshFunc    func()
	atTop          func() bool

	mu           sync.Mutex
	isRefreshing bool
	startedAtTop bool
}

// NewPullToRefreshWidget creates a new pull-to-refresh widget. atTop may be
// nil, in which case every downward swipe refreshes.
func NewPullToRefreshWidget(content fyne.CanvasObject, refreshFunc func(), atTop func() bool) *PullToRefreshWidget {
	ptr := &PullToRefreshWidget{
		content:     content,
		refreshFunc: refreshFunc,
		atTop:       atTop,
	}
	ptr.gestureHandler = NewGestureHandler(ptr.handleGesture)
	ptr.ExtendBaseWidget(ptr)
	return ptr
}

// CreateRenderer implements fyne.Widget
func (ptr *PullToRefreshWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ptr.content)
}

// IsRefreshing reports whether a refresh is running
func (ptr *PullToRefreshWidget) IsRefreshing() bool {
	ptr.mu.Lock()
	defer ptr.mu.Unlock()
	return ptr.isRefreshing
}

// handleGesture handles gestures for pull-to-refresh
func (ptr *PullToRefreshWidget) handleGesture(gesture GestureType) {
	if gesture != GestureSwipeDown {
		return
	}
	ptr.mu.Lock()
	startedAtTop := ptr.startedAtTop
	ptr.mu.Unlock()
	if !startedAtTop {
		return
	}
	ptr.triggerRefresh()
}

// triggerRefresh runs the refresh action. The flag is cleared as soon as
// the action returns; the reload itself continues in the background.
func (ptr *PullToRefreshWidget) triggerRefresh() {
	ptr.mu.Lock()
	if ptr.refreshFunc == nil || ptr.isRefreshing {
		ptr.mu.Unlock()
		return
	}
	ptr.isRefreshing = true
	ptr.mu.Unlock()

	defer func() {
		ptr.mu.Lock()
		ptr.isRefreshing = false
		ptr.mu.Unlock()
	}()
	ptr.refreshFunc()
}

// TouchDown handles touch down events
func (ptr *PullToRefreshWidget) TouchDown(event *mobile.TouchEvent) {
	atTop := ptr.atTop == nil || ptr.atTop()
	ptr.mu.Lock()
	ptr.startedAtTop = atTop
	ptr.mu.Unlock()
	ptr.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (ptr *PullToRefreshWidget) TouchUp(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (ptr *PullToRefreshWidget) TouchCancel(event *mobile.TouchEvent) {
	ptr.gestureHandler.TouchCancel(event)
}
