package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

type stubHistory struct {
	depth int
	backs int
}

func (s *stubHistory) CanGoBack() bool { return s.depth > 1 }

func (s *stubHistory) GoBack() {
	s.backs++
	s.depth--
}

func TestBackHandlerStepsBack(t *testing.T) {
	surface := &stubHistory{depth: 3}
	fallbacks := 0
	h := NewBackHandler(surface, func() { fallbacks++ })

	assert.True(t, h.HandleBack())
	assert.True(t, h.HandleBack())
	assert.Equal(t, 1, surface.depth)
	assert.Equal(t, 0, fallbacks)

	assert.False(t, h.HandleBack())
	assert.Equal(t, 2, surface.backs)
	assert.Equal(t, 1, fallbacks)
}

func TestBackHandlerWithoutFallback(t *testing.T) {
	h := NewBackHandler(&stubHistory{depth: 1}, nil)
	assert.False(t, h.HandleBack())
}

func TestBackHandlerInstall(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	var forwarded []fyne.KeyName
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		forwarded = append(forwarded, ev.Name)
	})

	surface := &stubHistory{depth: 2}
	NewBackHandler(surface, nil).Install(w.Canvas())

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: mobile.KeyBack})
	assert.Equal(t, 1, surface.backs)

	w.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.Equal(t, []fyne.KeyName{fyne.KeyA}, forwarded)
}

func TestBackHandlerDismissesOverlayFirst(t *testing.T) {
	surface := &stubHistory{depth: 2}
	fallbacks := 0
	h := NewBackHandler(surface, func() { fallbacks++ })
	showing := true
	h.SetOverlayDismisser(func() bool {
		was := showing
		showing = false
		return was
	})

	assert.True(t, h.HandleBack())
	assert.False(t, showing)
	assert.Equal(t, 0, surface.backs)

	assert.True(t, h.HandleBack())
	assert.Equal(t, 1, surface.backs)
	assert.Equal(t, 0, fallbacks)
}

func TestEscapeNeverRunsFallback(t *testing.T) {
	surface := &stubHistory{depth: 2}
	fallbacks := 0
	h := NewBackHandler(surface, func() { fallbacks++ })

	assert.True(t, h.HandleKey(&fyne.KeyEvent{Name: fyne.KeyEscape}))
	assert.Equal(t, 1, surface.backs)

	assert.True(t, h.HandleKey(&fyne.KeyEvent{Name: fyne.KeyEscape}))
	assert.Equal(t, 1, surface.backs)
	assert.Equal(t, 0, fallbacks)

	assert.True(t, h.HandleKey(&fyne.KeyEvent{Name: mobile.KeyBack}))
	assert.Equal(t, 1, fallbacks)

	assert.False(t, h.HandleKey(&fyne.KeyEvent{Name: fyne.KeyBackspace}))
}

type plainDriver struct {
	fyne.Driver
}

type mobileDriver struct {
	fyne.Driver
	backs int
}

func (d *mobileDriver) GoBack() {
	d.backs++
}

func TestDefaultBackActionUsesDriverBack(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()
	closed := false
	w.SetOnClosed(func() { closed = true })

	driver := &mobileDriver{}
	DefaultBackAction(driver, w)()

	assert.Equal(t, 1, driver.backs)
	assert.False(t, closed)
}

func TestDefaultBackActionClosesWindow(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	closed := false
	w.SetOnClosed(func() { closed = true })

	DefaultBackAction(plainDriver{}, w)()

	assert.True(t, closed)
}
