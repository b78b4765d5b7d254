package browser

import (
	"context"
	"errors"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Engine is the UI-independent browser surface. Loads run on a background
// goroutine; callbacks go through the dispatcher, which the UI points at
// its main goroutine.
type Engine struct {
	settings  Settings
	loader    *Loader
	scripts   *ScriptRunner
	sanitizer *bluemonday.Policy
	logger    *zap.Logger

	mu         sync.Mutex
	client     Client
	history    History
	current    *Document
	cancel     context.CancelFunc
	seq        uint64
	onDocument func(*Document)
	dispatch   func(func())

	loads sync.WaitGroup
}

// NewEngine creates an engine with its own loader and script runner
func NewEngine(settings Settings, storage Storage, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		settings:  settings,
		loader:    NewLoader(settings),
		scripts:   NewScriptRunner(settings, storage, logger),
		sanitizer: NewSanitizer(),
		logger:    logger,
		dispatch:  func(fn func()) { fn() },
	}
}

// Settings returns the surface configuration
func (e *Engine) Settings() Settings {
	return e.settings
}

// Loader returns the page loader
func (e *Engine) Loader() *Loader {
	return e.loader
}

// SetClient attaches the navigation and progress callbacks
func (e *Engine) SetClient(client Client) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.client = client
}

// SetDispatcher sets how callbacks reach the UI goroutine
func (e *Engine) SetDispatcher(dispatch func(func())) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dispatch = dispatch
}

// OnDocument registers the callback that renders a finished load
func (e *Engine) OnDocument(fn func(*Document)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onDocument = fn
}

// Current returns the last rendered document
func (e *Engine) Current() *Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// LoadURL loads rawURL as a new history entry without consulting the client
func (e *Engine) LoadURL(rawURL string) {
	e.mu.Lock()
	e.history.Push(rawURL)
	e.mu.Unlock()

	e.start(rawURL, true)
}

// Navigate offers target to the client first and loads it only when the
// client did not handle it. It reports whether the client handled it.
// Call it on the dispatcher's goroutine.
func (e *Engine) Navigate(target string) bool {
	e.mu.Lock()
	client := e.client
	e.mu.Unlock()

	if client != nil && client.OnNavigate(target) {
		return true
	}
	e.LoadURL(target)
	return false
}

// Reload loads the current entry again without touching history
func (e *Engine) Reload() {
	e.mu.Lock()
	current, ok := e.history.Current()
	e.mu.Unlock()

	if ok {
		e.start(current, false)
	}
}

// CanGoBack reports whether history has an entry to return to
func (e *Engine) CanGoBack() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanGoBack()
}

// GoBack pops one history entry and loads the previous page
func (e *Engine) GoBack() {
	e.mu.Lock()
	prev, ok := e.history.Back()
	e.mu.Unlock()

	if ok {
		e.start(prev, false)
	}
}

// HistoryDepth returns the number of history entries
func (e *Engine) HistoryDepth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Depth()
}

// Stop cancels the in-flight load, if any
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Wait blocks until every started load goroutine has returned
func (e *Engine) Wait() {
	e.loads.Wait()
}

// start cancels any previous load and fetches pageURL in the background.
// pushed tells whether pageURL was added to history for this load.
func (e *Engine) start(pageURL string, pushed bool) {
	ctx, cancel := context.WithCancel(context.Background())

	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.cancel = cancel
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	e.progress(seq, 0)
	e.loads.Add(1)
	go func() {
		defer e.loads.Done()
		e.load(ctx, seq, pageURL, pushed)
	}()
}

func (e *Engine) load(ctx context.Context, seq uint64, pageURL string, pushed bool) {
	doc, handled := e.fetch(ctx, seq, pageURL)
	if ctx.Err() != nil {
		return
	}
	if handled {
		e.abandon(seq, pageURL, pushed)
		return
	}

	result := e.scripts.Run(ctx, doc)
	doc.Title = result.Title

	e.mu.Lock()
	if seq != e.seq {
		e.mu.Unlock()
		return
	}
	if doc.URL != pageURL {
		e.history.ReplaceCurrent(doc.URL)
	}
	e.current = doc
	onDocument := e.onDocument
	e.mu.Unlock()

	if onDocument != nil {
		e.run(func() { onDocument(doc) })
	}
	e.progress(seq, 100)

	switch {
	case result.Navigate != "" && result.Navigate != doc.URL:
		target := result.Navigate
		e.run(func() { e.Navigate(target) })
	case result.Reload:
		e.run(e.Reload)
	}
}

// abandon finishes a load whose redirect went outside the surface. The
// current page stays and the entry pushed for it is dropped.
func (e *Engine) abandon(seq uint64, pageURL string, pushed bool) {
	e.mu.Lock()
	if seq != e.seq {
		e.mu.Unlock()
		return
	}
	if current, ok := e.history.Current(); pushed && ok && current == pageURL {
		e.history.Back()
	}
	e.mu.Unlock()

	e.progress(seq, 100)
}

// fetch loads and parses pageURL. handled is true when a redirect hop was
// taken over by the client.
func (e *Engine) fetch(ctx context.Context, seq uint64, pageURL string) (*Document, bool) {
	redirectCtx := WithRedirectHandler(ctx, func(target string) bool {
		return e.offer(ctx, target)
	})

	page, err := e.loader.Load(redirectCtx, pageURL, func(p int) { e.progress(seq, p) })
	if errors.Is(err, ErrRedirectHandled) {
		e.logger.Debug("redirect handled by client", zap.String("url", pageURL))
		return nil, true
	}
	if err != nil {
		if ctx.Err() == nil {
			e.logger.Warn("page load failed", zap.String("url", pageURL), zap.Error(err))
		}
		return ErrorDocument(pageURL, err), false
	}

	doc, err := ParseDocument(page.URL, page.Body, e.sanitizer)
	if err != nil {
		e.logger.Warn("page parse failed", zap.String("url", page.URL), zap.Error(err))
		return ErrorDocument(page.URL, err), false
	}
	return doc, false
}

// offer asks the client about target on the dispatcher's goroutine and
// waits for the answer. A cancelled load counts as handled.
func (e *Engine) offer(ctx context.Context, target string) bool {
	e.mu.Lock()
	client := e.client
	e.mu.Unlock()
	if client == nil {
		return false
	}

	answer := make(chan bool, 1)
	e.run(func() { answer <- client.OnNavigate(target) })

	select {
	case handled := <-answer:
		return handled
	case <-ctx.Done():
		return true
	}
}

// progress forwards p to the client unless a newer load superseded seq
func (e *Engine) progress(seq uint64, p int) {
	e.mu.Lock()
	client := e.client
	stale := seq != e.seq
	e.mu.Unlock()

	if client == nil || stale {
		return
	}
	e.run(func() { client.OnProgress(p) })
}

func (e *Engine) run(fn func()) {
	e.mu.Lock()
	dispatch := e.dispatch
	e.mu.Unlock()
	dispatch(fn)
}
