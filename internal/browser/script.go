package browser

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/dop251/goja"
	"go.uber.org/zap"
)

// DefaultScriptTimeout bounds each inline script
const DefaultScriptTimeout = 2 * time.Second

// ScriptResult is what the page's scripts asked the surface to do
type ScriptResult struct {
	Title    string
	Navigate string // absolute URL set through location
	Reload   bool
}

// ScriptRunner executes a document's inline scripts in a goja runtime
type ScriptRunner struct {
	settings Settings
	storage  Storage
	timeout  time.Duration
	logger   *zap.Logger
}

// NewScriptRunner creates a runner. storage may be nil when DOM storage is
// disabled.
func NewScriptRunner(settings Settings, storage Storage, logger *zap.Logger) *ScriptRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScriptRunner{
		settings: settings,
		storage:  storage,
		timeout:  DefaultScriptTimeout,
		logger:   logger,
	}
}

// Run executes doc's scripts in order. Script errors are logged and the
// remaining scripts still run.
func (r *ScriptRunner) Run(ctx context.Context, doc *Document) ScriptResult {
	result := ScriptResult{Title: doc.Title}
	if !r.settings.JavaScriptEnabled || len(doc.Scripts) == 0 {
		return result
	}

	vm := goja.New()
	vm.SetMaxCallStackSize(1024)
	page := &pageGlobals{vm: vm, doc: doc, result: &result}
	page.install(r)

	for i, src := range doc.Scripts {
		if ctx.Err() != nil {
			break
		}
		timer := time.AfterFunc(r.timeout, func() { vm.Interrupt("script timeout exceeded") })
		stop := context.AfterFunc(ctx, func() { vm.Interrupt("page load cancelled") })

		if _, err := vm.RunString(src); err != nil {
			r.logger.Debug("script error",
				zap.String("url", doc.URL),
				zap.Int("script", i),
				zap.Error(err))
		}

		timer.Stop()
		stop()
		vm.ClearInterrupt()
	}

	page.collect()
	return result
}

type pageGlobals struct {
	vm       *goja.Runtime
	doc      *Document
	result   *ScriptResult
	document *goja.Object
	location *goja.Object
}

func (p *pageGlobals) install(r *ScriptRunner) {
	vm := p.vm

	vm.Set("require", goja.Undefined())
	vm.Set("window", vm.GlobalObject())

	console := vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error", "debug"} {
		console.Set(level, p.consoleFunc(r.logger, level))
	}
	vm.Set("console", console)

	p.document = vm.NewObject()
	p.document.Set("title", p.doc.Title)
	p.document.Set("URL", p.doc.URL)
	vm.Set("document", p.document)

	p.location = vm.NewObject()
	p.location.Set("href", p.doc.URL)
	p.location.Set("origin", OriginOf(p.doc.URL))
	p.location.Set("assign", p.navigateFunc())
	p.location.Set("replace", p.navigateFunc())
	p.location.Set("reload", func(goja.FunctionCall) goja.Value {
		p.result.Reload = true
		return goja.Undefined()
	})
	vm.Set("location", p.location)

	if r.settings.DOMStorageEnabled && r.storage != nil {
		vm.Set("localStorage", p.localStorage(r.storage))
	} else {
		vm.Set("localStorage", goja.Null())
	}
}

func (p *pageGlobals) consoleFunc(logger *zap.Logger, level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		logger.Debug("console",
			zap.String("level", level),
			zap.String("url", p.doc.URL),
			zap.String("message", strings.Join(parts, " ")))
		return goja.Undefined()
	}
}

func (p *pageGlobals) navigateFunc() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		p.location.Set("href", call.Argument(0).String())
		return goja.Undefined()
	}
}

func (p *pageGlobals) localStorage(storage Storage) *goja.Object {
	vm := p.vm
	origin := OriginOf(p.doc.URL)

	ls := vm.NewObject()
	ls.Set("getItem", func(call goja.FunctionCall) goja.Value {
		value, ok := storage.GetItem(origin, call.Argument(0).String())
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(value)
	})
	ls.Set("setItem", func(call goja.FunctionCall) goja.Value {
		storage.SetItem(origin, call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	ls.Set("removeItem", func(call goja.FunctionCall) goja.Value {
		storage.RemoveItem(origin, call.Argument(0).String())
		return goja.Undefined()
	})
	ls.Set("clear", func(goja.FunctionCall) goja.Value {
		storage.Clear(origin)
		return goja.Undefined()
	})
	return ls
}

// collect reads back the globals the scripts may have changed
func (p *pageGlobals) collect() {
	if title := p.document.Get("title"); title != nil && !goja.IsUndefined(title) {
		p.result.Title = title.String()
	}

	href := p.location.Get("href")
	if href == nil || goja.IsUndefined(href) {
		return
	}
	target := strings.TrimSpace(href.String())
	if target == "" || target == p.doc.URL {
		return
	}

	base, err := url.Parse(p.doc.URL)
	if err != nil {
		return
	}
	ref, err := url.Parse(target)
	if err != nil {
		return
	}
	p.result.Navigate = base.ResolveReference(ref).String()
}
