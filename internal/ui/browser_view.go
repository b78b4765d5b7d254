package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/insushim/neis-helper/internal/browser"
)

// BrowserView renders the engine's current document and forwards the
// Surface operations to the engine.
type BrowserView struct {
	widget.BaseWidget

	engine       *browser.Engine
	localization *Localization

	blocks  *fyne.Container
	page    *container.ThemeOverride
	zoom    *zoomTheme
	scroll  *container.Scroll
	refresh *PullToRefreshWidget

	title   string
	onTitle func(string)
}

var _ browser.Surface = (*BrowserView)(nil)

// NewBrowserView creates the view and registers it as the engine's
// document renderer. The engine must dispatch to the UI goroutine.
func NewBrowserView(engine *browser.Engine, localization *Localization, mobile *MobileUI) *BrowserView {
	v := &BrowserView{
		engine:       engine,
		localization: localization,
		blocks:       container.NewVBox(),
	}

	pad := mobile.ContentPadding()
	var content fyne.CanvasObject = container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), v.blocks)
	if !engine.Settings().UseWideViewPort {
		content = container.New(&viewportLayout{width: NarrowViewportWidth}, content)
	}

	v.zoom = &zoomTheme{Theme: fyne.CurrentApp().Settings().Theme(), scale: DefaultZoom}
	v.page = container.NewThemeOverride(content, v.zoom)
	v.scroll = container.NewVScroll(v.page)
	v.refresh = NewPullToRefreshWidget(v.scroll, v.Reload, v.atTop)

	engine.OnDocument(v.render)
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer implements fyne.Widget
func (v *BrowserView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.refresh)
}

// SetOnTitleChanged registers a callback for document title changes
func (v *BrowserView) SetOnTitleChanged(fn func(string)) {
	v.onTitle = fn
}

// Title returns the rendered document title
func (v *BrowserView) Title() string {
	return v.title
}

// LoadURL implements browser.Surface
func (v *BrowserView) LoadURL(rawURL string) {
	v.engine.LoadURL(rawURL)
}

// Reload implements browser.Surface
func (v *BrowserView) Reload() {
	v.engine.Reload()
}

// CanGoBack implements browser.Surface
func (v *BrowserView) CanGoBack() bool {
	return v.engine.CanGoBack()
}

// GoBack implements browser.Surface
func (v *BrowserView) GoBack() {
	v.engine.GoBack()
}

// HistoryDepth implements browser.Surface
func (v *BrowserView) HistoryDepth() int {
	return v.engine.HistoryDepth()
}

// SetClient implements browser.Surface
func (v *BrowserView) SetClient(client browser.Client) {
	v.engine.SetClient(client)
}

func (v *BrowserView) atTop() bool {
	return v.scroll.Offset.Y <= 0
}

// render replaces the page content; it runs on the UI goroutine
func (v *BrowserView) render(doc *browser.Document) {
	blocks := doc.Blocks
	var objects []fyne.CanvasObject

	if doc.Err != nil {
		objects = append(objects, heading(IconError+" "+v.localization.GetText(KeyPageLoadFailed), 2))
		if len(blocks) > 0 && blocks[0].Kind == browser.BlockHeading {
			blocks = blocks[1:]
		}
	}
	for _, b := range blocks {
		objects = append(objects, v.blockObject(b))
	}

	v.blocks.Objects = objects
	v.blocks.Refresh()
	v.scroll.ScrollToTop()

	title := doc.Title
	if doc.Err != nil {
		title = v.localization.GetText(KeyPageLoadFailed)
	}
	v.title = title
	if v.onTitle != nil {
		v.onTitle(title)
	}
}

func (v *BrowserView) blockObject(b browser.Block) fyne.CanvasObject {
	switch b.Kind {
	case browser.BlockHeading:
		return heading(b.Text, b.Level)
	case browser.BlockListItem:
		return wrappedLabel(IconBullet + " " + b.Text)
	case browser.BlockLink:
		return v.link(b)
	case browser.BlockPreformatted:
		return widget.NewRichText(&widget.TextSegment{Style: widget.RichTextStyleCodeBlock, Text: b.Text})
	default:
		return wrappedLabel(b.Text)
	}
}

func (v *BrowserView) link(b browser.Block) fyne.CanvasObject {
	text := b.Text
	if text == "" {
		text = b.Href
	}
	href := b.Href
	link := widget.NewHyperlink(text, nil)
	link.Wrapping = fyne.TextWrapWord
	link.OnTapped = func() {
		v.engine.Navigate(href)
	}
	return link
}

func heading(text string, level int) fyne.CanvasObject {
	style := widget.RichTextStyleSubHeading
	if level <= 1 {
		style = widget.RichTextStyleHeading
	}
	rt := widget.NewRichText(&widget.TextSegment{Style: style, Text: text})
	rt.Wrapping = fyne.TextWrapWord
	return rt
}

func wrappedLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

// viewportLayout centers its content at a fixed width
type viewportLayout struct {
	width float32
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	width := l.width
	if width > size.Width {
		width = size.Width
	}
	x := (size.Width - width) / 2
	for _, o := range objects {
		o.Move(fyne.NewPos(x, 0))
		o.Resize(fyne.NewSize(width, size.Height))
	}
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		if m := o.MinSize(); m.Height > h {
			h = m.Height
		}
	}
	return fyne.NewSize(l.width, h)
}
