package browser

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// BlockKind identifies how a block is rendered
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockHeading
	BlockListItem
	BlockLink
	BlockPreformatted
)

// Block is one rendered unit of a page
type Block struct {
	Kind  BlockKind
	Level int    // heading level, 1-6
	Text  string // collapsed text content
	Href  string // absolute target for BlockLink
}

// Document is a loaded page flattened into blocks
type Document struct {
	URL     string
	Title   string
	Blocks  []Block
	Scripts []string
	Err     error
}

// ErrorDocument builds the page shown when a load fails
func ErrorDocument(pageURL string, err error) *Document {
	return &Document{
		URL:   pageURL,
		Title: "Web page not available",
		Blocks: []Block{
			{Kind: BlockHeading, Level: 2, Text: "Web page not available"},
			{Kind: BlockText, Text: pageURL},
			{Kind: BlockText, Text: err.Error()},
		},
		Err: err,
	}
}

// NewSanitizer returns the policy applied to every page
func NewSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowURLSchemes("mailto", "http", "https", "tel", "sms")
	return policy
}

// ParseDocument sanitizes raw HTML and flattens it into blocks. Inline
// scripts are collected before sanitizing strips them.
func ParseDocument(pageURL string, raw []byte, sanitizer *bluemonday.Policy) (*Document, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	rawDoc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := &Document{
		URL:     pageURL,
		Title:   collapse(rawDoc.Find("title").First().Text()),
		Scripts: inlineScripts(rawDoc),
	}
	if doc.Title == "" {
		doc.Title = base.Host
	}

	clean, err := goquery.NewDocumentFromReader(bytes.NewReader(sanitizer.SanitizeBytes(raw)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sanitized HTML: %w", err)
	}

	b := &blockBuilder{base: base}
	root := clean.Find("body")
	if root.Length() == 0 {
		root = clean.Selection
	}
	b.walk(root)
	b.flush()
	doc.Blocks = b.blocks

	return doc, nil
}

func inlineScripts(doc *goquery.Document) []string {
	var scripts []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, external := s.Attr("src"); external {
			return
		}
		switch strings.ToLower(strings.TrimSpace(s.AttrOr("type", ""))) {
		case "", "text/javascript", "application/javascript":
		default:
			return
		}
		if body := strings.TrimSpace(s.Text()); body != "" {
			scripts = append(scripts, body)
		}
	})
	return scripts
}

type blockBuilder struct {
	base    *url.URL
	blocks  []Block
	kind    BlockKind
	pending strings.Builder
}

func (b *blockBuilder) walk(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch tag := goquery.NodeName(s); tag {
		case "#text":
			b.pending.WriteString(s.Text())
			b.pending.WriteByte(' ')
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.flush()
			if text := collapse(s.Text()); text != "" {
				b.blocks = append(b.blocks, Block{Kind: BlockHeading, Level: int(tag[1] - '0'), Text: text})
			}
		case "a":
			b.link(s)
		case "li":
			b.nested(s, BlockListItem)
		case "pre":
			b.flush()
			if text := strings.TrimSpace(s.Text()); text != "" {
				b.blocks = append(b.blocks, Block{Kind: BlockPreformatted, Text: text})
			}
		case "br":
			b.flush()
		case "p", "div", "section", "article", "main", "header", "footer", "nav", "aside",
			"ul", "ol", "table", "thead", "tbody", "tr", "blockquote", "details", "summary":
			b.flush()
			b.walk(s)
			b.flush()
		default:
			b.walk(s)
		}
	})
}

func (b *blockBuilder) nested(s *goquery.Selection, kind BlockKind) {
	b.flush()
	prev := b.kind
	b.kind = kind
	b.walk(s)
	b.flush()
	b.kind = prev
}

func (b *blockBuilder) link(s *goquery.Selection) {
	href, ok := s.Attr("href")
	target := b.resolve(href)
	if !ok || target == "" {
		b.walk(s)
		return
	}

	b.flush()
	text := collapse(s.Text())
	if text == "" {
		text = target
	}
	b.blocks = append(b.blocks, Block{Kind: BlockLink, Text: text, Href: target})
}

func (b *blockBuilder) resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.base.ResolveReference(ref).String()
}

func (b *blockBuilder) flush() {
	text := collapse(b.pending.String())
	b.pending.Reset()
	if text == "" {
		return
	}
	b.blocks = append(b.blocks, Block{Kind: b.kind, Text: text})
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
