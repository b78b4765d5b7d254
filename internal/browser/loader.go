package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-cleanhttp"
)

var (
	// ErrFileAccessDenied is returned for file: URLs when file access is off
	ErrFileAccessDenied = errors.New("file access is disabled")

	// ErrUnsupportedScheme is returned for schemes the surface cannot load
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrRedirectHandled stops a load whose redirect target was taken over
	// by the redirect handler
	ErrRedirectHandled = errors.New("redirect handled outside the surface")
)

// maxRedirects matches the net/http default
const maxRedirects = 10

type redirectHandlerKey struct{}

// WithRedirectHandler attaches a handler that is offered every redirect hop
// of loads made with ctx. Returning true stops the load with ErrRedirectHandled.
func WithRedirectHandler(ctx context.Context, handler func(target string) bool) context.Context {
	return context.WithValue(ctx, redirectHandlerKey{}, handler)
}

// offerRedirect is the resty redirect policy backing WithRedirectHandler
func offerRedirect(req *http.Request, _ []*http.Request) error {
	handler, ok := req.Context().Value(redirectHandlerKey{}).(func(string) bool)
	if !ok || handler == nil {
		return nil
	}
	if handler(req.URL.String()) {
		return ErrRedirectHandled
	}
	return nil
}

// Progress milestones reported while a body is read
const (
	progressConnected = 10
	progressBodyRead  = 90
	readChunkSize     = 32 * 1024
	maxPageSize       = 10 * 1024 * 1024
)

// Page is a fetched, not yet parsed, page
type Page struct {
	URL  string // final URL after redirects
	Body []byte
}

// Loader fetches pages over HTTP(S)
type Loader struct {
	settings Settings
	client   *resty.Client
}

// NewLoader creates a loader using a pooled transport
func NewLoader(settings Settings) *Loader {
	client := resty.New().
		SetTransport(cleanhttp.DefaultPooledTransport()).
		SetRedirectPolicy(
			resty.FlexibleRedirectPolicy(maxRedirects),
			resty.RedirectPolicyFunc(offerRedirect),
		).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("User-Agent", "Mozilla/5.0 (Linux; Android) NEISHelperShell")
	return &Loader{settings: settings, client: client}
}

// HTTPClient exposes the underlying client
func (l *Loader) HTTPClient() *http.Client {
	return l.client.GetClient()
}

// Load fetches rawURL. onProgress receives intermediate values in
// [progressConnected, progressBodyRead]; the caller reports 0 and 100.
func (l *Loader) Load(ctx context.Context, rawURL string, onProgress func(int)) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	switch u.Scheme {
	case "http", "https":
		return l.loadHTTP(ctx, rawURL, onProgress)
	case "file":
		if !l.settings.AllowFileAccess {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrFileAccessDenied)
		}
		body, err := os.ReadFile(u.Path)
		if err != nil {
			return nil, err
		}
		return &Page{URL: rawURL, Body: body}, nil
	default:
		return nil, fmt.Errorf("%s: %w", u.Scheme, ErrUnsupportedScheme)
	}
}

func (l *Loader) loadHTTP(ctx context.Context, rawURL string, onProgress func(int)) (*Page, error) {
	resp, err := l.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("HTTP %d (url: %s)", resp.StatusCode(), rawURL)
	}

	report(onProgress, progressConnected)

	data, err := readWithProgress(body, resp.RawResponse.ContentLength, onProgress)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := rawURL
	if req := resp.RawResponse.Request; req != nil && req.URL != nil {
		finalURL = req.URL.String()
	}

	return &Page{URL: finalURL, Body: data}, nil
}

// readWithProgress scales bytes read into the connected..body-read range.
// Without a Content-Length only the end of the range is reported.
func readWithProgress(r io.Reader, total int64, onProgress func(int)) ([]byte, error) {
	var data []byte
	buf := make([]byte, readChunkSize)
	last := progressConnected

	for {
		n, err := r.Read(buf)
		if n > 0 {
			data = append(data, buf[:n]...)
			if len(data) > maxPageSize {
				return nil, fmt.Errorf("page larger than %d bytes", maxPageSize)
			}
			if total > 0 {
				p := progressConnected + int(int64(len(data))*(progressBodyRead-progressConnected)/total)
				if p > progressBodyRead {
					p = progressBodyRead
				}
				if p > last {
					last = p
					report(onProgress, p)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if last < progressBodyRead {
		report(onProgress, progressBodyRead)
	}
	return data, nil
}

func report(onProgress func(int), p int) {
	if onProgress != nil {
		onProgress(p)
	}
}
