package platform

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
)

// URLLauncher hands URLs to the system's "view URL" action
type URLLauncher struct {
	app fyne.App
}

// NewURLLauncher creates a launcher bound to the running app
func NewURLLauncher(app fyne.App) *URLLauncher {
	return &URLLauncher{app: app}
}

// Open dispatches rawURL to the external handler. A missing handler for the
// scheme is reported by the platform and returned as is.
func (l *URLLauncher) Open(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("empty URL")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("URL %q has no scheme", rawURL)
	}
	return l.app.OpenURL(u)
}
