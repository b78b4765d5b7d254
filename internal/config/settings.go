package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"

	"github.com/insushim/neis-helper/internal/browser"
)

// Metadata custom keys (FyneApp.toml [Development]/[Release] sections)
const (
	KeyAppURL    = "AppURL"
	KeyUpdateURL = "UpdateURL"
)

// Default values
const (
	DefaultAppURL         = "https://neis-helper.pages.dev"
	DefaultUpdateURL      = "https://api.github.com/repos/insushim/iwneis/releases/latest"
	DefaultUpdateAccept   = "application/vnd.github+json"
	DefaultConnectTimeout = 5 * time.Second
	DefaultLanguage       = "ko"
)

// Settings exposes the shell configuration. Values come from the packaged
// app metadata; nothing is read from the environment or persisted.
type Settings struct {
	meta         fyne.AppMetadata
	buildVersion string
}

// NewSettings creates a settings reader for the running app. buildVersion
// is the -ldflags version used when the metadata carries none.
func NewSettings(app fyne.App, buildVersion string) *Settings {
	return fromMetadata(app.Metadata(), buildVersion)
}

func fromMetadata(meta fyne.AppMetadata, buildVersion string) *Settings {
	return &Settings{meta: meta, buildVersion: buildVersion}
}

// AppURL returns the web application URL loaded at startup. It is also the
// origin used to decide internal navigation.
func (s *Settings) AppURL() string {
	return s.custom(KeyAppURL, DefaultAppURL)
}

// UpdateURL returns the release metadata endpoint
func (s *Settings) UpdateURL() string {
	return s.custom(KeyUpdateURL, DefaultUpdateURL)
}

// UpdateAccept returns the Accept header sent to the release endpoint
func (s *Settings) UpdateAccept() string {
	return DefaultUpdateAccept
}

// ConnectTimeout returns the connect timeout for the update request
func (s *Settings) ConnectTimeout() time.Duration {
	return DefaultConnectTimeout
}

// InstalledVersion returns the installed package version
func (s *Settings) InstalledVersion() string {
	if s.meta.Version != "" {
		return s.meta.Version
	}
	return s.buildVersion
}

// BrowserSettings returns the surface configuration for the hosted app
func (s *Settings) BrowserSettings() browser.Settings {
	return browser.DefaultSettings()
}

// Language returns the two-letter system language, falling back to Korean
func (s *Settings) Language() string {
	locale := string(lang.SystemLocale())
	if locale == "" {
		return DefaultLanguage
	}
	code, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(code)
}

func (s *Settings) custom(key, fallback string) string {
	if s.meta.Custom != nil {
		if value := strings.TrimSpace(s.meta.Custom[key]); value != "" {
			return value
		}
	}
	return fallback
}
