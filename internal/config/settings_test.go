package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "0.9.0")

	if settings.buildVersion != "0.9.0" {
		t.Errorf("Expected build version 0.9.0, got %s", settings.buildVersion)
	}
}

func TestDefaultURLs(t *testing.T) {
	settings := fromMetadata(fyne.AppMetadata{}, "dev")

	if settings.AppURL() != DefaultAppURL {
		t.Errorf("Expected app URL %s, got %s", DefaultAppURL, settings.AppURL())
	}
	if settings.UpdateURL() != DefaultUpdateURL {
		t.Errorf("Expected update URL %s, got %s", DefaultUpdateURL, settings.UpdateURL())
	}
	if settings.UpdateAccept() != "application/vnd.github+json" {
		t.Errorf("Unexpected Accept header %s", settings.UpdateAccept())
	}
	if settings.ConnectTimeout().Seconds() != 5 {
		t.Errorf("Expected 5s connect timeout, got %s", settings.ConnectTimeout())
	}
}

func TestCustomURLs(t *testing.T) {
	settings := fromMetadata(fyne.AppMetadata{
		Custom: map[string]string{
			KeyAppURL:    "https://staging.neis-helper.pages.dev",
			KeyUpdateURL: " ",
		},
	}, "dev")

	if settings.AppURL() != "https://staging.neis-helper.pages.dev" {
		t.Errorf("Expected custom app URL, got %s", settings.AppURL())
	}

	// Blank values fall back to the default
	if settings.UpdateURL() != DefaultUpdateURL {
		t.Errorf("Expected default update URL, got %s", settings.UpdateURL())
	}
}

func TestInstalledVersion(t *testing.T) {
	settings := fromMetadata(fyne.AppMetadata{Version: "1.5"}, "dev")
	if settings.InstalledVersion() != "1.5" {
		t.Errorf("Expected metadata version 1.5, got %s", settings.InstalledVersion())
	}

	settings = fromMetadata(fyne.AppMetadata{}, "1.4.2")
	if settings.InstalledVersion() != "1.4.2" {
		t.Errorf("Expected build version 1.4.2, got %s", settings.InstalledVersion())
	}
}

func TestBrowserSettings(t *testing.T) {
	settings := fromMetadata(fyne.AppMetadata{}, "dev")
	bs := settings.BrowserSettings()

	if !bs.JavaScriptEnabled || !bs.DOMStorageEnabled || !bs.UseWideViewPort {
		t.Error("Scripts, DOM storage and wide viewport should be enabled")
	}
	if bs.SupportZoom || bs.AllowFileAccess {
		t.Error("Zoom and file access should be disabled")
	}
}

func TestLanguage(t *testing.T) {
	settings := fromMetadata(fyne.AppMetadata{}, "dev")

	lang := settings.Language()
	if len(lang) < 2 {
		t.Errorf("Expected a language code, got %q", lang)
	}
}
