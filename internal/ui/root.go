package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/insushim/neis-helper/internal/browser"
	"github.com/insushim/neis-helper/internal/config"
	"github.com/insushim/neis-helper/internal/model"
	"github.com/insushim/neis-helper/internal/navigation"
	"github.com/insushim/neis-helper/internal/platform"
	"github.com/insushim/neis-helper/internal/update"
)

// RootUI is the single screen of the shell. It hosts the web app in a
// BrowserView and acts as the surface's Client: navigation goes through
// the policy and progress drives the indicator.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	mobile       *MobileUI

	engine   *browser.Engine
	view     *BrowserView
	policy   *navigation.Policy
	launcher navigation.Launcher
	progress *ProgressIndicator
	back     *BackHandler
	checker  update.UpdateChecker

	// Cancelled when the window closes
	ctx    context.Context
	cancel context.CancelFunc

	updateDialog *dialog.ConfirmDialog
}

var _ browser.Client = (*RootUI)(nil)

// NewRootUI creates and lays out the screen. Nothing is loaded until Start.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, checker update.UpdateChecker, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.Language())

	ctx, cancel := context.WithCancel(context.Background())
	launcher := platform.NewURLLauncher(app)

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		mobile:       NewMobileUI(),
		policy:       navigation.NewPolicy(settings.AppURL(), launcher, logger.Named("navigation")),
		launcher:     launcher,
		progress:     NewProgressIndicator(),
		checker:      checker,
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.engine = browser.NewEngine(
		settings.BrowserSettings(),
		browser.NewPreferencesStorage(app.Preferences()),
		logger.Named("browser"),
	)
	ui.engine.SetDispatcher(fyne.Do)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.mobile.PrepareWindow(ui.window)

	ui.view = NewBrowserView(ui.engine, ui.localization, ui.mobile)
	ui.view.SetClient(ui)
	ui.view.SetOnTitleChanged(ui.onTitleChanged)

	ui.back = NewBackHandler(ui.view, DefaultBackAction(ui.app.Driver(), ui.window))
	ui.back.SetOverlayDismisser(ui.dismissUpdateDialog)
	ui.back.Install(ui.window.Canvas())
	ui.view.InstallZoomShortcuts(ui.window.Canvas())

	ui.window.SetContent(container.NewBorder(ui.progress.Widget(), nil, nil, nil, ui.view))
	ui.window.SetOnClosed(ui.Close)
}

// Start loads the web app and launches the background update check
func (ui *RootUI) Start() {
	online := platform.NetworkAvailable(ui.ctx)
	ui.logger.Info("starting shell",
		zap.String("url", ui.settings.AppURL()),
		zap.String("version", ui.settings.InstalledVersion()),
		zap.Bool("online", online))

	// Offline devices still get the load; the surface shows its error page.
	ui.view.LoadURL(ui.settings.AppURL())

	if ui.checker != nil {
		ui.checker.Start(ui.ctx, func(offer model.UpdateOffer) {
			fyne.Do(func() { ui.showUpdateDialog(offer) })
		})
	}
}

// Close cancels background work tied to the screen
func (ui *RootUI) Close() {
	ui.cancel()
	ui.engine.Stop()
}

// OnNavigate implements browser.Client
func (ui *RootUI) OnNavigate(target string) bool {
	return ui.policy.ShouldOverride(target)
}

// OnProgress implements browser.Client
func (ui *RootUI) OnProgress(progress int) {
	ui.progress.SetProgress(progress)
}

// Engine returns the browser engine behind the view
func (ui *RootUI) Engine() *browser.Engine {
	return ui.engine
}

// View returns the browser view
func (ui *RootUI) View() *BrowserView {
	return ui.view
}

// Progress returns the load indicator
func (ui *RootUI) Progress() *ProgressIndicator {
	return ui.progress
}

// BackHandler returns the back key handler
func (ui *RootUI) BackHandler() *BackHandler {
	return ui.back
}

func (ui *RootUI) onTitleChanged(title string) {
	if title == "" {
		ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
		return
	}
	ui.window.SetTitle(title)
}

func (ui *RootUI) showUpdateDialog(offer model.UpdateOffer) {
	if ui.ctx.Err() != nil {
		return
	}
	d := NewUpdateDialog(offer, ui.localization, ui.openDownload, ui.window)
	d.SetOnClosed(func() {
		if ui.updateDialog == d {
			ui.updateDialog = nil
		}
	})
	ui.updateDialog = d
	d.Show()
}

// dismissUpdateDialog hides a showing update dialog as if it was declined
func (ui *RootUI) dismissUpdateDialog() bool {
	if ui.updateDialog == nil {
		return false
	}
	ui.updateDialog.Hide()
	return true
}

func (ui *RootUI) openDownload(rawURL string) {
	if err := ui.launcher.Open(rawURL); err != nil {
		ui.logger.Warn("failed to open update download", zap.String("url", rawURL), zap.Error(err))
	}
}
