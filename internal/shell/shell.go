// Package shell assembles the application: logger, settings, update
// checker and the root screen.
package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/insushim/neis-helper/internal/config"
	"github.com/insushim/neis-helper/internal/logging"
	"github.com/insushim/neis-helper/internal/ui"
	"github.com/insushim/neis-helper/internal/update"
)

const (
	AppID   = "kr.iwneis.neishelper"
	AppName = "NEIS Helper"
)

// Shell owns the single window of the app
type Shell struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	checker  *update.Checker
	root     *ui.RootUI
	logger   *zap.Logger
}

// New builds the shell on a, using version when the app metadata has none
func New(a fyne.App, version string, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}

	a.Settings().SetTheme(ui.NewShellTheme())

	settings := config.NewSettings(a, version)
	checker := update.NewChecker(update.Config{
		Endpoint:         settings.UpdateURL(),
		Accept:           settings.UpdateAccept(),
		ConnectTimeout:   settings.ConnectTimeout(),
		InstalledVersion: settings.InstalledVersion(),
	}, logger.Named("update"))

	window := a.NewWindow(AppName)
	window.SetMaster()

	return &Shell{
		app:      a,
		window:   window,
		settings: settings,
		checker:  checker,
		root:     ui.NewRootUI(window, a, settings, checker, logger),
		logger:   logger,
	}
}

// Window returns the main window
func (s *Shell) Window() fyne.Window {
	return s.window
}

// Root returns the root screen
func (s *Shell) Root() *ui.RootUI {
	return s.root
}

// Checker returns the startup update checker
func (s *Shell) Checker() *update.Checker {
	return s.checker
}

// Start begins loading the web app and the update check
func (s *Shell) Start() {
	s.root.Start()
}

// Run creates the app and blocks until the window is closed
func Run(version string) {
	a := app.NewWithID(AppID)

	logger := logging.NewForBuild(a.Settings().BuildType() == fyne.BuildDebug)
	defer func() { _ = logger.Sync() }()

	s := New(a, version, logger)
	a.Lifecycle().SetOnStarted(s.Start)

	s.window.ShowAndRun()
	logger.Info("shell stopped", zap.String("version", s.settings.InstalledVersion()))
}
