package zipinstaller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/guard"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/locale"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// AppOptions configures NewApp.
type AppOptions struct {
	Settings     settings.Settings
	SettingsPath string
	Localizer    *locale.Localizer
	Logger       *slog.Logger

	// AppListPath is where finished installs are recorded. Defaults to the
	// app list next to SettingsPath; empty SettingsPath disables the list.
	AppListPath string

	// SkipMenu sends the start route straight to archive selection.
	SkipMenu bool

	// Confirmer asks before leaving the options screen. Defaults to a
	// ConfirmDialog.
	Confirmer guard.Confirmer
}

// App is the installer wizard: five screens driven by a router whose only
// before-transition hook is the navigation guard.
type App struct {
	router       *router.Router
	guard        *guard.Guard
	store        *wizard.Store
	confirmer    guard.Confirmer
	settings     settings.Settings
	settingsPath string
	appListPath  string
	loc          *locale.Localizer
	logger       *slog.Logger
	skipMenu     bool

	ctx context.Context
}

// NewApp wires the router, the guard and the wizard store.
func NewApp(opts AppOptions) *App {
	logger := opts.Logger
	if logger == nil {
		logger = GetLogger()
	}

	appListPath := opts.AppListPath
	if appListPath == "" && opts.SettingsPath != "" {
		appListPath = settings.AppListPath(opts.SettingsPath)
	}

	a := &App{
		store:        wizard.NewStore(opts.Settings.WizardDefaults()),
		settings:     opts.Settings,
		settingsPath: opts.SettingsPath,
		appListPath:  appListPath,
		loc:          opts.Localizer,
		logger:       logger,
		skipMenu:     opts.SkipMenu,
		ctx:          context.Background(),
	}

	a.confirmer = opts.Confirmer
	if a.confirmer == nil {
		a.confirmer = &ConfirmDialog{InitialReject: true}
	}
	a.guard = guard.New(a.store, a.confirmer,
		guard.WithLogger(logger),
		guard.WithPromptFunc(func() guard.Prompt { return a.loc.LeavePrompt() }),
	)

	a.router = router.New().
		WithLogger(logger).
		Register(router.RouteStart, a.startScreen).
		Register(router.RouteInstallation, a.installationScreen).
		Register(router.RouteInstallationOption, a.optionScreen).
		Register(router.RouteInstallationProgress, a.progressScreen).
		Register(router.RouteSettings, a.settingsScreen).
		OnTransition(a.transition)

	if a.skipMenu {
		a.router.Redirect(router.RouteStart, router.RouteInstallation)
	}
	return a
}

// Store returns the wizard store, e.g. to pre-fill the archive path.
func (a *App) Store() *wizard.Store {
	return a.store
}

// Run shows the wizard from start until the user quits or ctx ends.
// Ending ctx rejects any pending confirmation and closes the screen being
// shown, the same as closing the window.
func (a *App) Run(ctx context.Context, start router.Route) error {
	a.ctx = ctx
	a.router.BeforeTransition(a.guard.Hook(ctx))

	stop := context.AfterFunc(ctx, func() {
		a.logger.Info("Stopping wizard", "reason", context.Cause(ctx))
		quitRequested.Store(true)
	})
	defer stop()

	a.logger.Info("Starting wizard", "route", start.Path())
	err := a.router.RunContext(ctx, start, nil)
	if IsQuit(err) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// step is the result every screen hands to the transition function.
type step struct {
	to   router.Route
	back bool // return to the previous screen
	home bool // forget history and go to the start screen
	exit bool
}

func (a *App) transition(from router.Route, result any, stack *router.Stack) (router.Route, any) {
	s, _ := result.(step)

	switch {
	case s.exit:
		return router.ScreenExit, nil

	case s.home:
		stack.Clear()
		return router.RouteStart, nil

	case s.back:
		if e := stack.Pop(); e != nil {
			return e.Route, e.Input
		}
		if from == router.RouteStart || (a.skipMenu && from == router.RouteInstallation) {
			return router.ScreenExit, nil
		}
		return router.RouteStart, nil

	default:
		stack.Push(from, nil, nil)
		return s.to, nil
	}
}
