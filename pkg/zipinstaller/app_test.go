package zipinstaller

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/guard"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/locale"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/settings"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// scripted replaces the real screens. Each visit of a route runs the next
// function queued for it.
type scripted struct {
	t      *testing.T
	visits []router.Route
	queue  map[router.Route][]func() (any, error)
}

func (s *scripted) on(r router.Route, fns ...func() (any, error)) {
	s.queue[r] = append(s.queue[r], fns...)
}

func (s *scripted) screen(r router.Route) router.ScreenFunc {
	return func(any) (any, error) {
		s.visits = append(s.visits, r)
		fns := s.queue[r]
		if len(fns) == 0 {
			s.t.Fatalf("unexpected visit of %s", r)
		}
		s.queue[r] = fns[1:]
		return fns[0]()
	}
}

func stepTo(to router.Route) func() (any, error) {
	return func() (any, error) { return step{to: to}, nil }
}

func stepBack() (any, error) { return step{back: true}, nil }
func stepHome() (any, error) { return step{home: true}, nil }
func stepExit() (any, error) { return step{exit: true}, nil }

func testLocalizer(t *testing.T) *locale.Localizer {
	t.Helper()
	loc, err := locale.New("en")
	require.NoError(t, err)
	return loc
}

func newTestApp(t *testing.T, confirmer guard.Confirmer, skipMenu bool) (*App, *scripted) {
	t.Helper()

	a := NewApp(AppOptions{
		Settings:  settings.Default(),
		Localizer: testLocalizer(t),
		Logger:    slog.New(slog.DiscardHandler),
		SkipMenu:  skipMenu,
		Confirmer: confirmer,
	})

	s := &scripted{t: t, queue: make(map[router.Route][]func() (any, error))}
	for r := range router.RouteCount {
		a.router.Register(router.Route(r), s.screen(router.Route(r)))
	}
	return a, s
}

// answers replies to each confirmation in turn: true accepts.
func answers(t *testing.T, replies ...bool) (guard.ConfirmFunc, *int) {
	calls := 0
	return func(context.Context, guard.Prompt) error {
		if calls >= len(replies) {
			t.Fatalf("unexpected confirmation #%d", calls+1)
		}
		ok := replies[calls]
		calls++
		if ok {
			return nil
		}
		return ErrCancelled
	}, &calls
}

func TestRejectedLeaveKeepsOptionsEdits(t *testing.T) {
	confirm, calls := answers(t, false, true)
	a, s := newTestApp(t, confirm, false)

	s.on(router.RouteStart, stepTo(router.RouteInstallation), stepExit)
	s.on(router.RouteInstallation, func() (any, error) {
		a.store.SetArchivePath("/tmp/Tool.zip")
		return step{to: router.RouteInstallationOption}, nil
	})
	s.on(router.RouteInstallationOption,
		func() (any, error) {
			a.store.Update(func(c *wizard.Config) { c.AppName = "Edited" })
			return stepBack()
		},
		func() (any, error) {
			cfg := a.store.Snapshot()
			assert.Equal(t, "Edited", cfg.AppName, "edits survive a blocked leave")
			assert.Equal(t, "/tmp/Tool.zip", cfg.ArchivePath)
			return step{to: router.RouteInstallationProgress}, nil
		},
	)
	s.on(router.RouteInstallationProgress, func() (any, error) {
		cfg := a.store.Snapshot()
		assert.Equal(t, "Edited", cfg.AppName, "progress keeps the config")
		return stepHome()
	})

	require.NoError(t, a.Run(context.Background(), router.RouteStart))

	assert.Equal(t, []router.Route{
		router.RouteStart,
		router.RouteInstallation,
		router.RouteInstallationOption,
		router.RouteInstallationOption,
		router.RouteInstallationProgress,
		router.RouteStart,
	}, s.visits)
	assert.Equal(t, 2, *calls)
	assert.False(t, a.guard.Pending())
}

func TestAcceptedLeaveResetsConfig(t *testing.T) {
	confirm, calls := answers(t, true)
	a, s := newTestApp(t, confirm, false)

	s.on(router.RouteStart, stepTo(router.RouteInstallation))
	s.on(router.RouteInstallation,
		func() (any, error) {
			a.store.SetArchivePath("/tmp/Tool.zip")
			return step{to: router.RouteInstallationOption}, nil
		},
		func() (any, error) {
			cfg := a.store.Snapshot()
			assert.Empty(t, cfg.ArchivePath, "installation starts from defaults")
			assert.Empty(t, cfg.AppName)
			return stepExit()
		},
	)
	s.on(router.RouteInstallationOption, func() (any, error) {
		a.store.Update(func(c *wizard.Config) { c.AppName = "Edited" })
		return stepBack()
	})

	require.NoError(t, a.Run(context.Background(), router.RouteStart))
	assert.Equal(t, 1, *calls)
}

func TestEnteringOptionsKeepsOnlyTheArchive(t *testing.T) {
	confirm, _ := answers(t)
	a, s := newTestApp(t, confirm, false)

	a.store.Update(func(c *wizard.Config) {
		c.ArchivePath = "/tmp/Tool.zip"
		c.AppName = "Stale"
		c.CreateDesktopShortcut = true
	})

	s.on(router.RouteInstallationOption, func() (any, error) {
		cfg := a.store.Snapshot()
		assert.Equal(t, "/tmp/Tool.zip", cfg.ArchivePath)
		assert.Empty(t, cfg.AppName)
		assert.Equal(t, a.store.Defaults().CreateDesktopShortcut, cfg.CreateDesktopShortcut)
		return nil, ErrQuit
	})

	require.NoError(t, a.Run(context.Background(), router.RouteInstallationOption))
}

func TestCancelledContextStopsRun(t *testing.T) {
	t.Cleanup(func() { quitRequested.Store(false) })

	confirm, calls := answers(t)
	a, s := newTestApp(t, confirm, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.on(router.RouteInstallationOption, func() (any, error) {
		cancel()
		return stepBack()
	})

	require.NoError(t, a.Run(ctx, router.RouteInstallationOption))
	assert.Equal(t, []router.Route{router.RouteInstallationOption}, s.visits, "options are not shown again")
	assert.Zero(t, *calls, "no dialog once the context has ended")
}

func TestCancelledContextClosesOpenScreen(t *testing.T) {
	t.Cleanup(func() { quitRequested.Store(false) })

	confirm, _ := answers(t)
	a, s := newTestApp(t, confirm, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stands in for a list waiting on input: it returns once the quit flag
	// is raised, as runFrames does.
	s.on(router.RouteStart, func() (any, error) {
		cancel()
		assert.Eventually(t, quitRequested.Load, time.Second, time.Millisecond)
		return nil, ErrQuit
	})

	require.NoError(t, a.Run(ctx, router.RouteStart))
}

func TestSettingsRoundTripDoesNotConfirm(t *testing.T) {
	confirm, calls := answers(t)
	a, s := newTestApp(t, confirm, false)

	s.on(router.RouteStart, stepTo(router.RouteSettings), stepExit)
	s.on(router.RouteSettings, stepBack)

	require.NoError(t, a.Run(context.Background(), router.RouteStart))
	assert.Equal(t, []router.Route{router.RouteStart, router.RouteSettings, router.RouteStart}, s.visits)
	assert.Zero(t, *calls)
}

func TestSkipMenuStartsAtInstallation(t *testing.T) {
	confirm, _ := answers(t)
	a, s := newTestApp(t, confirm, true)

	s.on(router.RouteInstallation, stepBack)

	require.NoError(t, a.Run(context.Background(), router.RouteStart))
	assert.Equal(t, []router.Route{router.RouteInstallation}, s.visits)
}

func TestRunReturnsScreenErrors(t *testing.T) {
	confirm, _ := answers(t)
	a, s := newTestApp(t, confirm, false)

	boom := errors.New("boom")
	s.on(router.RouteStart, func() (any, error) { return nil, boom })

	err := a.Run(context.Background(), router.RouteStart)
	assert.ErrorIs(t, err, boom)
}

func TestTransition(t *testing.T) {
	confirm, _ := answers(t)
	a, _ := newTestApp(t, confirm, false)

	stack := router.NewStack()

	next, _ := a.transition(router.RouteStart, step{to: router.RouteSettings}, stack)
	assert.Equal(t, router.RouteSettings, next)
	assert.Equal(t, 1, stack.Len())

	next, _ = a.transition(router.RouteSettings, step{back: true}, stack)
	assert.Equal(t, router.RouteStart, next)
	assert.True(t, stack.IsEmpty())

	next, _ = a.transition(router.RouteSettings, step{back: true}, stack)
	assert.Equal(t, router.RouteStart, next, "empty history falls back to start")

	next, _ = a.transition(router.RouteStart, step{back: true}, stack)
	assert.Equal(t, router.ScreenExit, next)

	stack.Push(router.RouteStart, nil, nil)
	stack.Push(router.RouteInstallation, nil, nil)
	next, _ = a.transition(router.RouteInstallationProgress, step{home: true}, stack)
	assert.Equal(t, router.RouteStart, next)
	assert.True(t, stack.IsEmpty())

	next, _ = a.transition(router.RouteStart, step{exit: true}, stack)
	assert.Equal(t, router.ScreenExit, next)
}

func TestApplySettings(t *testing.T) {
	confirm, _ := answers(t)
	a, _ := newTestApp(t, confirm, false)
	a.settingsPath = filepath.Join(t.TempDir(), settings.Filename)

	s := settings.Default()
	s.Language = "zh-CN"
	s.Theme = settings.ThemeLight
	s.Installation.CurrentUserOnly = true
	s.Installation.CurrentUser.InstallPath = "/home/me/apps"

	require.NoError(t, a.applySettings(s))

	saved, err := settings.Load(a.settingsPath)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", saved.Language)
	assert.Equal(t, settings.ThemeLight, saved.Theme)

	assert.Equal(t, "zh", a.loc.Tag().String()[:2])
	assert.Equal(t, "/home/me/apps", a.store.Defaults().InstallPath)
	assert.True(t, a.store.Defaults().CurrentUserOnly)
}
