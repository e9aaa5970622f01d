package guard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

var defaults = wizard.Config{
	InstallPath:             `C:\Program Files`,
	CreateRegistryKey:       true,
	CreateStartMenuShortcut: true,
}

func filledStore() *wizard.Store {
	s := wizard.NewStore(defaults)
	s.Update(func(c *wizard.Config) {
		c.ArchivePath = `C:\pkg.zip`
		c.AppName = "pkg"
		c.InstallPath = `D:\Apps`
		c.CurrentUserOnly = true
		c.CreateDesktopShortcut = true
		c.CreateRegistryKey = false
	})
	return s
}

func encode(t *testing.T, c wizard.Config) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, toml.NewEncoder(&buf).Encode(c))
	return buf.Bytes()
}

type recordingConfirmer struct {
	calls  int
	err    error
	prompt Prompt
}

func (r *recordingConfirmer) Confirm(_ context.Context, p Prompt) error {
	r.calls++
	r.prompt = p
	return r.err
}

func accept() *recordingConfirmer { return &recordingConfirmer{} }

func reject() *recordingConfirmer {
	return &recordingConfirmer{err: errors.New("operation cancelled by user")}
}

var allRoutes = []router.Route{
	router.RouteStart,
	router.RouteInstallation,
	router.RouteInstallationOption,
	router.RouteInstallationProgress,
	router.RouteSettings,
}

func TestSameRouteIsNoOp(t *testing.T) {
	for _, r := range allRoutes {
		store := filledStore()
		before := encode(t, store.Snapshot())
		c := accept()

		d := New(store, c).Evaluate(context.Background(), r, r)

		assert.Equal(t, Allow, d, r.String())
		assert.Equal(t, before, encode(t, store.Snapshot()), r.String())
		assert.Zero(t, c.calls, r.String())
	}
}

func TestLeavingOptionsAccepted(t *testing.T) {
	wantDecision := map[router.Route]Decision{
		router.RouteStart:                Allow,
		router.RouteInstallation:         AllowAfterReset,
		router.RouteInstallationProgress: Allow,
		router.RouteSettings:             Allow,
	}

	for to, want := range wantDecision {
		store := filledStore()
		before := store.Snapshot()
		c := accept()

		d := New(store, c).Evaluate(context.Background(), router.RouteInstallationOption, to)

		assert.Equal(t, want, d, to.String())
		assert.Equal(t, 1, c.calls, to.String())
		if to == router.RouteInstallation {
			assert.Equal(t, defaults, store.Snapshot())
		} else {
			assert.Equal(t, before, store.Snapshot(), to.String())
		}
	}
}

func TestLeavingOptionsRejected(t *testing.T) {
	for _, to := range allRoutes {
		if to == router.RouteInstallationOption {
			continue
		}
		store := filledStore()
		before := encode(t, store.Snapshot())
		c := reject()

		d := New(store, c).Evaluate(context.Background(), router.RouteInstallationOption, to)

		assert.Equal(t, Block, d, to.String())
		assert.Equal(t, before, encode(t, store.Snapshot()), to.String())
	}
}

func TestBlockedTransitionCanBeRetried(t *testing.T) {
	store := filledStore()
	c := reject()
	g := New(store, c)

	require.Equal(t, Block, g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteInstallation))
	require.Equal(t, Block, g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteInstallation))
	assert.False(t, g.Pending())

	c.err = nil
	assert.Equal(t, AllowAfterReset, g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteInstallation))
	assert.Equal(t, defaults, store.Snapshot())
	assert.Equal(t, 3, c.calls)
}

func TestConfirmerPanicBlocks(t *testing.T) {
	store := filledStore()
	before := encode(t, store.Snapshot())
	g := New(store, ConfirmFunc(func(context.Context, Prompt) error {
		panic("dialog crashed")
	}))

	assert.NotPanics(t, func() {
		assert.Equal(t, Block, g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteInstallation))
	})
	assert.Equal(t, before, encode(t, store.Snapshot()))
	assert.False(t, g.Pending())
}

func TestMissingConfirmerBlocks(t *testing.T) {
	store := filledStore()
	d := New(store, nil).Evaluate(context.Background(), router.RouteInstallationOption, router.RouteStart)
	assert.Equal(t, Block, d)
}

func TestCancelledContextBlocks(t *testing.T) {
	store := filledStore()
	c := accept()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(store, c).Evaluate(ctx, router.RouteInstallationOption, router.RouteInstallation)
	assert.Equal(t, Block, d)
	assert.Zero(t, c.calls)
}

func TestEnteringOptionsKeepsArchivePath(t *testing.T) {
	for _, from := range []router.Route{router.RouteNone, router.RouteStart, router.RouteInstallation, router.RouteSettings, router.RouteInstallationProgress} {
		store := filledStore()

		d := New(store, accept()).Evaluate(context.Background(), from, router.RouteInstallationOption)

		want := defaults
		want.ArchivePath = `C:\pkg.zip`
		assert.Equal(t, AllowAfterReset, d, from.String())
		assert.Equal(t, want, store.Snapshot(), from.String())
	}
}

func TestEnteringInstallationResetsEverything(t *testing.T) {
	store := filledStore()
	d := New(store, accept()).Evaluate(context.Background(), router.RouteStart, router.RouteInstallation)

	assert.Equal(t, AllowAfterReset, d)
	assert.Equal(t, defaults, store.Snapshot())
	assert.Empty(t, store.ArchivePath())
}

func TestProgressSettingsStartKeepConfig(t *testing.T) {
	for _, to := range []router.Route{router.RouteInstallationProgress, router.RouteSettings, router.RouteStart, router.Route(99)} {
		store := filledStore()
		before := encode(t, store.Snapshot())

		d := New(store, accept()).Evaluate(context.Background(), router.RouteInstallation, to)

		assert.Equal(t, Allow, d, to.String())
		assert.Equal(t, before, encode(t, store.Snapshot()), to.String())
	}
}

func TestOverlappingEvaluationIsBlocked(t *testing.T) {
	store := filledStore()
	before := store.Snapshot()

	entered := make(chan struct{})
	release := make(chan error)
	g := New(store, ConfirmFunc(func(ctx context.Context, _ Prompt) error {
		close(entered)
		return <-release
	}))

	first := make(chan Decision)
	go func() {
		first <- g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteInstallation)
	}()

	<-entered
	assert.True(t, g.Pending())

	second := g.Evaluate(context.Background(), router.RouteStart, router.RouteInstallationOption)
	assert.Equal(t, Block, second)
	assert.Equal(t, before, store.Snapshot())

	release <- nil
	select {
	case d := <-first:
		assert.Equal(t, AllowAfterReset, d)
	case <-time.After(5 * time.Second):
		t.Fatal("first evaluation did not finish")
	}
	assert.Equal(t, defaults, store.Snapshot())
	assert.False(t, g.Pending())
}

func TestPromptIsPassedThrough(t *testing.T) {
	p := Prompt{Title: "t", Message: "m", Accept: "a", Reject: "r"}
	c := accept()
	New(filledStore(), c, WithPrompt(p)).Evaluate(context.Background(), router.RouteInstallationOption, router.RouteSettings)
	assert.Equal(t, p, c.prompt)
}

func TestPromptFuncIsReadPerConfirmation(t *testing.T) {
	title := "first"
	c := accept()
	g := New(filledStore(), c, WithPromptFunc(func() Prompt { return Prompt{Title: title} }))

	g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteSettings)
	assert.Equal(t, "first", c.prompt.Title)

	title = "second"
	g.Evaluate(context.Background(), router.RouteInstallationOption, router.RouteSettings)
	assert.Equal(t, "second", c.prompt.Title)
}

func TestHookDrivesRouter(t *testing.T) {
	store := filledStore()
	c := reject()
	g := New(store, c)

	visits := 0
	r := router.New().
		Register(router.RouteInstallationOption, func(any) (any, error) {
			visits++
			if visits == 2 {
				c.err = nil
			}
			return nil, nil
		}).
		Register(router.RouteInstallation, func(any) (any, error) { return nil, nil }).
		OnTransition(func(from router.Route, _ any, _ *router.Stack) (router.Route, any) {
			if from == router.RouteInstallationOption {
				return router.RouteInstallation, nil
			}
			return router.ScreenExit, nil
		}).
		BeforeTransition(g.Hook(context.Background()))

	require.NoError(t, r.Run(router.RouteInstallationOption, nil))
	assert.Equal(t, 2, visits)
	assert.Equal(t, defaults, store.Snapshot())
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "allow-after-reset", AllowAfterReset.String())
	assert.Equal(t, "block", Block.String())
	assert.True(t, AllowAfterReset.Allowed())
	assert.False(t, Block.Allowed())
}
