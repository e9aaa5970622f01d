package guard

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// Decision is the outcome of evaluating a transition.
type Decision int

const (
	Allow           Decision = iota // Proceed, config untouched
	AllowAfterReset                 // Proceed, config was reset first
	Block                           // Stay on the current screen, config untouched
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case AllowAfterReset:
		return "allow-after-reset"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Allowed reports whether the transition may complete.
func (d Decision) Allowed() bool {
	return d == Allow || d == AllowAfterReset
}

// Prompt is the text of the "leave and lose changes" confirmation.
type Prompt struct {
	Title   string
	Message string
	Accept  string
	Reject  string
}

// Confirmer asks the user to confirm a destructive transition.
// A nil error means the user accepted. Any error, including the caller's
// context ending, means the transition must not happen.
type Confirmer interface {
	Confirm(ctx context.Context, prompt Prompt) error
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt Prompt) error

func (f ConfirmFunc) Confirm(ctx context.Context, prompt Prompt) error {
	return f(ctx, prompt)
}

// Store is the part of the wizard store the guard mutates.
type Store interface {
	Reset()
	ResetPreserving(fields ...wizard.Field)
}

// Guard decides whether a wizard transition may proceed and applies the
// config reset tied to the destination.
type Guard struct {
	store     Store
	confirmer Confirmer
	prompt    func() Prompt
	logger    *slog.Logger
	inFlight  atomic.Bool
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger decisions are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithPrompt sets the confirmation text.
func WithPrompt(prompt Prompt) Option {
	return func(g *Guard) {
		g.prompt = func() Prompt { return prompt }
	}
}

// WithPromptFunc sets a function called for the confirmation text each time
// it is needed, so a language change takes effect immediately.
func WithPromptFunc(fn func() Prompt) Option {
	return func(g *Guard) {
		if fn != nil {
			g.prompt = fn
		}
	}
}

// DefaultPrompt is used when no localized prompt is configured.
var DefaultPrompt = Prompt{
	Title:   "Leave installation options?",
	Message: "Your changes to the installation options will be lost.",
	Accept:  "Leave",
	Reject:  "Stay",
}

// New creates a Guard that mutates store and asks confirmer before leaving
// a screen with unsaved input.
func New(store Store, confirmer Confirmer, opts ...Option) *Guard {
	g := &Guard{
		store:     store,
		confirmer: confirmer,
		prompt:    func() Prompt { return DefaultPrompt },
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate decides the transition from -> to. It blocks while the user is
// asked for confirmation. An evaluation that starts while another one is
// still in flight is blocked without touching the config.
func (g *Guard) Evaluate(ctx context.Context, from, to router.Route) Decision {
	if !g.inFlight.CompareAndSwap(false, true) {
		g.logger.Warn("Navigation overlaps a pending transition", "from", from.String(), "to", to.String())
		return Block
	}
	defer g.inFlight.Store(false)

	d := g.evaluate(ctx, from, to)
	g.logger.Debug("Navigation decision", "from", from.String(), "to", to.String(), "decision", d.String())
	return d
}

func (g *Guard) evaluate(ctx context.Context, from, to router.Route) Decision {
	if from == to {
		return Allow
	}

	if g.needsConfirmation(from, to) {
		if err := g.confirm(ctx); err != nil {
			g.logger.Debug("Navigation not confirmed", "from", from.String(), "to", to.String(), "error", err)
			return Block
		}
	}

	switch policyFor(to).onEnter {
	case resetConfig:
		g.store.Reset()
		return AllowAfterReset
	case resetKeepArchive:
		g.store.ResetPreserving(preservedOnOption...)
		return AllowAfterReset
	default:
		return Allow
	}
}

func (g *Guard) needsConfirmation(from, to router.Route) bool {
	return from != to && policyFor(from).confirmLeave
}

// confirm never lets a misbehaving Confirmer escape: a panic counts as a
// rejection like any other error.
func (g *Guard) confirm(ctx context.Context) (err error) {
	if g.confirmer == nil {
		return fmt.Errorf("guard: no confirmer")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("guard: confirmer panicked: %v", r)
		}
	}()
	return g.confirmer.Confirm(ctx, g.prompt())
}

// Pending reports whether an evaluation is in flight.
func (g *Guard) Pending() bool {
	return g.inFlight.Load()
}

// Hook adapts the guard to the router's before-transition hook.
func (g *Guard) Hook(ctx context.Context) router.BeforeFunc {
	return func(from, to router.Route) bool {
		return g.Evaluate(ctx, from, to).Allowed()
	}
}
