package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrBlocked is returned by Run when the before-transition hook vetoes the
// initial navigation.
var ErrBlocked = errors.New("router: navigation blocked")

// ScreenFunc is a function that runs a screen.
// It takes an input and returns a result.
// The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the route that just completed, its result, and the navigation stack.
// It returns the next route to navigate to and its input.
//
// Return (route, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Route, result any, stack *Stack) (next Route, input any)

// BeforeFunc intercepts every transition before it completes.
// Returning false cancels the transition and the router stays on from.
// from is RouteNone for the initial navigation.
type BeforeFunc func(from, to Route) bool

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place. A single before hook
// can veto any transition.
type Router struct {
	screens    map[Route]ScreenFunc
	redirects  map[Route]Route
	transition TransitionFunc
	before     BeforeFunc
	stack      *Stack
	logger     *slog.Logger

	current Route
	pending *pendingPush
}

type pendingPush struct {
	to    Route
	input any
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens:   make(map[Route]ScreenFunc),
		redirects: make(map[Route]Route),
		stack:     NewStack(),
		logger:    slog.New(slog.DiscardHandler),
		current:   RouteNone,
	}
}

// WithLogger sets the logger used for navigation events.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this route.
func (r *Router) Register(route Route, fn ScreenFunc) *Router {
	r.screens[route] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// BeforeTransition installs the hook consulted before every transition.
// There is exactly one hook; a later call replaces the earlier one.
func (r *Router) BeforeTransition(fn BeforeFunc) *Router {
	r.before = fn
	return r
}

// Redirect rewrites navigation to from into navigation to to.
// Redirects are resolved before the before hook runs and do not chain.
func (r *Router) Redirect(from, to Route) *Router {
	r.redirects[from] = to
	return r
}

// Push requests navigation to path once the running screen returns.
// It overrides the transition function's choice for that step but still
// passes through the before hook. Unknown paths resolve to RouteStart.
func (r *Router) Push(path string, input any) {
	r.PushRoute(ParseRoute(path), input)
}

// PushRoute is Push for an already resolved Route.
func (r *Router) PushRoute(to Route, input any) {
	r.pending = &pendingPush{to: to, input: input}
}

// Current returns the route of the screen being shown, or RouteNone before
// Run has started.
func (r *Router) Current() Route {
	return r.current
}

// Run starts the router at the given route with the given input.
// It continues running until the transition function returns ScreenExit
// or an error occurs.
func (r *Router) Run(start Route, input any) error {
	return r.RunContext(context.Background(), start, input)
}

// RunContext is Run that also stops, returning ctx.Err(), once ctx is done.
// ctx is checked before every screen, so a transition vetoed because ctx
// ended does not show the origin screen again.
func (r *Router) RunContext(ctx context.Context, start Route, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	start = r.resolve(start)
	if !r.allow(RouteNone, start) {
		return ErrBlocked
	}

	current := start
	currentInput := input

	for {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("router stopped", "route", current.String(), "error", err)
			return err
		}
		r.current = current

		// Get the screen function
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", current)
		}

		// Run the screen
		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", current, err)
		}

		saved := r.stack.snapshot()

		// Determine next screen
		next, nextInput := r.transition(current, result, r.stack)
		if p := r.pending; p != nil {
			r.pending = nil
			next, nextInput = p.to, p.input
		}

		// Check for exit
		if next == ScreenExit {
			return nil
		}

		next = r.resolve(next)
		if !r.allow(current, next) {
			r.stack.restore(saved)
			continue
		}

		// Move to next screen
		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
// This allows the transition function to push/pop for back navigation.
func (r *Router) Stack() *Stack {
	return r.stack
}

func (r *Router) resolve(to Route) Route {
	if dst, ok := r.redirects[to]; ok {
		r.logger.Debug("router redirect", "from", to.String(), "to", dst.String())
		return dst
	}
	return to
}

func (r *Router) allow(from, to Route) bool {
	if r.before == nil {
		return true
	}
	if r.before(from, to) {
		r.logger.Debug("router transition", "from", from.String(), "to", to.String())
		return true
	}
	r.logger.Debug("router transition blocked", "from", from.String(), "to", to.String())
	return false
}
