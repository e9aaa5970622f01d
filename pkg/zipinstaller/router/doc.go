// Package router provides wizard navigation with explicit data flow.
//
// Routes form a closed enumeration (RouteStart, RouteInstallation,
// RouteInstallationOption, RouteInstallationProgress, RouteSettings).
// Each route is registered with a screen function, a single transition
// function decides where every screen leads, and a single before hook can
// veto any transition.
//
// # Basic Usage
//
//	r := router.New()
//
//	r.Register(router.RouteStart, func(input any) (any, error) {
//	    return startScreen(input.(StartInput)), nil
//	})
//
//	r.OnTransition(func(from router.Route, result any, stack *router.Stack) (router.Route, any) {
//	    switch from {
//	    case router.RouteStart:
//	        res := result.(StartResult)
//	        stack.Push(from, StartInput{}, res.Resume)
//	        return res.Next, nil
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	r.BeforeTransition(func(from, to router.Route) bool {
//	    return navGuard.Evaluate(ctx, from, to).Allowed()
//	})
//
//	r.Run(router.RouteStart, StartInput{})
//
// # Vetoed transitions
//
// When the before hook returns false the router stays where it was: the
// origin screen runs again with the input it had, and any pushes or pops
// the transition function made to the stack are undone.
//
// # Paths
//
// Routes also have location strings ("/Installation/Option"). ParseRoute
// accepts either form and maps unknown strings to RouteStart. Push lets a
// screen request a location directly, and Redirect rewrites one route into
// another before the before hook sees it.
package router
