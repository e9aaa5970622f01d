package router

import "strings"

// Route identifies one screen of the installer wizard.
// The set is closed: policy tables elsewhere are indexed by Route and sized
// by RouteCount, so adding a route here breaks their compilation until they
// are extended.
type Route int

const (
	RouteStart Route = iota
	RouteInstallation
	RouteInstallationOption
	RouteInstallationProgress
	RouteSettings

	routeCount
)

// RouteCount is the number of defined routes.
const RouteCount = int(routeCount)

// RouteNone is the origin of the very first navigation, before any screen
// has been shown.
const RouteNone Route = -2

// ScreenExit is a special Route value that signals the router to exit.
const ScreenExit Route = -1

var routeNames = [...]string{
	RouteStart:                "start",
	RouteInstallation:         "installation",
	RouteInstallationOption:   "installation-option",
	RouteInstallationProgress: "installation-progress",
	RouteSettings:             "settings",
}

var routePaths = [...]string{
	RouteStart:                "/",
	RouteInstallation:         "/Installation",
	RouteInstallationOption:   "/Installation/Option",
	RouteInstallationProgress: "/Installation/Progress",
	RouteSettings:             "/Settings",
}

var (
	_ = [1]struct{}{}[len(routeNames)-RouteCount]
	_ = [1]struct{}{}[len(routePaths)-RouteCount]
)

// Valid reports whether r is one of the defined routes.
func (r Route) Valid() bool {
	return r >= 0 && r < routeCount
}

func (r Route) String() string {
	switch {
	case r.Valid():
		return routeNames[r]
	case r == RouteNone:
		return "none"
	case r == ScreenExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Path returns the location string for r, or "" for sentinels.
func (r Route) Path() string {
	if !r.Valid() {
		return ""
	}
	return routePaths[r]
}

// ParseRoute maps a path ("/Installation/Option") or a route name
// ("installation-option") to a Route. Matching ignores case and a trailing
// slash. Anything unrecognised maps to RouteStart.
func ParseRoute(s string) Route {
	s = strings.TrimSpace(s)
	if len(s) > 1 {
		s = strings.TrimSuffix(s, "/")
	}

	for i := range routeCount {
		if strings.EqualFold(s, routePaths[i]) || strings.EqualFold(s, routeNames[i]) {
			return i
		}
	}
	return RouteStart
}
