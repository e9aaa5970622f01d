package guard

import (
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/router"
	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/wizard"
)

// enterPolicy is what entering a route does to the wizard config.
type enterPolicy int

const (
	keepConfig enterPolicy = iota
	resetConfig
	resetKeepArchive
)

type routePolicy struct {
	onEnter      enterPolicy
	confirmLeave bool // leaving discards unsaved input
}

// policies has one entry per route. The assertion below fails to compile
// when a route is added without a matching entry.
var policies = [...]routePolicy{
	router.RouteStart:                {onEnter: keepConfig},
	router.RouteInstallation:         {onEnter: resetConfig},
	router.RouteInstallationOption:   {onEnter: resetKeepArchive, confirmLeave: true},
	router.RouteInstallationProgress: {onEnter: keepConfig},
	router.RouteSettings:             {onEnter: keepConfig},
}

var _ = [1]struct{}{}[len(policies)-router.RouteCount]

// preservedOnOption survive the reset done when entering the option screen.
var preservedOnOption = []wizard.Field{wizard.FieldArchivePath}

// policyFor returns the policy of r. Sentinels and out-of-range values get
// the zero policy: no confirmation, no mutation.
func policyFor(r router.Route) routePolicy {
	if !r.Valid() {
		return routePolicy{}
	}
	return policies[r]
}
