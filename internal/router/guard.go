// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

// SessionView is the part of the session the guards consult.
type SessionView interface {
	IsAuthenticated() bool
	IsLoading() bool
}

// DecisionKind is what a guard decided about a route.
type DecisionKind int

const (
	// Render shows the route.
	Render DecisionKind = iota
	// Redirect sends the user to Decision.Target.
	Redirect
	// Placeholder shows a neutral screen while the session is loading.
	Placeholder
)

func (k DecisionKind) String() string {
	switch k {
	case Redirect:
		return "redirect"
	case Placeholder:
		return "placeholder"
	default:
		return "render"
	}
}

// Decision is the outcome of a guard check.
type Decision struct {
	Kind   DecisionKind
	Target Location
}

// Guard decides whether loc may be shown in the session's current state.
type Guard interface {
	Check(s SessionView, loc Location) Decision
}

// Protected admits only authenticated users. Others are sent to sign-in
// with the attempted path kept for after sign-in.
type Protected struct{}

func (Protected) Check(s SessionView, loc Location) Decision {
	switch {
	case s.IsLoading():
		return Decision{Kind: Placeholder}
	case !s.IsAuthenticated():
		return Decision{Kind: Redirect, Target: Location{Path: PathSignIn, From: loc.Path}}
	default:
		return Decision{Kind: Render}
	}
}

// Public admits only anonymous users. Authenticated users are sent back to
// the protected path they came from, or to the dashboard.
type Public struct{}

func (Public) Check(s SessionView, loc Location) Decision {
	switch {
	case s.IsLoading():
		return Decision{Kind: Placeholder}
	case s.IsAuthenticated():
		return Decision{Kind: Redirect, Target: Location{Path: returnPath(loc.From)}}
	default:
		return Decision{Kind: Render}
	}
}

// returnPath is where a freshly signed-in user lands.
func returnPath(from string) string {
	if from == "" || from == PathSignIn || from == PathSignUp {
		return PathDashboard
	}
	return from
}
