// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router keeps track of the screen the client shows and decides,
// through route guards, whether a screen may be shown in the current
// session state.
package router

import (
	"sync"

	"github.com/MKhiriev/go-task-manager/internal/logger"
)

// Route paths.
const (
	PathRoot      = "/"
	PathSignIn    = "/signin"
	PathSignUp    = "/signup"
	PathDashboard = "/dashboard"
	PathAddTask   = "/task/add"
	PathEditTask  = "/task/edit"
)

// maxRedirects bounds Resolve on a misconfigured route table.
const maxRedirects = 8

// Location is one navigation target.
type Location struct {
	Path string
	// From is the protected path the user was sent away from, restored
	// after sign-in.
	From string
	// TaskID selects the task on the edit screen.
	TaskID string
}

// Router is safe for concurrent use.
type Router struct {
	mu      sync.RWMutex
	current Location
	routes  map[string]Guard
	session SessionView

	subMu       sync.Mutex
	subscribers map[int]func(Location, Decision)
	nextSubID   int

	logger *logger.Logger
}

// New returns a router over the application's route table, positioned on
// the root path.
func New(session SessionView, log *logger.Logger) *Router {
	return &Router{
		current: Location{Path: PathRoot},
		routes: map[string]Guard{
			PathSignIn:    Public{},
			PathSignUp:    Public{},
			PathDashboard: Protected{},
			PathAddTask:   Protected{},
			PathEditTask:  Protected{},
		},
		session:     session,
		subscribers: make(map[int]func(Location, Decision)),
		logger:      log,
	}
}

// Resolve applies the guards to loc and follows redirects. It returns the
// location to show and the final decision, which is either Render or
// Placeholder.
func (r *Router) Resolve(loc Location) (Location, Decision) {
	for i := 0; i < maxRedirects; i++ {
		guard, ok := r.routes[loc.Path]
		if !ok {
			// the root and unknown paths land on sign-in
			loc = Location{Path: PathSignIn}
			continue
		}

		d := guard.Check(r.session, loc)
		if d.Kind != Redirect {
			return loc, d
		}
		loc = d.Target
	}

	r.logger.Error().Str("func", "Router.Resolve").Str("path", loc.Path).Msg("redirect loop")
	return loc, Decision{Kind: Placeholder}
}

// Go navigates to loc.
func (r *Router) Go(loc Location) {
	resolved, d := r.Resolve(loc)

	r.mu.Lock()
	r.current = resolved
	r.mu.Unlock()

	r.logger.Debug().
		Str("func", "Router.Go").
		Str("requested", loc.Path).
		Str("path", resolved.Path).
		Stringer("decision", d.Kind).
		Msg("navigate")

	r.publish(resolved, d)
}

// Navigate navigates to path.
func (r *Router) Navigate(path string) {
	r.Go(Location{Path: path})
}

// Refresh re-applies the guards to the current location, e.g. after the
// session state changed.
func (r *Router) Refresh() {
	r.Go(r.Current())
}

// AfterSignIn navigates to the protected path the user was sent away from,
// or to the dashboard.
func (r *Router) AfterSignIn() {
	r.Navigate(returnPath(r.Current().From))
}

// Current returns the location being shown.
func (r *Router) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// IsPublic reports whether the current route is one of the sign-in or
// sign-up screens.
func (r *Router) IsPublic() bool {
	_, ok := r.routes[r.Current().Path].(Public)
	return ok
}

// Subscribe registers fn to be called after every navigation. The returned
// function removes it.
func (r *Router) Subscribe(fn func(Location, Decision)) func() {
	r.subMu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		defer r.subMu.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Router) publish(loc Location, d Decision) {
	r.subMu.Lock()
	subs := make([]func(Location, Decision), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.subMu.Unlock()

	for _, fn := range subs {
		fn(loc, d)
	}
}
