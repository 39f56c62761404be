// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"testing"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	authenticated bool
	loading       bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f *fakeSession) IsLoading() bool       { return f.loading }

var (
	anonymous = &fakeSession{}
	loading   = &fakeSession{loading: true}
	signedIn  = &fakeSession{authenticated: true}
)

func TestGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   Guard
		session SessionView
		want    Decision
	}{
		{
			name:    "protected renders for a signed-in user",
			guard:   Protected{},
			session: signedIn,
			want:    Decision{Kind: Render},
		},
		{
			name:    "protected redirects anonymous users keeping the destination",
			guard:   Protected{},
			session: anonymous,
			want:    Decision{Kind: Redirect, Target: Location{Path: PathSignIn, From: PathAddTask}},
		},
		{
			name:    "protected waits while loading",
			guard:   Protected{},
			session: loading,
			want:    Decision{Kind: Placeholder},
		},
		{
			name:    "public renders for anonymous users",
			guard:   Public{},
			session: anonymous,
			want:    Decision{Kind: Render},
		},
		{
			name:    "public redirects a signed-in user to the dashboard",
			guard:   Public{},
			session: signedIn,
			want:    Decision{Kind: Redirect, Target: Location{Path: PathDashboard}},
		},
		{
			name:    "public waits while loading",
			guard:   Public{},
			session: loading,
			want:    Decision{Kind: Placeholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.guard.Check(tt.session, Location{Path: PathAddTask}))
		})
	}
}

func TestRouter_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		session  SessionView
		loc      Location
		wantLoc  Location
		wantKind DecisionKind
	}{
		{
			name:     "root goes to sign-in",
			session:  anonymous,
			loc:      Location{Path: PathRoot},
			wantLoc:  Location{Path: PathSignIn},
			wantKind: Render,
		},
		{
			name:     "root of a signed-in user ends on the dashboard",
			session:  signedIn,
			loc:      Location{Path: PathRoot},
			wantLoc:  Location{Path: PathDashboard},
			wantKind: Render,
		},
		{
			name:     "unknown path",
			session:  anonymous,
			loc:      Location{Path: "/nope"},
			wantLoc:  Location{Path: PathSignIn},
			wantKind: Render,
		},
		{
			name:     "protected path while anonymous",
			session:  anonymous,
			loc:      Location{Path: PathEditTask, TaskID: "t1"},
			wantLoc:  Location{Path: PathSignIn, From: PathEditTask},
			wantKind: Render,
		},
		{
			name:     "edit keeps the task id",
			session:  signedIn,
			loc:      Location{Path: PathEditTask, TaskID: "t1"},
			wantLoc:  Location{Path: PathEditTask, TaskID: "t1"},
			wantKind: Render,
		},
		{
			name:     "loading shows a placeholder in place",
			session:  loading,
			loc:      Location{Path: PathDashboard},
			wantLoc:  Location{Path: PathDashboard},
			wantKind: Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.session, logger.Nop())
			loc, d := r.Resolve(tt.loc)
			assert.Equal(t, tt.wantLoc, loc)
			assert.Equal(t, tt.wantKind, d.Kind)
		})
	}
}

func TestRouter_SignInFlow(t *testing.T) {
	session := &fakeSession{}
	r := New(session, logger.Nop())

	var seen []string
	r.Subscribe(func(loc Location, _ Decision) { seen = append(seen, loc.Path) })

	r.Navigate(PathAddTask)
	assert.Equal(t, Location{Path: PathSignIn, From: PathAddTask}, r.Current())
	assert.True(t, r.IsPublic())

	session.authenticated = true
	r.AfterSignIn()
	assert.Equal(t, Location{Path: PathAddTask}, r.Current())
	assert.False(t, r.IsPublic())

	assert.Equal(t, []string{PathSignIn, PathAddTask}, seen)
}

func TestRouter_AfterSignInDefaultsToDashboard(t *testing.T) {
	session := &fakeSession{}
	r := New(session, logger.Nop())

	r.Navigate(PathSignIn)
	session.authenticated = true
	r.AfterSignIn()

	assert.Equal(t, PathDashboard, r.Current().Path)
}

func TestRouter_RefreshAfterSessionChange(t *testing.T) {
	session := &fakeSession{loading: true}
	r := New(session, logger.Nop())

	var decisions []DecisionKind
	r.Subscribe(func(_ Location, d Decision) { decisions = append(decisions, d.Kind) })

	r.Navigate(PathDashboard)
	assert.Equal(t, PathDashboard, r.Current().Path)

	// the credential turned out to be expired
	session.loading = false
	r.Refresh()

	assert.Equal(t, Location{Path: PathSignIn, From: PathDashboard}, r.Current())
	assert.Equal(t, []DecisionKind{Placeholder, Render}, decisions)
}

func TestPublic_ReturnsToOrigin(t *testing.T) {
	d := Public{}.Check(signedIn, Location{Path: PathSignIn, From: PathAddTask})
	assert.Equal(t, Decision{Kind: Redirect, Target: Location{Path: PathAddTask}}, d)

	d = Public{}.Check(signedIn, Location{Path: PathSignIn, From: PathSignUp})
	assert.Equal(t, Decision{Kind: Redirect, Target: Location{Path: PathDashboard}}, d)
}

func TestRouter_RefreshAfterSignInKeepsOrigin(t *testing.T) {
	session := &fakeSession{}
	r := New(session, logger.Nop())

	r.Navigate(PathAddTask)
	session.authenticated = true
	r.Refresh()

	assert.Equal(t, Location{Path: PathAddTask}, r.Current())
}

func TestRouter_Unsubscribe(t *testing.T) {
	r := New(anonymous, logger.Nop())

	calls := 0
	unsubscribe := r.Subscribe(func(Location, Decision) { calls++ })
	r.Navigate(PathSignIn)
	unsubscribe()
	r.Navigate(PathSignUp)

	assert.Equal(t, 1, calls)
}
