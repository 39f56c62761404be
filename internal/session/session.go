// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authentication state of the client: whether a
// user is signed in, whether the current user is still being loaded, and the
// transitions between those states.
//
// A Session is created once by the application root and passed to every
// component that needs it. It is safe for concurrent use.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/models"
)

// ErrSessionEnded is returned by a user load whose session was ended by a
// logout or an authorization failure while the load was in flight.
var ErrSessionEnded = errors.New("session ended while loading user")

// State is the authentication state of the session.
type State int

const (
	// StateUnauthenticated: no user is loaded.
	StateUnauthenticated State = iota
	// StateLoading: a credential is stored and the current user is being
	// fetched.
	StateLoading
	// StateAuthenticated: a credential is stored and the user is loaded.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Snapshot is the session as observed at one moment.
type Snapshot struct {
	State State
	User  *models.User
	Err   error
}

// Navigator moves the application to another route.
type Navigator interface {
	Navigate(path string)
}

// SignInPath is where the session sends the user after logout.
const SignInPath = "/signin"

// Session is the client's authentication state machine.
type Session struct {
	mu      sync.RWMutex
	state   State
	user    *models.User
	lastErr error
	// epoch is bumped by Logout and HandleUnauthorized; loads started in an
	// earlier epoch never authenticate
	epoch uint64

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int

	auth      service.AuthService
	cache     *cache.Cache
	notifier  service.Notifier
	navigator Navigator

	logger *logger.Logger
}

// New returns an unauthenticated session. Call [Session.Boot] to pick up a
// stored credential.
func New(auth service.AuthService, c *cache.Cache, notifier service.Notifier, log *logger.Logger) *Session {
	return &Session{
		state:       StateUnauthenticated,
		subscribers: make(map[int]func(Snapshot)),
		auth:        auth,
		cache:       c,
		notifier:    notifier,
		logger:      log,
	}
}

// SetNavigator sets where Logout navigates to. Without one, Logout only
// clears state.
func (s *Session) SetNavigator(n Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigator = n
}

// Boot loads the current user when a credential survived from a previous
// run. Without one the session stays unauthenticated and no request is made.
func (s *Session) Boot(ctx context.Context) {
	if !s.auth.HasToken(ctx) {
		s.set(StateUnauthenticated, nil, nil)
		return
	}

	epoch := s.set(StateLoading, nil, nil)
	_ = s.load(ctx, epoch, s.auth.CurrentUser)
}

// SignIn authenticates and loads the new user. On failure the session is
// left as it was and the error is returned for the form to display.
func (s *Session) SignIn(ctx context.Context, req models.SignInRequest) error {
	if _, err := s.auth.SignIn(ctx, req); err != nil {
		return err
	}

	epoch := s.set(StateLoading, nil, nil)
	return s.load(ctx, epoch, s.auth.CurrentUser)
}

// RefetchUser reloads the current user ignoring cache freshness. It is a
// no-op without a credential.
func (s *Session) RefetchUser(ctx context.Context) error {
	if !s.auth.HasToken(ctx) {
		return nil
	}
	return s.load(ctx, s.currentEpoch(), s.auth.RefetchCurrentUser)
}

// Logout clears the cache and the credential and navigates to sign-in. The
// session is unauthenticated before the server is told, so a 401 on the
// sign-out request is not reported as an expired session.
func (s *Session) Logout(ctx context.Context) {
	s.end()
	s.auth.SignOut(ctx)

	if nav := s.nav(); nav != nil {
		nav.Navigate(SignInPath)
	}
}

// HandleUnauthorized is called by the HTTP client after a 401 removed the
// credential. It discards every cached response and the loaded user. It
// must not block: it runs inside the response of the failing request.
func (s *Session) HandleUnauthorized() {
	s.cache.Clear()

	if wasSignedIn := s.end(); wasSignedIn {
		s.logger.Info().Str("func", "Session.HandleUnauthorized").Msg("session expired")
		s.notifier.Notify(service.Failure(service.MsgSessionExpired))
	}
}

// end moves to unauthenticated and starts a new epoch. It reports whether
// the session was signed in or loading before.
func (s *Session) end() bool {
	s.mu.Lock()
	wasSignedIn := s.state != StateUnauthenticated
	s.epoch++
	s.state = StateUnauthenticated
	s.user = nil
	s.lastErr = nil
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return wasSignedIn
}

func (s *Session) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *Session) load(ctx context.Context, epoch uint64, fetch func(context.Context) (models.User, error)) error {
	user, err := fetch(ctx)
	hasToken := s.auth.HasToken(ctx)

	if err == nil {
		if !hasToken {
			s.setInEpoch(epoch, StateUnauthenticated, nil, nil)
			return ErrSessionEnded
		}
		if !s.setInEpoch(epoch, StateAuthenticated, &user, nil) {
			return ErrSessionEnded
		}
		return nil
	}

	// a 401 (or a clear racing the fetch) already dropped the credential
	if !hasToken || errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, service.ErrNoCredential) {
		s.setInEpoch(epoch, StateUnauthenticated, nil, nil)
		return err
	}

	s.logger.Error().Err(err).Str("func", "Session.load").Msg("failed to load current user")
	s.setInEpoch(epoch, StateUnauthenticated, nil, err)
	return err
}

// set changes the state and returns the epoch it happened in.
func (s *Session) set(state State, user *models.User, err error) uint64 {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.lastErr = err
	epoch := s.epoch
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return epoch
}

// setInEpoch changes the state only if no logout or authorization failure
// happened since epoch.
func (s *Session) setInEpoch(epoch uint64, state State, user *models.User, err error) bool {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return false
	}
	s.state = state
	s.user = user
	s.lastErr = err
	snap := s.snapshot()
	s.mu.Unlock()

	s.publish(snap)
	return true
}

func (s *Session) nav() Navigator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.navigator
}

// snapshot must be called with mu held.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{State: s.state, Err: s.lastErr}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Snapshot returns the current state, user and last load error.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the loaded user.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is loaded.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether the current user is being loaded. It is never
// true without a stored credential.
func (s *Session) IsLoading() bool {
	s.mu.RLock()
	loading := s.state == StateLoading
	s.mu.RUnlock()

	return loading && s.HasToken()
}

// HasToken reports whether a credential is stored.
func (s *Session) HasToken() bool {
	return s.auth.HasToken(context.Background())
}

// LastError returns the error of the last failed current-user load that was
// not an authorization failure.
func (s *Session) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Subscribe registers fn to be called after every state change. The returned
// function removes it.
func (s *Session) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Session) publish(snap Snapshot) {
	s.subMu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
