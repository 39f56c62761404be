// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/mock"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{ID: "u1", Name: "User", Email: "user@test.com", Role: models.RoleUser}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []service.Notification
}

func (r *recordingNotifier) Notify(n service.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recordingNotifier) all() []service.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]service.Notification(nil), r.notes...)
}

// recordStates collects every state published by s.
func recordStates(s *Session) func() []State {
	var mu sync.Mutex
	var states []State
	s.Subscribe(func(snap Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, snap.State)
	})
	return func() []State {
		mu.Lock()
		defer mu.Unlock()
		return append([]State(nil), states...)
	}
}

func newTestSession(ctrl *gomock.Controller) (*Session, *mock.MockAuthService, *cache.Cache, *recordingNotifier) {
	auth := mock.NewMockAuthService(ctrl)
	c := cache.New(logger.Nop())
	notifier := &recordingNotifier{}
	return New(auth, c, notifier, logger.Nop()), auth, c, notifier
}

func TestSession_Boot_WithoutCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	auth.EXPECT().HasToken(gomock.Any()).Return(false).AnyTimes()

	s.Boot(context.Background())

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_Boot_WithCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	states := recordStates(s)

	auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
	auth.EXPECT().CurrentUser(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		assert.True(t, s.IsLoading())
		return testUser, nil
	})

	s.Boot(context.Background())

	assert.Equal(t, []State{StateLoading, StateAuthenticated}, states())
	user, ok := s.User()
	assert.True(t, ok)
	assert.Equal(t, testUser, user)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestSession_Boot_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	states := recordStates(s)

	gomock.InOrder(
		auth.EXPECT().HasToken(gomock.Any()).Return(true),
		auth.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, &adapter.APIError{StatusCode: 401}),
	)
	auth.EXPECT().HasToken(gomock.Any()).Return(false).AnyTimes()

	s.Boot(context.Background())

	assert.Equal(t, []State{StateLoading, StateUnauthenticated}, states())
	assert.NoError(t, s.LastError(), "an expired credential is not a load error")
	assert.False(t, s.IsLoading())
}

func TestSession_Boot_ServerFailureKeepsCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)

	auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
	auth.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, &adapter.APIError{StatusCode: 502})

	s.Boot(context.Background())

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.ErrorIs(t, s.LastError(), adapter.ErrBadGateway)
	assert.False(t, s.IsLoading(), "no indefinite placeholder")
	assert.True(t, s.HasToken())
}

func TestSession_IsLoadingRequiresCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)

	s.set(StateLoading, nil, nil)
	auth.EXPECT().HasToken(gomock.Any()).Return(false)

	assert.False(t, s.IsLoading())
}

func TestSession_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	states := recordStates(s)
	ctx := context.Background()
	req := models.SignInRequest{Email: "user@test.com", Password: "x"}

	auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
	gomock.InOrder(
		auth.EXPECT().SignIn(ctx, req).Return(testUser, nil),
		auth.EXPECT().CurrentUser(ctx).Return(testUser, nil),
	)

	require.NoError(t, s.SignIn(ctx, req))

	assert.Equal(t, []State{StateLoading, StateAuthenticated}, states())
	assert.True(t, s.IsAuthenticated())
}

func TestSession_SignIn_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	states := recordStates(s)
	ctx := context.Background()

	auth.EXPECT().SignIn(ctx, gomock.Any()).Return(models.User{}, &adapter.APIError{StatusCode: 401})

	err := s.SignIn(ctx, models.SignInRequest{Email: "user@test.com", Password: "bad"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, states())
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestSession_RefetchUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	ctx := context.Background()

	auth.EXPECT().HasToken(ctx).Return(false)
	require.NoError(t, s.RefetchUser(ctx), "no-op without a credential")

	renamed := testUser
	renamed.Name = "Renamed"
	auth.EXPECT().HasToken(ctx).Return(true).Times(2)
	auth.EXPECT().RefetchCurrentUser(ctx).Return(renamed, nil)

	require.NoError(t, s.RefetchUser(ctx))
	user, _ := s.User()
	assert.Equal(t, "Renamed", user.Name)
}

func TestSession_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	nav := mock.NewMockNavigator(ctrl)
	s.SetNavigator(nav)
	ctx := context.Background()
	s.set(StateAuthenticated, &testUser, nil)

	gomock.InOrder(
		auth.EXPECT().SignOut(ctx),
		nav.EXPECT().Navigate(SignInPath),
	)

	s.Logout(ctx)

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_HandleUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, c, notifier := newTestSession(ctrl)
	s.set(StateAuthenticated, &testUser, nil)
	c.Set(cache.TaskKey("t1"), models.Task{ID: "t1"})

	s.HandleUnauthorized()

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []service.Notification{service.Failure(service.MsgSessionExpired)}, notifier.all())

	// already signed out: nothing more to report
	s.HandleUnauthorized()
	assert.Len(t, notifier.all(), 1)
}

func TestSession_UserLoadedAfterUnauthorizedIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, notifier := newTestSession(ctrl)
	hasToken := true
	auth.EXPECT().HasToken(gomock.Any()).DoAndReturn(func(context.Context) bool { return hasToken }).AnyTimes()

	// another request gets a 401 while the current user is in flight
	auth.EXPECT().CurrentUser(gomock.Any()).DoAndReturn(func(context.Context) (models.User, error) {
		hasToken = false
		s.HandleUnauthorized()
		return testUser, nil
	})

	s.Boot(context.Background())

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.HasToken())
	_, ok := s.User()
	assert.False(t, ok)
	assert.Equal(t, []service.Notification{service.Failure(service.MsgSessionExpired)}, notifier.all())
}

func TestSession_UserLoadedAfterLogoutIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	ctx := context.Background()
	states := recordStates(s)

	// the mocked sign-out leaves the credential in place, so only the
	// epoch tells the late response apart
	auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
	auth.EXPECT().SignOut(ctx)
	auth.EXPECT().CurrentUser(ctx).DoAndReturn(func(context.Context) (models.User, error) {
		s.Logout(ctx)
		return testUser, nil
	})

	s.Boot(ctx)

	assert.Equal(t, []State{StateLoading, StateUnauthenticated}, states())
	assert.False(t, s.IsAuthenticated())
}

func TestSession_SignIn_EndedDuringLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, _ := newTestSession(ctrl)
	ctx := context.Background()
	req := models.SignInRequest{Email: "user@test.com", Password: "secret1"}

	auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
	gomock.InOrder(
		auth.EXPECT().SignIn(ctx, req).Return(testUser, nil),
		auth.EXPECT().CurrentUser(ctx).DoAndReturn(func(context.Context) (models.User, error) {
			s.HandleUnauthorized()
			return testUser, nil
		}),
	)

	err := s.SignIn(ctx, req)

	assert.ErrorIs(t, err, ErrSessionEnded)
	assert.Equal(t, StateUnauthenticated, s.State())
}

func TestSession_Logout_UnauthorizedSignOutIsNotReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, auth, _, notifier := newTestSession(ctrl)
	nav := mock.NewMockNavigator(ctrl)
	s.SetNavigator(nav)
	ctx := context.Background()
	s.set(StateAuthenticated, &testUser, nil)

	// the stored credential has expired: the sign-out request gets a 401
	auth.EXPECT().SignOut(ctx).Do(func(context.Context) {
		assert.Equal(t, StateUnauthenticated, s.State())
		s.HandleUnauthorized()
	})
	nav.EXPECT().Navigate(SignInPath)

	s.Logout(ctx)

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Empty(t, notifier.all())
}

func TestSession_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, _, _ := newTestSession(ctrl)

	calls := 0
	unsubscribe := s.Subscribe(func(Snapshot) { calls++ })
	s.set(StateLoading, nil, nil)
	unsubscribe()
	s.set(StateUnauthenticated, nil, nil)

	assert.Equal(t, 1, calls)
}

// TestSession_ExpiredCredential runs the whole client stack against a server
// that rejects the stored credential on the task list.
func TestSession_ExpiredCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/me":
			_ = json.NewEncoder(w).Encode(models.CurrentUserResponse{
				Status: models.StatusSuccess,
				Data:   models.CurrentUserData{User: &testUser},
			})
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Status: models.StatusError, Message: "Token expired"})
		}
	}))
	defer srv.Close()

	log := logger.Nop()
	tokens := store.NewTokenStore(store.NewMemoryStorage(), log)
	client, err := adapter.NewClient(config.ClientAdapter{APIURL: srv.URL, RequestTimeout: 2 * time.Second}, tokens, log)
	require.NoError(t, err)

	c := cache.New(log)
	notifier := &recordingNotifier{}
	auth := service.NewAuthService(adapter.NewAuthAPI(client), tokens, c, notifier, log)
	tasks := service.NewTaskService(adapter.NewTasksAPI(client), c, notifier, log)
	s := New(auth, c, notifier, log)

	nav := mock.NewMockNavigator(ctrl)
	nav.EXPECT().IsPublic().Return(false)
	nav.EXPECT().Navigate(SignInPath)
	client.SetNavigator(nav)
	client.OnUnauthorized(s.HandleUnauthorized)

	ctx := context.Background()
	tokens.Set(ctx, "header.payload.signature")
	s.Boot(ctx)
	require.True(t, s.IsAuthenticated())
	c.Set(cache.TaskKey("t1"), models.Task{ID: "t1", Title: "private"})

	_, err = tasks.List(ctx, 1, 5)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	assert.False(t, tokens.Has(ctx))
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Equal(t, 0, c.Len(), "no task data retained")
	assert.Equal(t, []service.Notification{service.Failure(service.MsgSessionExpired)}, notifier.all())
}
