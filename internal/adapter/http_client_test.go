// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/mock"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "header.payload.signature"

// newTestClient создаёт Client, направленный на тестовый сервер
func newTestClient(t *testing.T, serverURL string) (*Client, store.TokenStore) {
	t.Helper()
	tokens := store.NewTokenStore(store.NewMemoryStorage(), logger.Nop())
	c, err := NewClient(config.ClientAdapter{APIURL: serverURL, RequestTimeout: 2 * time.Second}, tokens, logger.Nop())
	require.NoError(t, err)
	return c, tokens
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(config.ClientAdapter{APIURL: ""}, store.NewTokenStore(nil, logger.Nop()), logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c, tokens := newTestClient(t, srv.URL)
	tokens.Set(context.Background(), testToken)

	resp, err := c.R(context.Background()).Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	_, err := c.R(context.Background()).Get("/ping")
	require.NoError(t, err)
}

func TestClient_Unauthorized_ClearsTokenNotifiesAndRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"Token expired"}`))
	}))
	defer srv.Close()

	c, tokens := newTestClient(t, srv.URL)
	tokens.Set(context.Background(), testToken)

	nav := mock.NewMockNavigator(ctrl)
	nav.EXPECT().IsPublic().Return(false)
	nav.EXPECT().Navigate(SignInPath)
	c.SetNavigator(nav)

	notified := 0
	c.OnUnauthorized(func() {
		// the credential is already gone when listeners run
		assert.False(t, tokens.Has(context.Background()))
		notified++
	})

	_, err := NewTasksAPI(c).List(context.Background(), 1, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, notified)
	assert.False(t, tokens.Has(context.Background()))
}

func TestClient_Unauthorized_OnPublicRouteDoesNotRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)

	nav := mock.NewMockNavigator(ctrl)
	nav.EXPECT().IsPublic().Return(true)
	c.SetNavigator(nav)

	_, err := NewAuthAPI(c).SignIn(context.Background(), modelsSignIn())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t, url)

	_, err := NewTasksAPI(c).List(context.Background(), 1, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, IsRetryable(err))
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	tokens := store.NewTokenStore(nil, logger.Nop())
	c, err := NewClient(config.ClientAdapter{APIURL: srv.URL, RequestTimeout: 50 * time.Millisecond}, tokens, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, c.Timeout())

	_, err = NewAuthAPI(c).CurrentUser(context.Background())
	assert.True(t, errors.Is(err, ErrNetwork))
}
