// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/mock"
	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/session"
	"github.com/MKhiriev/go-task-manager/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminUser = models.User{ID: "a1", Name: "Ada", Email: "ada@test.com", Role: models.RoleAdmin}
	plainUser = models.User{ID: "u1", Name: "Bob", Email: "bob@test.com", Role: models.RoleUser}
)

type fixture struct {
	ctx     context.Context
	auth    *mock.MockAuthService
	tasks   *mock.MockTaskService
	session *session.Session
	router  *router.Router
	deps    Deps
}

// newFixture wires a real session and router over mocked services. A
// non-nil user is signed in.
func newFixture(t *testing.T, user *models.User) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	tasks := mock.NewMockTaskService(ctrl)

	s := session.New(auth, cache.New(logger.Nop()), service.NopNotifier(), logger.Nop())
	r := router.New(s, logger.Nop())
	s.Subscribe(func(session.Snapshot) { r.Refresh() })
	s.SetNavigator(r)

	ctx := context.Background()
	if user != nil {
		auth.EXPECT().HasToken(gomock.Any()).Return(true).AnyTimes()
		auth.EXPECT().CurrentUser(gomock.Any()).Return(*user, nil)
		s.Boot(ctx)
		require.True(t, s.IsAuthenticated())
	} else {
		auth.EXPECT().HasToken(gomock.Any()).Return(false).AnyTimes()
	}

	return &fixture{
		ctx:     ctx,
		auth:    auth,
		tasks:   tasks,
		session: s,
		router:  r,
		deps: Deps{
			Session:  s,
			Router:   r,
			Auth:     auth,
			Tasks:    tasks,
			PageSize: 2,
			Logger:   logger.Nop(),
		},
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runeKey(string(r)))
	}
	return m
}

// exec runs cmd and returns its message. Batches are not expanded.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}
