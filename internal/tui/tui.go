// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/session"
	"github.com/MKhiriev/go-task-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Deps are the collaborators of the view layer.
type Deps struct {
	Session   *session.Session
	Router    *router.Router
	Auth      service.AuthService
	Tasks     service.TaskService
	Notes     <-chan service.Notification
	PageSize  int
	BuildInfo models.AppBuildInfo
	Logger    *logger.Logger
}

// TUI is the terminal view layer.
type TUI struct {
	deps Deps
}

func New(deps Deps) *TUI {
	if deps.PageSize <= 0 {
		deps.PageSize = defaultPageSize
	}
	return &TUI{deps: deps}
}

// Run shows the UI until the user quits. It boots the session first, so a
// stored credential is restored without asking the user to sign in.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps)

	unsubscribe := t.deps.Router.Subscribe(model.routes.notify)
	defer unsubscribe()

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// routeSignal coalesces navigations into at most one pending wake-up. The
// router may navigate from any goroutine, including the program's own, so
// notify never blocks.
type routeSignal struct {
	ch chan struct{}
}

func newRouteSignal() *routeSignal {
	return &routeSignal{ch: make(chan struct{}, 1)}
}

func (s *routeSignal) notify(router.Location, router.Decision) {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// wait blocks until the next navigation and reports where the router is
// now.
func (s *routeSignal) wait(r *router.Router) tea.Cmd {
	return func() tea.Msg {
		<-s.ch
		loc, d := r.Resolve(r.Current())
		return routeChangedMsg{location: loc, decision: d}
	}
}

func waitForNotification(ch <-chan service.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		note, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg{note: note}
	}
}
