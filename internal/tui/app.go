// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPageSize = 5
	toastTTL        = 4 * time.Second
	maxToasts       = 3
)

// appModel is the root of the UI:
// 1) shows the page the router resolved, or a placeholder while the
// session is loading
// 2) handles global hotkeys
// 3) shows notifications as toasts
// 4) delegates all other messages to the active page
type appModel struct {
	ctx    context.Context
	deps   Deps
	routes *routeSignal

	location router.Location
	decision router.Decision
	page     tea.Model
	booted   bool

	spinner     spinner.Model
	toasts      []toast
	nextToastID int

	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, deps Deps) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:      ctx,
		deps:     deps,
		routes:   newRouteSignal(),
		decision: router.Decision{Kind: router.Placeholder},
		spinner:  s,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.routes.wait(m.deps.Router),
		waitForNotification(m.deps.Notes),
		m.cmdBoot(),
	)
}

// cmdBoot restores the session and opens the root path, which lands on the
// dashboard or on sign-in depending on the outcome.
func (m appModel) cmdBoot() tea.Cmd {
	ctx := m.ctx
	s := m.deps.Session
	r := m.deps.Router

	return func() tea.Msg {
		r.Navigate(router.PathRoot)
		s.Boot(ctx)
		return sessionBootedMsg{}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.acceptsShortcuts() {
			switch {
			case key.Matches(msg, keys.buildInfo):
				m.showBuildInfo = true
				return m, nil
			case key.Matches(msg, keys.quit):
				m.quitByUser = true
				return m, tea.Quit
			}
		}

	case routeChangedMsg:
		cmd := m.applyRoute(msg.location, msg.decision)
		return m, tea.Batch(cmd, m.routes.wait(m.deps.Router))

	case sessionBootedMsg:
		m.booted = true
		return m, nil

	case notificationMsg:
		id := m.nextToastID
		m.nextToastID++
		m.toasts = append(m.toasts, toast{id: id, note: msg.note})
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		expire := tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
		return m, tea.Batch(waitForNotification(m.deps.Notes), expire)

	case toastExpiredMsg:
		m.toasts = removeToast(m.toasts, msg.id)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if msg.ID == m.spinner.ID() {
			return m, cmd
		}
	}

	if m.page == nil {
		return m, nil
	}

	updated, cmd := m.page.Update(msg)
	m.page = updated
	return m, cmd
}

// applyRoute switches the page. A render of the location already shown
// keeps the page and its state.
func (m *appModel) applyRoute(loc router.Location, d router.Decision) tea.Cmd {
	m.decision = d
	if d.Kind != router.Render {
		m.location = loc
		m.page = nil
		return nil
	}
	if m.page != nil && loc == m.location {
		return nil
	}

	m.location = loc
	m.page = m.newPage(loc)
	if m.page == nil {
		// the edit screen needs a task
		return navigate(m.deps.Router, router.Location{Path: router.PathDashboard})
	}
	return m.page.Init()
}

func (m appModel) newPage(loc router.Location) tea.Model {
	switch loc.Path {
	case router.PathSignIn:
		return NewSignInModel(m.ctx, m.deps.Session, m.deps.Router)
	case router.PathSignUp:
		return NewSignUpModel(m.ctx, m.deps.Auth, m.deps.Router)
	case router.PathDashboard:
		return NewDashboardModel(m.ctx, m.deps.Session, m.deps.Tasks, m.deps.Router, m.deps.PageSize)
	case router.PathAddTask:
		return NewTaskFormModel(m.ctx, m.deps.Tasks, m.deps.Router, "")
	case router.PathEditTask:
		if loc.TaskID == "" {
			return nil
		}
		return NewTaskFormModel(m.ctx, m.deps.Tasks, m.deps.Router, loc.TaskID)
	default:
		return nil
	}
}

// acceptsShortcuts reports whether single-letter keys are free, i.e. no
// text input has focus.
func (m appModel) acceptsShortcuts() bool {
	if m.page == nil {
		return true
	}
	d, ok := m.page.(*DashboardModel)
	return ok && !d.confirming()
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.deps.BuildInfo))
	}

	var body string
	if m.page == nil {
		body = renderPage("TASK MANAGER", m.spinner.View()+" Loading...", "q: quit │ v: about")
	} else {
		body = m.page.View()
	}

	if len(m.toasts) > 0 {
		body += "\n\n" + renderToasts(m.toasts)
	}

	return appStyle.Render(body)
}

// navigate returns a command that moves the router to loc.
func navigate(r *router.Router, loc router.Location) tea.Cmd {
	return func() tea.Msg {
		r.Go(loc)
		return nil
	}
}
