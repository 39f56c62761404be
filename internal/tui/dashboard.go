// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/session"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// refreshEvery re-reads the current page so entries refreshed in the
	// background show up. Fresh pages are served from the cache.
	refreshEvery = 15 * time.Second
	statusTTL    = 2 * time.Second
	titleWidth   = 40
	descWidth    = 30
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// DashboardModel lists the user's tasks page by page.
type DashboardModel struct {
	ctx     context.Context
	session *session.Session
	tasks   service.TaskService
	router  *router.Router

	pageSize int
	page     int
	result   models.TasksPage
	loaded   bool
	loading  bool
	loadErr  error
	idx      int

	pendingDelete string
	status        string
	spinner       spinner.Model
}

func NewDashboardModel(ctx context.Context, s *session.Session, tasks service.TaskService, r *router.Router, pageSize int) *DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:      ctx,
		session:  s,
		tasks:    tasks,
		router:   r,
		pageSize: pageSize,
		page:     1,
		loading:  true,
		spinner:  sp,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(false), m.spinner.Tick, cmdRefreshTick())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		return m, m.onLoaded(msg)

	case taskToggledMsg, taskDeletedMsg:
		// the list was invalidated either way
		return m, m.cmdLoad(false)

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case refreshTickMsg:
		return m, tea.Batch(m.cmdLoad(false), cmdRefreshTick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m, m.onKey(msg)
	}

	return m, nil
}

func (m *DashboardModel) onLoaded(msg tasksLoadedMsg) tea.Cmd {
	if msg.page != m.page {
		// the user paged on while this request was in flight
		return nil
	}
	m.loading = false

	if msg.err != nil {
		m.loadErr = msg.err
		return nil
	}

	m.loadErr = nil
	m.loaded = true
	m.result = msg.result

	// the last task of the last page was deleted
	if pages := m.pageCount(); pages > 0 && m.page > pages {
		m.page = pages
		m.loading = true
		return m.cmdLoad(false)
	}

	if m.idx >= len(m.result.Tasks) {
		m.idx = len(m.result.Tasks) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return nil
}

func (m *DashboardModel) onKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirming() {
		switch {
		case key.Matches(msg, keys.yes):
			id := m.pendingDelete
			m.pendingDelete = ""
			return m.cmdDelete(id)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.pendingDelete = ""
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.result.Tasks)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.prevPage):
		if m.page > 1 {
			return m.goToPage(m.page - 1)
		}
	case key.Matches(msg, keys.nextPage):
		if m.page < m.pageCount() {
			return m.goToPage(m.page + 1)
		}
	case key.Matches(msg, keys.retry):
		m.loading = true
		m.loadErr = nil
		return m.cmdLoad(true)
	case key.Matches(msg, keys.newTask):
		return navigate(m.router, router.Location{Path: router.PathAddTask})
	case key.Matches(msg, keys.logout):
		return m.cmdLogout()
	}

	task, ok := m.current()
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		if m.tasks.IsToggling(task.ID) {
			return nil
		}
		return m.cmdToggle(task.ID)
	case key.Matches(msg, keys.edit):
		return navigate(m.router, router.Location{Path: router.PathEditTask, TaskID: task.ID})
	case key.Matches(msg, keys.copy):
		return cmdCopy(task)
	case key.Matches(msg, keys.delete):
		if m.isAdmin() && !m.tasks.IsDeleting(task.ID) {
			m.pendingDelete = task.ID
		}
	}
	return nil
}

func (m *DashboardModel) goToPage(page int) tea.Cmd {
	m.page = page
	m.idx = 0
	m.loading = true
	m.loadErr = nil
	return m.cmdLoad(false)
}

func (m *DashboardModel) confirming() bool {
	return m.pendingDelete != ""
}

func (m *DashboardModel) isAdmin() bool {
	user, ok := m.session.User()
	return ok && user.IsAdmin()
}

func (m *DashboardModel) pageCount() int {
	return m.result.PageCount(m.pageSize)
}

func (m *DashboardModel) current() (models.Task, bool) {
	if m.idx < 0 || m.idx >= len(m.result.Tasks) {
		return models.Task{}, false
	}
	return m.result.Tasks[m.idx], true
}

// pending returns the task waiting for delete confirmation.
func (m *DashboardModel) pending() (models.Task, bool) {
	for _, task := range m.result.Tasks {
		if m.confirming() && task.ID == m.pendingDelete {
			return task, true
		}
	}
	return models.Task{}, false
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if user, ok := m.session.User(); ok {
		b.WriteString(fmt.Sprintf("Welcome, %s ", user.Name))
		b.WriteString(badgeStyle.Render("[" + user.Role + "]"))
		b.WriteString("\n")
	}

	if m.loaded {
		pages := m.pageCount()
		if pages == 0 {
			pages = 1
		}
		b.WriteString(fmt.Sprintf("Tasks: %d │ Page %d of %d", m.result.Total, m.page, pages))
		if m.loading {
			b.WriteString(" " + m.spinner.View())
		}
		b.WriteString("\n\n")
	}

	switch {
	case m.loadErr != nil:
		b.WriteString(renderLoadError(loadErrorText(m.loadErr)))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(m.spinner.View() + " Loading tasks...\n")
	case len(m.result.Tasks) == 0:
		b.WriteString("No tasks yet. Press n to create one.\n")
	default:
		for i, task := range m.result.Tasks {
			b.WriteString(m.renderRow(i, task))
			b.WriteString("\n")
		}
	}

	if task, ok := m.pending(); ok {
		b.WriteString("\n")
		b.WriteString(renderDeleteConfirm(task.Title))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: move │ ←/→: page │ t: toggle │ e: edit │ n: new │ c: copy │ r: refresh"
	if m.isAdmin() {
		hotKeys += " │ d: delete"
	}
	hotKeys += " │ l: logout │ q: quit"

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DashboardModel) renderRow(i int, task models.Task) string {
	cursor := "  "
	if i == m.idx {
		cursor = "> "
	}

	check := "[ ]"
	title := fitText(task.Title, titleWidth)
	if task.Status == models.TaskStatusCompleted {
		check = "[x]"
		title = completedStyle.Render(title)
	}
	if i == m.idx {
		title = selectedStyle.Render(title)
	}

	line := fmt.Sprintf("%s%s %s  %s", cursor, check, title, helpStyle.Render(fitText(valueOrDash(task.Description), descWidth)))

	switch {
	case m.tasks.IsDeleting(task.ID):
		line += " " + m.spinner.View() + " deleting"
	case m.tasks.IsToggling(task.ID):
		line += " " + m.spinner.View()
	}
	return line
}

func (m *DashboardModel) cmdLoad(refetch bool) tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks
	page := m.page
	limit := m.pageSize

	return func() tea.Msg {
		var (
			result models.TasksPage
			err    error
		)
		if refetch {
			result, err = tasks.RefetchList(ctx, page, limit)
		} else {
			result, err = tasks.List(ctx, page, limit)
		}
		return tasksLoadedMsg{page: page, result: result, err: err}
	}
}

func (m *DashboardModel) cmdToggle(id string) tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks

	return func() tea.Msg {
		_, err := tasks.ToggleStatus(ctx, id)
		return taskToggledMsg{id: id, err: err}
	}
}

func (m *DashboardModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks

	return func() tea.Msg {
		err := tasks.Delete(ctx, id)
		return taskDeletedMsg{id: id, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	s := m.session

	return func() tea.Msg {
		s.Logout(ctx)
		return nil
	}
}

func cmdCopy(task models.Task) tea.Cmd {
	return func() tea.Msg {
		text := task.Title
		if task.Description != "" {
			text += "\n" + task.Description
		}
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return refreshTickMsg{} })
}
