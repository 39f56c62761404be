// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	taskTitle = iota
	taskDescription
)

// TaskFormModel creates a task, or edits one when taskID is set. The edit
// form is filled from the single-task query.
type TaskFormModel struct {
	ctx    context.Context
	tasks  service.TaskService
	router *router.Router
	taskID string

	form       formFields
	status     models.TaskStatus
	loading    bool
	loadErr    error
	submitting bool
	errMsg     string
}

func NewTaskFormModel(ctx context.Context, tasks service.TaskService, r *router.Router, taskID string) *TaskFormModel {
	return &TaskFormModel{
		ctx:    ctx,
		tasks:  tasks,
		router: r,
		taskID: taskID,
		form: newFormFields(
			newInputField("Title", "what needs doing", 200, false),
			newInputField("Description", "details", 1000, false),
		),
		status:  models.TaskStatusPending,
		loading: taskID != "",
	}
}

func (m *TaskFormModel) editing() bool {
	return m.taskID != ""
}

func (m *TaskFormModel) Init() tea.Cmd {
	if m.editing() {
		return tea.Batch(textinput.Blink, m.cmdLoadTask())
	}
	return textinput.Blink
}

func (m *TaskFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = msg.err
			return m, nil
		}
		m.form.set(taskTitle, msg.task.Title)
		m.form.set(taskDescription, msg.task.Description)
		if msg.task.Status.Valid() {
			m.status = msg.task.Status
		}
		return m, nil

	case taskSavedMsg:
		m.submitting = false
		m.errMsg = inlineError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(m.router, router.Location{Path: router.PathDashboard})
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.status):
			m.status = m.status.Toggle()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting || m.loading || m.loadErr != nil {
				return m, nil
			}
			if !m.form.onLast() {
				m.form.next()
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave()
		}
	}

	if m.loading {
		return m, nil
	}

	var cmd tea.Cmd
	f := &m.form.fields[m.form.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *TaskFormModel) View() string {
	title := "NEW TASK"
	if m.editing() {
		title = "EDIT TASK"
	}

	var b strings.Builder
	switch {
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(service.ErrorMessage(m.loadErr, service.MsgTaskLoadFailed)))
		b.WriteString("\n")
		return renderPage(title, b.String(), "esc: back")
	case m.loading:
		b.WriteString("Loading task...\n")
		return renderPage(title, b.String(), "esc: back")
	}

	b.WriteString(m.form.render())
	b.WriteString("Status │ ")
	b.WriteString(string(m.status))
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	case m.editing():
		b.WriteString("\n[Update task]\n")
	default:
		b.WriteString("\n[Create task]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+t: toggle status │ enter: save │ esc: cancel")
}

func (m *TaskFormModel) cmdLoadTask() tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks
	id := m.taskID

	return func() tea.Msg {
		task, err := tasks.Get(ctx, id)
		return taskLoadedMsg{task: task, err: err}
	}
}

func (m *TaskFormModel) cmdSave() tea.Cmd {
	ctx := m.ctx
	tasks := m.tasks
	r := m.router
	id := m.taskID
	title := m.form.trimmed(taskTitle)
	description := m.form.trimmed(taskDescription)
	status := m.status

	return func() tea.Msg {
		var err error
		if id == "" {
			_, err = tasks.Create(ctx, models.CreateTaskRequest{
				Title:       title,
				Description: description,
				Status:      status,
			})
		} else {
			_, err = tasks.Update(ctx, models.UpdateTaskRequest{
				ID:          id,
				Title:       &title,
				Description: &description,
				Status:      &status,
			})
		}

		if err == nil {
			r.Navigate(router.PathDashboard)
		}
		return taskSavedMsg{err: err}
	}
}
