// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-manager/internal/router"
	"github.com/MKhiriev/go-task-manager/internal/session"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signInEmail = iota
	signInPassword
)

// SignInModel is the sign-in screen. On success the router takes the user
// back to the protected screen they were sent away from.
type SignInModel struct {
	ctx     context.Context
	session *session.Session
	router  *router.Router

	form       formFields
	submitting bool
	errMsg     string
}

func NewSignInModel(ctx context.Context, s *session.Session, r *router.Router) *SignInModel {
	return &SignInModel{
		ctx:     ctx,
		session: s,
		router:  r,
		form: newFormFields(
			newInputField("Email", "you@example.com", 254, false),
			newInputField("Password", "password", 256, true),
		),
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signInDoneMsg:
		m.submitting = false
		m.errMsg = inlineError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchForm):
			return m, navigate(m.router, router.Location{Path: router.PathSignUp})
		case key.Matches(msg, keys.tab):
			m.form.next()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.prev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if !m.form.onLast() {
				m.form.next()
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(models.SignInRequest{
				Email:    m.form.trimmed(signInEmail),
				Password: m.form.value(signInPassword),
			})
		}
	}

	var cmd tea.Cmd
	f := &m.form.fields[m.form.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Sign in to manage your tasks.\n\n")
	b.WriteString(m.form.render())

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ ctrl+n: create an account")
}

func (m *SignInModel) cmdSignIn(req models.SignInRequest) tea.Cmd {
	ctx := m.ctx
	s := m.session
	r := m.router

	return func() tea.Msg {
		err := s.SignIn(ctx, req)
		if err == nil {
			r.AfterSignIn()
		}
		return signInDoneMsg{err: err}
	}
}
