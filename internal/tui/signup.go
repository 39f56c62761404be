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
	signUpName = iota
	signUpEmail
	signUpPassword
	signUpConfirm
)

// SignUpModel is the registration screen. A created account is sent to
// sign-in; registering does not sign the user in.
type SignUpModel struct {
	ctx    context.Context
	auth   service.AuthService
	router *router.Router

	form       formFields
	submitting bool
	errMsg     string
}

func NewSignUpModel(ctx context.Context, auth service.AuthService, r *router.Router) *SignUpModel {
	return &SignUpModel{
		ctx:    ctx,
		auth:   auth,
		router: r,
		form: newFormFields(
			newInputField("Name", "your name", 100, false),
			newInputField("Email", "you@example.com", 254, false),
			newInputField("Password", "at least 6 characters", 256, true),
			newInputField("Confirm password", "repeat the password", 256, true),
		),
	}
}

func (m *SignUpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signUpDoneMsg:
		m.submitting = false
		m.errMsg = inlineError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchForm), key.Matches(msg, keys.esc):
			return m, navigate(m.router, router.Location{Path: router.PathSignIn})
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
			return m, m.cmdSignUp(models.SignUpForm{
				Name:            m.form.trimmed(signUpName),
				Email:           m.form.trimmed(signUpEmail),
				Password:        m.form.value(signUpPassword),
				ConfirmPassword: m.form.value(signUpConfirm),
			})
		}
	}

	var cmd tea.Cmd
	f := &m.form.fields[m.form.focus]
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m *SignUpModel) View() string {
	var b strings.Builder
	b.WriteString("Create an account.\n\n")
	b.WriteString(m.form.render())

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ esc: back to sign in")
}

func (m *SignUpModel) cmdSignUp(form models.SignUpForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	r := m.router

	return func() tea.Msg {
		_, err := auth.SignUp(ctx, form)
		if err == nil {
			r.Navigate(router.PathSignIn)
		}
		return signUpDoneMsg{err: err}
	}
}
