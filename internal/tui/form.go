// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// inputField is one labelled text input of a form.
type inputField struct {
	label string
	input textinput.Model
}

func newInputField(label, placeholder string, limit int, secret bool) inputField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return inputField{label: label, input: in}
}

// formFields is a focus ring over inputs.
type formFields struct {
	fields []inputField
	focus  int
}

func newFormFields(fields ...inputField) formFields {
	f := formFields{fields: fields}
	if len(fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *formFields) next() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *formFields) prev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *formFields) onLast() bool {
	return f.focus == len(f.fields)-1
}

func (f *formFields) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *formFields) trimmed(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *formFields) set(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// render draws the inputs as a two-column table.
func (f *formFields) render() string {
	width := 0
	for _, field := range f.fields {
		if len(field.label) > width {
			width = len(field.label)
		}
	}

	var b strings.Builder
	for _, field := range f.fields {
		b.WriteString(field.label)
		b.WriteString(strings.Repeat(" ", width-len(field.label)))
		b.WriteString(" │ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
	return b.String()
}
