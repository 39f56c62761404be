// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-task-manager/internal/service"
)

type toast struct {
	id   int
	note service.Notification
}

func removeToast(toasts []toast, id int) []toast {
	out := toasts[:0]
	for _, t := range toasts {
		if t.id != id {
			out = append(out, t)
		}
	}
	return out
}

func renderToasts(toasts []toast) string {
	lines := make([]string, 0, len(toasts))
	for _, t := range toasts {
		switch t.note.Level {
		case service.LevelSuccess:
			lines = append(lines, successStyle.Render("✓ "+t.note.Message))
		case service.LevelError:
			lines = append(lines, errorStyle.Render("✗ "+t.note.Message))
		default:
			lines = append(lines, "• "+t.note.Message)
		}
	}
	return toastBoxStyle.Render(strings.Join(lines, "\n"))
}
