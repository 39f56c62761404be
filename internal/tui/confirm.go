// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "fmt"

// renderDeleteConfirm draws the delete prompt for a task.
func renderDeleteConfirm(task string) string {
	prompt := fmt.Sprintf("Delete %q?", fitText(task, 40))
	return overlayBoxStyle.Render(prompt + "\n\n" + helpStyle.Render("y: yes    n: no"))
}
