// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// renderLoadError draws the failed task list box with its retry hint.
func renderLoadError(message string) string {
	return overlayBoxStyle.Render(errorStyle.Render("Could not load tasks") + "\n\n" + message + "\n\n" + helpStyle.Render("r: retry"))
}
