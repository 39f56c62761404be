// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-task-manager/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	row := func(label, value string) string {
		return fmt.Sprintf("%-9s %s", label+":", value)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		"Task Manager terminal client",
		"",
		row("Version", info.BuildVersion()),
		row("Built", info.BuildDate()),
		row("Commit", info.BuildCommit()),
	)
	return renderPage("ABOUT", body, "v/esc: back")
}
