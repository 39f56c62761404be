// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/service"
	"github.com/MKhiriev/go-task-manager/internal/validators"
)

// ErrUserQuit is returned by Run when the user closed the client.
var ErrUserQuit = errors.New("user quit")

// inlineError returns the text to show next to a form for err. Only
// validation failures are shown inline; everything else already reached
// the user as a notification.
func inlineError(err error) string {
	if err == nil || !validators.IsValidationError(err) {
		return ""
	}
	return err.Error()
}

// loadErrorText is the dashboard's text for a failed list query.
func loadErrorText(err error) string {
	if errors.Is(err, adapter.ErrNetwork) {
		return service.MsgNetworkFailure
	}
	return service.ErrorMessage(err, service.MsgTasksLoadFailed)
}
