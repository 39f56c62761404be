// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-task-manager/internal/adapter"
)

// Notification texts. Failure texts are fallbacks used when the server sent
// no message of its own.
const (
	MsgSignedIn          = "Successfully logged in"
	MsgSignInFailed      = "Invalid email or password"
	MsgSignedUp          = "Account created successfully. Please sign in."
	MsgSignUpFailed      = "Failed to create account"
	MsgSignedOut         = "Successfully logged out"
	MsgSessionExpired    = "Your session has expired. Please sign in again."
	MsgTaskCreated       = "Task created successfully"
	MsgTaskCreateFailed  = "Failed to create task"
	MsgTaskUpdated       = "Task updated successfully"
	MsgTaskUpdateFailed  = "Failed to update task"
	MsgTaskDeleted       = "Task deleted successfully"
	MsgTaskDeleteFailed  = "Failed to delete task"
	MsgTaskToggleFailed  = "Failed to toggle task status"
	MsgTasksLoadFailed   = "Failed to load tasks"
	MsgTaskLoadFailed    = "Failed to load task"
	MsgNetworkFailure    = "Cannot reach the server. Check your connection and try again."
)

// ErrorMessage returns the text to show for err: the server-provided message
// when there is one, otherwise fallback.
func ErrorMessage(err error, fallback string) string {
	if msg, ok := adapter.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
