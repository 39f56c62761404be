// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// development backend's HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of HTTP response bodies. The client shows them verbatim in
// notifications, so they are phrased for end users.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body fails
	// validation and no more specific message is available.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgEmailTaken is returned when a sign-up uses an email that already
	// has an account.
	MsgEmailTaken = "Email is already registered"

	// MsgAuthorizationRequired is returned when a protected route is called
	// without a bearer token.
	MsgAuthorizationRequired = "Authorization token is required"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"

	// MsgTaskNotFound is returned when a task does not exist or belongs to
	// another user.
	MsgTaskNotFound = "Task not found"

	// MsgAdminOnly is returned when a non-admin tries to delete a task.
	MsgAdminOnly = "Only admins can delete tasks"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Route not found"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// requested method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgSignedOut acknowledges POST /api/auth/signout.
	MsgSignedOut = "Signed out successfully"

	// MsgTaskDeleted acknowledges DELETE /api/tasks/{id}.
	MsgTaskDeleted = "Task deleted successfully"
)
