// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Roles known to the client. Role gates UI actions: only [RoleAdmin] may
// delete tasks.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is the account returned by the task-manager API. The client never
// persists it; it lives only in the query cache under the current-user key.
type User struct {
	// ID is the server-assigned identifier of the account.
	ID string `json:"id"`

	// Name is the display name shown in the app bar.
	Name string `json:"name"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Role is either [RoleAdmin] or [RoleUser].
	Role string `json:"role"`
}

// IsAdmin reports whether the user may perform admin-only actions.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
