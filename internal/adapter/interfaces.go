// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the task-manager client.
//
// [Client] is the single configured HTTP client: it attaches the bearer
// credential to every request and reacts to HTTP 401 globally by clearing the
// credential, notifying registered listeners and sending the user back to
// the sign-in route. [AuthAPI] and [TasksAPI] are thin typed wrappers over
// the REST endpoints.
//
// Non-2xx responses are returned as *[APIError] values that unwrap to the
// sentinel errors defined in errors.go, so callers can use [errors.Is] for
// status-class checks (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI wraps the /api/auth endpoints.
type AuthAPI interface {
	// SignUp creates an account. It does not sign the user in.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn exchanges credentials for a bearer token and the account.
	// The token is returned as-is; storing it is the caller's decision.
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthData, error)

	// SignOut asks the server to tear down the session.
	SignOut(ctx context.Context) error

	// CurrentUser returns the account the stored credential belongs to.
	CurrentUser(ctx context.Context) (models.User, error)
}

// TasksAPI wraps the /api/tasks endpoints.
type TasksAPI interface {
	List(ctx context.Context, page, limit int) (models.TasksPage, error)
	Get(ctx context.Context, id string) (models.Task, error)
	Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	Update(ctx context.Context, req models.UpdateTaskRequest) (models.Task, error)
	Delete(ctx context.Context, id string) (models.MessageResponse, error)
	ToggleStatus(ctx context.Context, id string) (models.Task, error)
}

// Navigator is the part of the router the HTTP client needs to send the user
// to the sign-in route after an authorization failure.
type Navigator interface {
	// IsPublic reports whether the current route is reachable without a
	// credential.
	IsPublic() bool

	// Navigate replaces the current route with path.
	Navigate(path string)
}
