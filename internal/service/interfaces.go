// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the data-fetching operations of the client:
// cached reads of the current user and tasks, and the mutations that keep
// the query cache and the credential consistent with the server.
//
// Reads go through the query cache and return explicit (value, error) pairs.
// Mutations never retry; when they settle they invalidate or seed cache
// entries and report the outcome through a [Notifier].
package service

import (
	"context"

	"github.com/MKhiriev/go-task-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers the account operations.
type AuthService interface {
	// CurrentUser returns the signed-in account, from the cache while fresh.
	// It returns [ErrNoCredential] without a request when no credential is
	// stored. A 401 removes the credential.
	CurrentUser(ctx context.Context) (models.User, error)

	// RefetchCurrentUser fetches the account ignoring cache freshness.
	RefetchCurrentUser(ctx context.Context) (models.User, error)

	// SignIn authenticates, and on success clears the cache, stores the new
	// credential and marks the current user stale. A credential that is not
	// token-shaped is rejected with [ErrInvalidToken] and nothing is stored.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)

	// SignUp validates the form and creates an account with role User. It
	// does not sign in.
	SignUp(ctx context.Context, form models.SignUpForm) (models.User, error)

	// SignOut tears down the session: a best-effort server call, then the
	// cache and the credential are cleared. It cannot fail.
	SignOut(ctx context.Context)

	// HasToken reports whether a credential is stored.
	HasToken(ctx context.Context) bool
}

// TaskService covers task reads and mutations.
type TaskService interface {
	// List returns one page of tasks, from the cache while fresh.
	List(ctx context.Context, page, limit int) (models.TasksPage, error)

	// RefetchList fetches one page ignoring cache freshness.
	RefetchList(ctx context.Context, page, limit int) (models.TasksPage, error)

	// Get returns a single task, from the cache while fresh.
	Get(ctx context.Context, id string) (models.Task, error)

	Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	Update(ctx context.Context, req models.UpdateTaskRequest) (models.Task, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (models.Task, error)

	// IsToggling reports whether a status toggle of id is in flight.
	IsToggling(id string) bool

	// IsDeleting reports whether a delete of id is in flight.
	IsDeleting(id string) bool
}
