// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/store"
	"github.com/MKhiriev/go-task-manager/internal/validators"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := New(config.ServerConfig{TokenSignKey: "test-key", TokenDuration: time.Hour}, logger.Nop())
	b.bcryptCost = bcrypt.MinCost
	return b
}

func mustSignUp(t *testing.T, b *Backend, email, role string) models.User {
	t.Helper()
	user, err := b.SignUp(context.Background(), models.SignUpRequest{
		Name: "Name", Email: email, Password: "secret1", Role: role,
	})
	require.NoError(t, err)
	return user
}

func mustCreate(t *testing.T, b *Backend, owner models.User, title string) models.Task {
	t.Helper()
	task, err := b.CreateTask(context.Background(), owner, models.CreateTaskRequest{Title: title, Description: "D"})
	require.NoError(t, err)
	return task
}

// ── accounts ─────────────────────────────────────────────────────────────────

func TestBackend_SignUp(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	user, err := b.SignUp(ctx, models.SignUpRequest{Name: " New ", Email: "New@Test.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "New", user.Name)
	assert.Equal(t, "new@test.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = b.SignUp(ctx, models.SignUpRequest{Name: "Other", Email: "new@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = b.SignUp(ctx, models.SignUpRequest{Name: "Short", Email: "short@test.com", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestBackend_SignIn(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)

	data, err := b.SignIn(ctx, models.SignInRequest{Email: "USER@test.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user, data.User)
	assert.True(t, store.IsValidToken(data.Token))

	authed, err := b.Authenticate(ctx, data.Token)
	require.NoError(t, err)
	assert.Equal(t, user, authed)

	_, err = b.SignIn(ctx, models.SignInRequest{Email: "user@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = b.SignIn(ctx, models.SignInRequest{Email: "nobody@test.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBackend_Authenticate_Rejects(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	mustSignUp(t, b, "user@test.com", models.RoleUser)

	_, err := b.Authenticate(ctx, "header.payload.signature")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := New(config.ServerConfig{TokenSignKey: "other-key", TokenDuration: time.Hour}, logger.Nop())
	other.bcryptCost = bcrypt.MinCost
	mustSignUp(t, other, "user@test.com", models.RoleUser)
	data, err := other.SignIn(ctx, models.SignInRequest{Email: "user@test.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = b.Authenticate(ctx, data.Token)
	assert.ErrorIs(t, err, ErrInvalidToken, "signed with another key")
}

// ── tasks ────────────────────────────────────────────────────────────────────

func TestBackend_CreateTask(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)

	task, err := b.CreateTask(ctx, user, models.CreateTaskRequest{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, task.Status)
	assert.Equal(t, user.ID, task.CreatedBy)
	assert.False(t, task.CreatedAt.IsZero())

	_, err = b.CreateTask(ctx, user, models.CreateTaskRequest{Title: "T"})
	assert.ErrorIs(t, err, validators.ErrDescriptionRequired)
}

func TestBackend_ListTasks_Pagination(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)
	for i := 1; i <= 12; i++ {
		mustCreate(t, b, user, fmt.Sprintf("task %d", i))
	}

	tests := []struct {
		name      string
		page      int
		limit     int
		wantLen   int
		wantFirst string
		wantPages int
		wantPage  int
		wantLimit int
	}{
		{name: "first page newest first", page: 1, limit: 5, wantLen: 5, wantFirst: "task 12", wantPages: 3, wantPage: 1, wantLimit: 5},
		{name: "last partial page", page: 3, limit: 5, wantLen: 2, wantFirst: "task 2", wantPages: 3, wantPage: 3, wantLimit: 5},
		{name: "past the end", page: 4, limit: 5, wantLen: 0, wantPages: 3, wantPage: 4, wantLimit: 5},
		{name: "clamped page and default limit", page: 0, limit: 0, wantLen: 10, wantFirst: "task 12", wantPages: 2, wantPage: 1, wantLimit: DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.ListTasks(ctx, user, tt.page, tt.limit)
			assert.Len(t, got.Tasks, tt.wantLen)
			assert.LessOrEqual(t, len(got.Tasks), got.Limit)
			assert.Equal(t, 12, got.Total)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, got.Tasks[0].Title)
			}
		})
	}
}

func TestBackend_TasksAreScopedToOwner(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	alice := mustSignUp(t, b, "alice@test.com", models.RoleUser)
	bob := mustSignUp(t, b, "bob@test.com", models.RoleUser)
	admin := mustSignUp(t, b, "admin@test.com", models.RoleAdmin)

	task := mustCreate(t, b, alice, "alice's")
	mustCreate(t, b, bob, "bob's")

	assert.Equal(t, 1, b.ListTasks(ctx, alice, 1, 5).Total)
	assert.Equal(t, 2, b.ListTasks(ctx, admin, 1, 5).Total)

	_, err := b.GetTask(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = b.ToggleStatus(ctx, bob, task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	got, err := b.GetTask(ctx, admin, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestBackend_UpdateTask(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)
	task := mustCreate(t, b, user, "old")

	title := "new"
	status := models.TaskStatusCompleted
	got, err := b.UpdateTask(ctx, user, models.UpdateTaskRequest{ID: task.ID, Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "D", got.Description)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)

	_, err = b.UpdateTask(ctx, user, models.UpdateTaskRequest{ID: "missing", Title: &title})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = b.UpdateTask(ctx, user, models.UpdateTaskRequest{ID: task.ID})
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestBackend_ToggleStatus(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)
	task := mustCreate(t, b, user, "T")

	got, err := b.ToggleStatus(ctx, user, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)

	got, err = b.ToggleStatus(ctx, user, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPending, got.Status)
}

func TestBackend_DeleteTask(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	user := mustSignUp(t, b, "user@test.com", models.RoleUser)
	admin := mustSignUp(t, b, "admin@test.com", models.RoleAdmin)
	first := mustCreate(t, b, user, "first")
	second := mustCreate(t, b, user, "second")

	assert.ErrorIs(t, b.DeleteTask(ctx, user, first.ID), ErrAdminOnly)

	require.NoError(t, b.DeleteTask(ctx, admin, first.ID))
	assert.ErrorIs(t, b.DeleteTask(ctx, admin, first.ID), ErrTaskNotFound)

	page := b.ListTasks(ctx, user, 1, 5)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, second.ID, page.Tasks[0].ID)
}
