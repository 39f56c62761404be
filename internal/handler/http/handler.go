// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/models"
)

// Backend is the account and task store served over HTTP.
type Backend interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthData, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
	User(id string) (models.User, error)

	ListTasks(ctx context.Context, user models.User, page, limit int) models.TasksPage
	GetTask(ctx context.Context, user models.User, id string) (models.Task, error)
	CreateTask(ctx context.Context, user models.User, req models.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, user models.User, req models.UpdateTaskRequest) (models.Task, error)
	ToggleStatus(ctx context.Context, user models.User, id string) (models.Task, error)
	DeleteTask(ctx context.Context, user models.User, id string) error
}

type Handler struct {
	backend Backend

	logger *logger.Logger
}

func NewHandler(backend Backend, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend: backend,
		logger:  logger,
	}
}
