// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/internal/validators"
	"github.com/MKhiriev/go-task-manager/models"
)

type taskService struct {
	api       adapter.TasksAPI
	cache     *cache.Cache
	notifier  Notifier
	validator validators.Validator
	queries   Queries

	toggling *idSet
	deleting *idSet

	logger *logger.Logger
}

// NewTaskService returns the [TaskService] over api.
func NewTaskService(api adapter.TasksAPI, c *cache.Cache, notifier Notifier, log *logger.Logger) TaskService {
	return &taskService{
		api:       api,
		cache:     c,
		notifier:  notifier,
		validator: validators.NewTaskValidator(),
		queries:   DefaultQueries(),
		toggling:  newIDSet(),
		deleting:  newIDSet(),
		logger:    log,
	}
}

func (t *taskService) List(ctx context.Context, page, limit int) (models.TasksPage, error) {
	return cache.Query(ctx, t.cache, cache.TaskListKey(page, limit), t.queries.TaskList,
		func(ctx context.Context) (models.TasksPage, error) {
			return t.api.List(ctx, page, limit)
		})
}

func (t *taskService) RefetchList(ctx context.Context, page, limit int) (models.TasksPage, error) {
	t.cache.InvalidateKey(cache.TaskListKey(page, limit))
	return t.List(ctx, page, limit)
}

func (t *taskService) Get(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, adapter.ErrEmptyTaskID
	}

	return cache.Query(ctx, t.cache, cache.TaskKey(id), t.queries.Task,
		func(ctx context.Context) (models.Task, error) {
			return t.api.Get(ctx, id)
		})
}

func (t *taskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.Task{}, err
	}

	task, err := t.api.Create(ctx, req)
	if err != nil {
		t.notifyFailure(err, MsgTaskCreateFailed)
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	t.cache.Invalidate(cache.ResourceTasks)
	t.cache.Set(cache.TaskKey(task.ID), task)
	t.notifier.Notify(Success(MsgTaskCreated))

	return task, nil
}

func (t *taskService) Update(ctx context.Context, req models.UpdateTaskRequest) (models.Task, error) {
	if req.ID == "" {
		return models.Task{}, adapter.ErrEmptyTaskID
	}
	if err := t.validator.Validate(ctx, req); err != nil {
		return models.Task{}, err
	}

	task, err := t.api.Update(ctx, req)
	if err != nil {
		t.notifyFailure(err, MsgTaskUpdateFailed)
		return models.Task{}, fmt.Errorf("update task %s: %w", req.ID, err)
	}

	t.cache.Invalidate(cache.ResourceTasks)
	t.cache.Set(cache.TaskKey(task.ID), task)
	t.notifier.Notify(Success(MsgTaskUpdated))

	return task, nil
}

func (t *taskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return adapter.ErrEmptyTaskID
	}

	done := t.deleting.add(id)
	defer done()

	if _, err := t.api.Delete(ctx, id); err != nil {
		t.notifyFailure(err, MsgTaskDeleteFailed)
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	t.cache.Remove(cache.TaskKey(id))
	t.cache.Invalidate(cache.ResourceTasks)
	t.notifier.Notify(Success(MsgTaskDeleted))

	return nil
}

func (t *taskService) ToggleStatus(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, adapter.ErrEmptyTaskID
	}

	done := t.toggling.add(id)
	task, err := t.api.ToggleStatus(ctx, id)
	done()

	// the list is refreshed whether or not the toggle went through
	defer t.cache.Invalidate(cache.ResourceTasks)

	if err != nil {
		t.notifyFailure(err, MsgTaskToggleFailed)
		return models.Task{}, fmt.Errorf("toggle task %s: %w", id, err)
	}

	t.cache.Set(cache.TaskKey(task.ID), task)
	return task, nil
}

func (t *taskService) IsToggling(id string) bool {
	return t.toggling.has(id)
}

func (t *taskService) IsDeleting(id string) bool {
	return t.deleting.has(id)
}

// notifyFailure reports a failed mutation. Authorization failures are
// reported once by the session, not per request.
func (t *taskService) notifyFailure(err error, fallback string) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return
	}
	if errors.Is(err, adapter.ErrNetwork) {
		fallback = MsgNetworkFailure
	}

	t.logger.Debug().Err(err).Str("func", "taskService.notifyFailure").Msg(fallback)
	t.notifier.Notify(Failure(ErrorMessage(err, fallback)))
}
