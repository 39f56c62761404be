// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-manager/models"
)

// visible reports whether user may see task. Admins see every task.
func visible(user models.User, task models.Task) bool {
	return user.IsAdmin() || task.CreatedBy == user.ID
}

// ListTasks returns one page of the tasks visible to user, newest first.
// page is 1-based; out-of-range values are clamped.
func (b *Backend) ListTasks(_ context.Context, user models.User, page, limit int) models.TasksPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	all := make([]models.Task, 0, len(b.order))
	for i := len(b.order) - 1; i >= 0; i-- {
		task := b.tasks[b.order[i]]
		if visible(user, task) {
			all = append(all, task)
		}
	}

	result := models.TasksPage{
		Tasks:      []models.Task{},
		Total:      len(all),
		Page:       page,
		Limit:      limit,
		TotalPages: models.PageCount(len(all), limit),
	}

	start := (page - 1) * limit
	if start >= len(all) {
		return result
	}
	end := min(start+limit, len(all))
	result.Tasks = append(result.Tasks, all[start:end]...)

	return result
}

// GetTask returns task id when user may see it.
func (b *Backend) GetTask(_ context.Context, user models.User, id string) (models.Task, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.lookup(user, id)
}

// lookup must be called with mu held. Tasks of other users are reported as
// missing.
func (b *Backend) lookup(user models.User, id string) (models.Task, error) {
	task, ok := b.tasks[id]
	if !ok || !visible(user, task) {
		return models.Task{}, ErrTaskNotFound
	}
	return task, nil
}

// CreateTask stores a new task owned by user. An empty status becomes
// Pending.
func (b *Backend) CreateTask(ctx context.Context, user models.User, req models.CreateTaskRequest) (models.Task, error) {
	if req.Status == "" {
		req.Status = models.TaskStatusPending
	}
	if err := b.taskValidator.Validate(ctx, req); err != nil {
		return models.Task{}, &ValidationError{Err: err}
	}

	now := b.now().UTC()
	task := models.Task{
		ID:          b.ids(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
		CreatedBy:   user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tasks[task.ID] = task
	b.order = append(b.order, task.ID)

	return task, nil
}

// UpdateTask applies the fields present in req.
func (b *Backend) UpdateTask(ctx context.Context, user models.User, req models.UpdateTaskRequest) (models.Task, error) {
	if err := b.taskValidator.Validate(ctx, req); err != nil {
		return models.Task{}, &ValidationError{Err: err}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	task, err := b.lookup(user, req.ID)
	if err != nil {
		return models.Task{}, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	task.UpdatedAt = b.now().UTC()
	b.tasks[task.ID] = task

	return task, nil
}

// ToggleStatus flips the task between Pending and Completed.
func (b *Backend) ToggleStatus(_ context.Context, user models.User, id string) (models.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	task, err := b.lookup(user, id)
	if err != nil {
		return models.Task{}, err
	}

	task.Status = task.Status.Toggle()
	task.UpdatedAt = b.now().UTC()
	b.tasks[task.ID] = task

	return task, nil
}

// DeleteTask removes a task. Only admins may delete.
func (b *Backend) DeleteTask(_ context.Context, user models.User, id string) error {
	if !user.IsAdmin() {
		return ErrAdminOnly
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.lookup(user, id); err != nil {
		return err
	}

	delete(b.tasks, id)
	for i, taskID := range b.order {
		if taskID == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	return nil
}
