// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-task-manager/models"
)

// ErrEmptyTaskID is returned before any request is made when an operation on
// a single task has no id.
var ErrEmptyTaskID = errors.New("empty task id")

type tasksAPI struct {
	client *Client
}

// NewTasksAPI returns the [TasksAPI] over client.
func NewTasksAPI(client *Client) TasksAPI {
	return &tasksAPI{client: client}
}

func (t *tasksAPI) List(ctx context.Context, page, limit int) (models.TasksPage, error) {
	var result models.TasksPage

	resp, err := t.client.R(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get("/api/tasks")
	if err != nil {
		return models.TasksPage{}, mapTransportError("list tasks", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TasksPage{}, err
	}

	if result.Tasks == nil {
		result.Tasks = []models.Task{}
	}
	return result, nil
}

func (t *tasksAPI) Get(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, ErrEmptyTaskID
	}

	var result models.Task

	resp, err := t.client.R(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/tasks/{id}")
	if err != nil {
		return models.Task{}, mapTransportError("get task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return result, nil
}

func (t *tasksAPI) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var result models.Task

	resp, err := t.client.R(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, mapTransportError("create task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return result, nil
}

func (t *tasksAPI) Update(ctx context.Context, req models.UpdateTaskRequest) (models.Task, error) {
	if req.ID == "" {
		return models.Task{}, ErrEmptyTaskID
	}

	var result models.Task

	resp, err := t.client.R(ctx).
		SetPathParam("id", req.ID).
		SetBody(req).
		SetResult(&result).
		Put("/api/tasks/{id}")
	if err != nil {
		return models.Task{}, mapTransportError("update task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return result, nil
}

func (t *tasksAPI) Delete(ctx context.Context, id string) (models.MessageResponse, error) {
	if id == "" {
		return models.MessageResponse{}, ErrEmptyTaskID
	}

	var result models.MessageResponse

	resp, err := t.client.R(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete("/api/tasks/{id}")
	if err != nil {
		return models.MessageResponse{}, mapTransportError("delete task", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

func (t *tasksAPI) ToggleStatus(ctx context.Context, id string) (models.Task, error) {
	if id == "" {
		return models.Task{}, ErrEmptyTaskID
	}

	var result models.Task

	resp, err := t.client.R(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Patch("/api/tasks/{id}/toggle-status")
	if err != nil {
		return models.Task{}, fmt.Errorf("toggle task %s: %w", id, mapTransportError("toggle", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return result, nil
}
