// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasksList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(t, w, http.StatusOK, models.TasksPage{
			Tasks: []models.Task{{ID: "t6", Title: "Sixth", Status: models.TaskStatusPending}},
			Total: 6,
		})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	page, err := NewTasksAPI(c).List(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, "t6", page.Tasks[0].ID)
	assert.Equal(t, 2, page.PageCount(5))
}

func TestTasksList_EmptyTasksNeverNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"total": 0})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	page, err := NewTasksAPI(c).List(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.NotNil(t, page.Tasks)
	assert.Empty(t, page.Tasks)
}

func TestTasksGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks/missing", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "Task not found"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := NewTasksAPI(c).Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTasksCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body models.CreateTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.CreateTaskRequest{Title: "T", Description: "D", Status: models.TaskStatusPending}, body)

		writeJSON(t, w, http.StatusCreated, models.Task{ID: "t1", Title: body.Title, Description: body.Description, Status: body.Status})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	task, err := NewTasksAPI(c).Create(context.Background(), models.CreateTaskRequest{Title: "T", Description: "D", Status: models.TaskStatusPending})

	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)
}

func TestTasksUpdate_IDInPathOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/t1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "New"}, body)

		writeJSON(t, w, http.StatusOK, models.Task{ID: "t1", Title: "New"})
	}))
	defer srv.Close()

	title := "New"
	c, _ := newTestClient(t, srv.URL)
	task, err := NewTasksAPI(c).Update(context.Background(), models.UpdateTaskRequest{ID: "t1", Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New", task.Title)
}

func TestTasksDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/t1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "Task deleted"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	resp, err := NewTasksAPI(c).Delete(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "Task deleted", resp.Message)
}

func TestTasksDelete_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Message: "Only admins can delete tasks"})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := NewTasksAPI(c).Delete(context.Background(), "t1")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTasksToggleStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/tasks/t1/toggle-status", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Task{ID: "t1", Status: models.TaskStatusCompleted})
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	task, err := NewTasksAPI(c).ToggleStatus(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Status)
}

func TestTasks_EmptyID(t *testing.T) {
	api := NewTasksAPI(&Client{})
	ctx := context.Background()

	_, err := api.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyTaskID)
	_, err = api.Update(ctx, models.UpdateTaskRequest{})
	assert.ErrorIs(t, err, ErrEmptyTaskID)
	_, err = api.Delete(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyTaskID)
	_, err = api.ToggleStatus(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyTaskID)
}
