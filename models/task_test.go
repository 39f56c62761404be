// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatus_Toggle(t *testing.T) {
	assert.Equal(t, TaskStatusCompleted, TaskStatusPending.Toggle())
	assert.Equal(t, TaskStatusPending, TaskStatusCompleted.Toggle())
	assert.Equal(t, TaskStatusCompleted, TaskStatus("").Toggle())
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskStatusPending.Valid())
	assert.True(t, TaskStatusCompleted.Valid())
	assert.False(t, TaskStatus("Done").Valid())
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty", total: 0, limit: 5, want: 0},
		{name: "exact", total: 10, limit: 5, want: 2},
		{name: "remainder", total: 11, limit: 5, want: 3},
		{name: "less than one page", total: 3, limit: 5, want: 1},
		{name: "zero limit", total: 3, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.total, tt.limit))
		})
	}
}

func TestTasksPage_PageCountPrefersServerValue(t *testing.T) {
	assert.Equal(t, 7, TasksPage{Total: 11, TotalPages: 7}.PageCount(5))
	assert.Equal(t, 3, TasksPage{Total: 11}.PageCount(5))
}

func TestUpdateTaskRequest_OmitsIDAndNilFields(t *testing.T) {
	title := "new title"
	body, err := json.Marshal(UpdateTaskRequest{ID: "abc", Title: &title})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"new title"}`, string(body))
}

func TestTask_DecodesMongoStyleID(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"42","title":"T","status":"Pending"}`), &task))
	assert.Equal(t, "42", task.ID)
	assert.Equal(t, TaskStatusPending, task.Status)
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleUser}.IsAdmin())
}
