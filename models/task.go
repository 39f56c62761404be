// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "Pending"
	TaskStatusCompleted TaskStatus = "Completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Toggle returns the opposite status. Unknown statuses toggle to Completed,
// mirroring what the server does for a freshly created task.
func (s TaskStatus) Toggle() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

// Task is a server-owned task. The client only ever holds cached copies of
// server responses and never derives task state locally.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// UpdateTaskRequest describes a partial update of a task. Only non-nil fields
// are sent. ID travels in the request path, never in the body.
type UpdateTaskRequest struct {
	ID          string      `json:"-"`
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// TasksPage is one page of the paginated task list returned by
// GET /api/tasks?page=&limit=.
type TasksPage struct {
	Tasks      []Task `json:"tasks"`
	Total      int    `json:"total"`
	Page       int    `json:"page,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	TotalPages int    `json:"totalPages,omitempty"`
}

// PageCount returns the number of pages for the given page size. The value
// reported by the server wins; otherwise it is ceil(Total/limit).
func (p TasksPage) PageCount(limit int) int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	return PageCount(p.Total, limit)
}

// PageCount returns ceil(total/limit), or 0 when limit is not positive.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
