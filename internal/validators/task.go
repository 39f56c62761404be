// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-task-manager/models"
)

// Field names accepted by [TaskValidator].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldAnyUpdate   = "any_update"
)

// TaskValidator validates task create and update input.
type TaskValidator struct {
}

// NewTaskValidator constructs a new TaskValidator.
func NewTaskValidator() Validator {
	return &TaskValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
// models.CreateTaskRequest, models.UpdateTaskRequest and their pointers.
func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTaskRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateTaskRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.UpdateTaskRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateTaskRequest:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateCreate(_ context.Context, req models.CreateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrTitleRequired
			}
		case FieldDescription:
			if strings.TrimSpace(req.Description) == "" {
				return ErrDescriptionRequired
			}
		case FieldStatus:
			if !req.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks only the fields that are present: an absent field
// is left unchanged by the server, a present one must be valid.
func (v *TaskValidator) validateUpdate(_ context.Context, req models.UpdateTaskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTitle, FieldDescription, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if req.Title == nil && req.Description == nil && req.Status == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
				return ErrTitleRequired
			}
		case FieldDescription:
			if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
				return ErrDescriptionRequired
			}
		case FieldStatus:
			if req.Status != nil && !req.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
