// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-task-manager/models"
)

// Field names accepted by [AuthValidator].
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldPasswordLength  = "password_length"
	FieldRole            = "role"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// AuthValidator validates sign-up and sign-in input.
type AuthValidator struct {
}

// NewAuthValidator constructs a new AuthValidator.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
// models.SignUpForm, models.SignUpRequest, models.SignInRequest and their
// pointers.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpForm:
		return v.validateSignUpForm(ctx, value, fields...)
	case *models.SignUpForm:
		return v.validateSignUpForm(ctx, *value, fields...)

	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	case models.SignInRequest:
		return v.validateSignIn(ctx, value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignUpForm checks, in order: required fields, matching passwords,
// then password length.
func (v *AuthValidator) validateSignUpForm(_ context.Context, form models.SignUpForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword, FieldPasswordLength}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(form.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			if form.Password == "" {
				return ErrPasswordRequired
			}
		case FieldConfirmPassword:
			if form.Password != form.ConfirmPassword {
				return ErrPasswordsDoNotMatch
			}
		case FieldPasswordLength:
			if len(form.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateSignUpRequest(_ context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldPasswordLength, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrNameRequired
			}
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordRequired
			}
		case FieldPasswordLength:
			if len(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldRole:
			if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateSignIn(_ context.Context, req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmailRequired
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
