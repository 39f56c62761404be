// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation errors. Their texts are shown to the user as-is.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired        = errors.New("Name is required")
	ErrEmailRequired       = errors.New("Email is required")
	ErrInvalidEmail        = errors.New("Invalid email address")
	ErrPasswordRequired    = errors.New("Password is required")
	ErrPasswordsDoNotMatch = errors.New("Passwords do not match")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters")
	ErrInvalidRole         = errors.New("Role must be Admin or User")

	ErrTitleRequired       = errors.New("Title is required")
	ErrDescriptionRequired = errors.New("Description is required")
	ErrInvalidStatus       = errors.New("Status must be Pending or Completed")
	ErrNoFieldsToUpdate    = errors.New("At least one field must be provided for update")
)

var userFacing = []error{
	ErrNameRequired, ErrEmailRequired, ErrInvalidEmail, ErrPasswordRequired,
	ErrPasswordsDoNotMatch, ErrPasswordTooShort, ErrInvalidRole,
	ErrTitleRequired, ErrDescriptionRequired, ErrInvalidStatus, ErrNoFieldsToUpdate,
}

// IsValidationError reports whether err is a form validation failure that
// should be shown next to the form rather than as a notification.
func IsValidationError(err error) bool {
	for _, target := range userFacing {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
