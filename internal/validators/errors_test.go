// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrTitleRequired))
	assert.True(t, IsValidationError(fmt.Errorf("form: %w", ErrPasswordsDoNotMatch)))
	assert.False(t, IsValidationError(ErrUnsupportedType))
	assert.False(t, IsValidationError(errors.New("Title is required")))
	assert.False(t, IsValidationError(nil))
}
