// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestChannelNotifier_DropsWhenFull(t *testing.T) {
	n := NewChannelNotifier(1)

	n.Notify(Success("first"))
	n.Notify(Failure("second"))

	assert.Equal(t, Success("first"), <-n.C())
	select {
	case got := <-n.C():
		t.Fatalf("unexpected notification %v", got)
	default:
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "Success", LevelSuccess.String())
	assert.Equal(t, "Error", LevelError.String())
	assert.Equal(t, "Info", LevelInfo.String())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Email taken", ErrorMessage(&adapter.APIError{StatusCode: 409, Message: "Email taken"}, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(&adapter.APIError{StatusCode: 409}, "fallback"))
	assert.Equal(t, "fallback", ErrorMessage(errors.New("boom"), "fallback"))
}

func TestIDSet(t *testing.T) {
	s := newIDSet()

	first := s.add("a")
	second := s.add("a")
	assert.True(t, s.has("a"))

	first()
	first()
	assert.True(t, s.has("a"), "each mark is released once")

	second()
	assert.False(t, s.has("a"))
	assert.False(t, s.has("b"))
}
