// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDFunc yields a new unique identifier on each call.
type IDFunc func() string

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4 when
// the clock source fails. Task ids and request ids both come from here.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
