// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoCredential is returned by reads that need a credential when none
	// is stored. No request is made.
	ErrNoCredential = errors.New("no credential stored")

	// ErrInvalidToken is returned by SignIn when the server answered with a
	// value that is not shaped like a bearer token.
	ErrInvalidToken = errors.New("invalid token received")
)
