// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server serves the task API until its context ends.
type Server interface {
	// Run blocks until ctx is done or the listener fails. On cancellation
	// in-flight requests are drained before it returns nil.
	Run(ctx context.Context) error

	// Addr reports the configured listen address.
	Addr() string
}
