// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable terminal application.
type Client interface {
	// Run blocks until the user quits or ctx ends. A user quit is not an
	// error.
	Run(ctx context.Context) error
}

// UI is the view layer the application hands control to.
type UI interface {
	Run(ctx context.Context) error
}
