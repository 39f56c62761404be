// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs: silent refresh of
// stale queries and eviction of idle cache entries.
//
// Every worker is idle until Start is called and runs until its context is
// cancelled or Stop is called.
package workers

import "context"

// Worker is a background job.
type Worker interface {
	// Start launches the job, replacing a previous run of the same worker.
	Start(ctx context.Context)
	// Stop cancels the job and waits for it to exit. Safe to call when the
	// worker is not running.
	Stop()
}

// QueryCache is the part of the query cache the workers maintain.
type QueryCache interface {
	RefreshStale(ctx context.Context) int
	Collect() int
}
