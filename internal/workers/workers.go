// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
)

// Workers starts and stops a group of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers returns the client's background workers over c.
func NewWorkers(cfg config.ClientWorkers, c QueryCache, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewStaleRefresher(c, cfg.RefreshInterval, log),
		NewCacheCollector(c, cfg.GCInterval, log),
	}}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in order and waits for them to exit.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
