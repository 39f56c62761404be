// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/logger"
)

// NewStaleRefresher returns a worker that refetches stale queries every
// interval, so screens show current data without a manual refresh.
func NewStaleRefresher(c QueryCache, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob(interval, func(ctx context.Context) {
		if n := c.RefreshStale(ctx); n > 0 {
			log.Debug().Str("func", "StaleRefresher").Int("refreshed", n).Msg("stale queries refreshed")
		}
	})
}

// NewCacheCollector returns a worker that evicts idle cache entries every
// interval.
func NewCacheCollector(c QueryCache, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob(interval, func(context.Context) {
		if n := c.Collect(); n > 0 {
			log.Debug().Str("func", "CacheCollector").Int("evicted", n).Msg("idle cache entries evicted")
		}
	})
}
