// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/adapter"
	"github.com/MKhiriev/go-task-manager/internal/cache"
)

const retryDelay = 500 * time.Millisecond

// Queries holds the cache options of every read.
type Queries struct {
	CurrentUser cache.Options
	TaskList    cache.Options
	Task        cache.Options
}

// DefaultQueries returns the production query options.
func DefaultQueries() Queries {
	return Queries{
		CurrentUser: cache.Options{
			StaleTime:  5 * time.Minute,
			GCTime:     10 * time.Minute,
			Retries:    2,
			RetryDelay: retryDelay,
			Retryable:  notUnauthorized,
		},
		TaskList: cache.Options{
			StaleTime:  2 * time.Minute,
			GCTime:     5 * time.Minute,
			Retries:    2,
			RetryDelay: retryDelay,
			Retryable:  adapter.IsRetryable,
		},
		Task: cache.Options{
			StaleTime:  5 * time.Minute,
			GCTime:     5 * time.Minute,
			Retries:    2,
			RetryDelay: retryDelay,
			Retryable:  adapter.IsRetryable,
		},
	}
}

// notUnauthorized retries every failure of the current-user read except an
// authorization failure, which is final.
func notUnauthorized(err error) bool {
	return !errors.Is(err, adapter.ErrUnauthorized)
}
