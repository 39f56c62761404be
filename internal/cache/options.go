// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const defaultRetryDelay = 200 * time.Millisecond

// Options control freshness, eviction and retries of one query.
type Options struct {
	// StaleTime is how long a fetched value is served without refetching.
	StaleTime time.Duration

	// GCTime is how long an entry may stay unread before [Cache.Collect]
	// evicts it.
	GCTime time.Duration

	// Retries is the number of additional attempts after a failed fetch.
	Retries uint64

	// RetryDelay is the base of the exponential backoff between attempts.
	RetryDelay time.Duration

	// Retryable decides whether a failed attempt may be retried. A nil
	// Retryable retries every error.
	Retryable func(error) bool
}

// DefaultOptions is used for entries seeded with [Cache.Set] before any query
// ran for their key.
var DefaultOptions = Options{
	StaleTime: time.Minute,
	GCTime:    5 * time.Minute,
}

func (o Options) retryDelay() time.Duration {
	if o.RetryDelay <= 0 {
		return defaultRetryDelay
	}
	return o.RetryDelay
}

// run calls fetch, retrying failures the options allow.
func (o Options) run(ctx context.Context, fetch Fetcher) (any, error) {
	var value any

	backoff := retry.WithMaxRetries(o.Retries, retry.NewExponential(o.retryDelay()))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fetch(ctx)
		if err != nil {
			if o.Retryable == nil || o.Retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		value = v
		return nil
	})

	return value, err
}
