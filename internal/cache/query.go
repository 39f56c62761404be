// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"fmt"
)

// Query is the typed form of [Cache.Fetch].
func Query[T any](ctx context.Context, c *Cache, key Key, opts Options, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	value, err := c.Fetch(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cache entry %s holds %T", key, value)
	}
	return typed, nil
}

// Peek is the typed form of [Cache.Get].
func Peek[T any](c *Cache, key Key) (T, bool) {
	var zero T

	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
