// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache implements the client's query cache: server responses keyed
// by resource and parameters, with staleness, request deduplication, bounded
// retries and idle eviction.
//
// The cache is the only place server data lives on the client. Clearing it
// on every identity change (sign-in, sign-out, authorization failure) is what
// keeps one account's data from leaking into another session.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"golang.org/x/sync/singleflight"
)

// ErrCleared is returned by a fetch whose result was discarded because the
// cache was cleared while it was in flight.
var ErrCleared = errors.New("cache cleared during fetch")

// Fetcher loads the value of one key from the server.
type Fetcher func(ctx context.Context) (any, error)

// EntryState is a snapshot of one entry.
type EntryState struct {
	HasValue    bool
	UpdatedAt   time.Time
	Fetching    bool
	Invalidated bool
	Stale       bool
	Err         error
}

type entry struct {
	value       any
	hasValue    bool
	err         error
	updatedAt   time.Time
	lastAccess  time.Time
	inflight    int
	invalidated bool
	// version changes on every Set, Invalidate and InvalidateKey; a fetch
	// started under an older version never commits
	version uint64

	opts    Options
	fetcher Fetcher
}

func (e *entry) stale(now time.Time) bool {
	return !e.hasValue || e.invalidated || now.Sub(e.updatedAt) >= e.opts.StaleTime
}

// Cache is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[Key]*entry
	generation uint64

	group singleflight.Group
	now   func() time.Time

	logger *logger.Logger
}

// New returns an empty cache.
func New(log *logger.Logger) *Cache {
	return &Cache{
		entries: make(map[Key]*entry),
		now:     time.Now,
		logger:  log,
	}
}

// Get returns the cached value of key regardless of staleness.
func (c *Cache) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue {
		return nil, false
	}
	e.lastAccess = c.now()
	return e.value, true
}

// Set stores value under key as freshly fetched data.
func (c *Cache) Set(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{opts: DefaultOptions}
		c.entries[key] = e
	}
	e.value = value
	e.hasValue = true
	e.err = nil
	e.updatedAt = now
	e.lastAccess = now
	e.invalidated = false
	e.version++
}

// State returns a snapshot of key's entry and whether it exists.
func (c *Cache) State(key Key) (EntryState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return EntryState{}, false
	}
	return EntryState{
		HasValue:    e.hasValue,
		UpdatedAt:   e.updatedAt,
		Fetching:    e.inflight > 0,
		Invalidated: e.invalidated,
		Stale:       e.stale(c.now()),
		Err:         e.err,
	}, true
}

// Invalidate marks every entry of resource stale so that the next read
// refetches it. It returns the number of entries marked.
func (c *Cache) Invalidate(resource string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if k.Resource == resource {
			e.invalidated = true
			e.version++
			n++
		}
	}
	return n
}

// InvalidateKey marks a single entry stale.
func (c *Cache) InvalidateKey(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.invalidated = true
		e.version++
	}
}

// Remove evicts key.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear evicts every entry. Fetches in flight at the time of the call
// complete for their callers but never write into the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.generation++
	c.logger.Debug().Str("func", "Cache.Clear").Uint64("generation", c.generation).Msg("query cache cleared")
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Fetch returns the value of key, calling fetch only when the cached value
// is missing or stale. Concurrent calls for the same key share one fetch.
// On failure a previously cached value is kept and the error is returned.
//
// A result is written back only if the entry was not set, invalidated,
// removed or cleared while the fetch was in flight; otherwise the caller
// still receives it but the next read fetches again.
func (c *Cache) Fetch(ctx context.Context, key Key, opts Options, fetch Fetcher) (any, error) {
	c.mu.Lock()
	now := c.now()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	e.opts = opts
	e.fetcher = fetch
	e.lastAccess = now
	if !e.stale(now) {
		value := e.value
		c.mu.Unlock()
		return value, nil
	}
	generation, version := c.generation, e.version
	c.mu.Unlock()

	flightKey := fmt.Sprintf("%d/%d/%s", generation, version, key)
	value, err, _ := c.group.Do(flightKey, func() (any, error) {
		return c.load(ctx, key, e, generation, version, opts, fetch)
	})
	return value, err
}

// Refetch fetches key unconditionally, ignoring staleness.
func (c *Cache) Refetch(ctx context.Context, key Key, opts Options, fetch Fetcher) (any, error) {
	c.InvalidateKey(key)
	return c.Fetch(ctx, key, opts, fetch)
}

func (c *Cache) load(ctx context.Context, key Key, e *entry, generation, version uint64, opts Options, fetch Fetcher) (any, error) {
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return nil, ErrCleared
	}
	e.inflight++
	c.mu.Unlock()

	value, err := opts.run(ctx, fetch)

	c.mu.Lock()
	defer c.mu.Unlock()

	e.inflight--
	switch {
	case c.generation != generation:
		c.logger.Debug().Str("func", "Cache.load").Str("key", key.String()).
			Msg("discarding result fetched before cache clear")
		return value, err
	case c.entries[key] != e:
		c.logger.Debug().Str("func", "Cache.load").Str("key", key.String()).
			Msg("discarding result fetched before entry removal")
		return value, err
	}

	if err != nil {
		e.err = err
		return nil, err
	}
	if e.version != version {
		c.logger.Debug().Str("func", "Cache.load").Str("key", key.String()).
			Msg("entry changed during fetch, result not cached")
		return value, nil
	}

	now := c.now()
	e.value = value
	e.hasValue = true
	e.err = nil
	e.updatedAt = now
	e.lastAccess = now
	e.invalidated = false
	return value, nil
}

// RefreshStale silently refetches stale entries that were read within their
// GCTime and have a fetcher. Errors are logged, never returned. It returns
// the number of entries refreshed successfully.
func (c *Cache) RefreshStale(ctx context.Context) int {
	type candidate struct {
		key     Key
		opts    Options
		fetcher Fetcher
	}

	c.mu.Lock()
	now := c.now()
	var candidates []candidate
	for k, e := range c.entries {
		if e.fetcher == nil || e.inflight > 0 || !e.stale(now) {
			continue
		}
		if now.Sub(e.lastAccess) > e.opts.GCTime {
			continue
		}
		candidates = append(candidates, candidate{key: k, opts: e.opts, fetcher: e.fetcher})
	}
	c.mu.Unlock()

	refreshed := 0
	for _, cand := range candidates {
		if ctx.Err() != nil {
			break
		}
		if _, err := c.Fetch(ctx, cand.key, cand.opts, cand.fetcher); err != nil {
			c.logger.Debug().Err(err).
				Str("func", "Cache.RefreshStale").
				Str("key", cand.key.String()).
				Msg("background refresh failed")
			continue
		}
		refreshed++
	}
	return refreshed
}

// Collect evicts entries not read for longer than their GCTime and returns
// how many were evicted. Entries with a fetch in flight are kept.
func (c *Cache) Collect() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for k, e := range c.entries {
		if e.inflight > 0 {
			continue
		}
		if now.Sub(e.lastAccess) > e.opts.GCTime {
			delete(c.entries, k)
			evicted++
		}
	}
	return evicted
}
