// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's persistent local storage and the
// credential store built on top of it.
//
// [KeyValueStorage] is the string key/value contract of the local storage
// (SQLite-backed in production, in-memory in tests and as a fallback).
// [TokenStore] keeps the single bearer credential under a fixed key.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a persistent string key/value storage.
type KeyValueStorage interface {
	// GetItem returns the value stored under key, or [ErrItemNotFound].
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// TokenStore holds the single bearer credential of the client.
//
// All methods fail silently: storage errors are logged and reported as an
// absent credential, never returned to the caller.
type TokenStore interface {
	// Get returns the stored credential and true, or "" and false when no
	// credential is stored.
	Get(ctx context.Context) (string, bool)

	// Set stores token as the current credential.
	Set(ctx context.Context, token string)

	// Remove deletes the stored credential.
	Remove(ctx context.Context)

	// Has reports whether a credential is stored.
	Has(ctx context.Context) bool
}
