// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-manager/internal/logger"
)

// TokenKey is the storage key the credential lives under.
const TokenKey = "token"

const minTokenLength = 10

type tokenStore struct {
	storage KeyValueStorage
	logger  *logger.Logger
}

// NewTokenStore returns a [TokenStore] over storage. A nil storage models an
// environment without persistent storage: the credential is always absent
// and writes are dropped.
func NewTokenStore(storage KeyValueStorage, logger *logger.Logger) TokenStore {
	return &tokenStore{storage: storage, logger: logger}
}

func (t *tokenStore) Get(ctx context.Context) (string, bool) {
	if t.storage == nil {
		return "", false
	}

	token, err := t.storage.GetItem(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			t.logger.Warn().Err(err).Str("func", "tokenStore.Get").Msg("credential unreadable, treating as absent")
		}
		return "", false
	}

	return token, true
}

func (t *tokenStore) Set(ctx context.Context, token string) {
	if t.storage == nil {
		return
	}

	if err := t.storage.SetItem(ctx, TokenKey, token); err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenStore.Set").Msg("credential was not persisted")
	}
}

func (t *tokenStore) Remove(ctx context.Context) {
	if t.storage == nil {
		return
	}

	if err := t.storage.RemoveItem(ctx, TokenKey); err != nil {
		t.logger.Warn().Err(err).Str("func", "tokenStore.Remove").Msg("credential was not removed")
	}
}

func (t *tokenStore) Has(ctx context.Context) bool {
	_, ok := t.Get(ctx)
	return ok
}

// IsValidToken reports whether token is shaped like a bearer credential:
// longer than 10 characters and made of exactly three dot-separated
// segments. No server round-trip is made.
func IsValidToken(token string) bool {
	return len(token) > minTokenLength && len(strings.Split(token, ".")) == 3
}
