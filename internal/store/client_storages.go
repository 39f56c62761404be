// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
)

// ClientStorages groups the client-side storages into a single value that is
// passed to the rest of the application.
type ClientStorages struct {
	// Storage is the persistent key/value storage.
	Storage KeyValueStorage

	// Tokens is the credential store over Storage.
	Tokens TokenStore

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite database at cfg.DB.DSN.
//  2. Runs pending schema migrations.
//  3. Builds the key/value storage and the token store on top of it.
//
// When SQLite cannot be used the client keeps working on an in-memory
// storage; the credential then lasts only for the current process.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) *ClientStorages {
	log.Info().Msg("creating client storages...")

	storage, db, err := newSQLiteKeyValueStorage(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("persistent storage unavailable, falling back to memory")
		storage = NewMemoryStorage()
	}

	return &ClientStorages{
		Storage: storage,
		Tokens:  NewTokenStore(storage, log),
		db:      db,
	}
}

func newSQLiteKeyValueStorage(cfg config.ClientStorage, log *logger.Logger) (KeyValueStorage, *DB, error) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStorage(db, log), db, nil
}

// Close releases the underlying database, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
