// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/logger"
)

type sqliteStorage struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteStorage returns a [KeyValueStorage] backed by the local_storage
// table of db. The schema must already be migrated.
func NewSQLiteStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	return &sqliteStorage{DB: db, logger: logger, now: time.Now}
}

func (s *sqliteStorage) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := getItemQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrItemNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.GetItem").
			Str("key", key).
			Msg("failed to read local storage item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStorage) SetItem(ctx context.Context, key, value string) error {
	query, args, err := setItemQuery(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.SetItem").
			Str("key", key).
			Msg("failed to write local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *sqliteStorage) RemoveItem(ctx context.Context, key string) error {
	query, args, err := removeItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStorage.RemoveItem").
			Str("key", key).
			Msg("failed to remove local storage item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
