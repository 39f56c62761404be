// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-task-manager/internal/config"
	"github.com/MKhiriev/go-task-manager/internal/logger"
)

const memoryDSN = ":memory:"

// NewConnectSQLite opens the local SQLite database at cfg.DSN and pings it.
// A file DSN has its parent directory created first.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	dbLog := log.With().Str("dsn", cfg.DSN).Logger()

	if cfg.DSN != memoryDSN {
		if err := ensureParentDir(cfg.DSN); err != nil {
			dbLog.Error().Err(err).Msg("cannot prepare local storage file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("error opening local storage: %w", err)
	}
	// one connection: ":memory:" stays a single database and writers serialise
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		dbLog.Error().Err(err).Msg("local storage ping failed")
		return nil, fmt.Errorf("error pinging local storage: %w", err)
	}
	dbLog.Debug().Msg("local storage opened")

	return &DB{DB: conn, logger: log}, nil
}

func ensureParentDir(dsn string) error {
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating local storage dir: %w", err)
	}
	return nil
}
