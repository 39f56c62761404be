// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	applied, err := Migrate(context.Background(), nil)

	assert.ErrorIs(t, err, errNilDB)
	assert.Nil(t, applied)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: every statement goose issues fails
	_, err = Migrate(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_CreatesLocalStorageTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	applied, err := Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, applied)

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='local_storage'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "local_storage", name)

	applied, err = Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, applied)
}
