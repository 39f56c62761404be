// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	s := NewSQLiteStorage(&DB{DB: db, logger: l}, l).(*sqliteStorage)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, mock
}

func TestSQLiteStorage_GetItem(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM local_storage WHERE key = ?")).
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("a.b.c"))

	value, err := s.GetItem(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_GetItem_NotFound(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM local_storage").
		WithArgs("token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := s.GetItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSQLiteStorage_GetItem_QueryError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM local_storage").
		WithArgs("token").
		WillReturnError(errors.New("database is locked"))

	_, err := s.GetItem(context.Background(), "token")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteStorage_SetItem_Upserts(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO local_storage (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs("token", "a.b.c", s.now()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SetItem(context.Background(), "token", "a.b.c"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_SetItem_Error(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO local_storage").
		WillReturnError(errors.New("readonly database"))

	err := s.SetItem(context.Background(), "token", "a.b.c")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteStorage_RemoveItem(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM local_storage WHERE key = ?")).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
