// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const localStorageTable = "local_storage"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func getItemQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func setItemQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(localStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func removeItemQuery(key string) (string, []any, error) {
	return psql.
		Delete(localStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
