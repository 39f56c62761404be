// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrItemNotFound is returned by [KeyValueStorage.GetItem] when nothing
	// is stored under the requested key.
	ErrItemNotFound = errors.New("item not found")

	// ErrBuildingSQLQuery is returned when constructing a SQL statement
	// fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement against the local
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
