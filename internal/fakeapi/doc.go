// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeapi is an in-memory implementation of the task-manager
// backend: accounts with bcrypt-hashed passwords, HS256 bearer tokens and
// per-user tasks. It backs the development server and the end-to-end tests
// of the client; nothing is persisted.
package fakeapi
