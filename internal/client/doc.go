// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the credential storage, the HTTP client, the query cache, the
// services, the session, the router, the background workers and the
// terminal UI into a single process lifecycle.
package client
