// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the development backend's HTTP transport and drains
// it gracefully when the caller's context ends.
package server
