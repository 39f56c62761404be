// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoAddress is returned by NewServer when the listen address is empty.
var errNoAddress = errors.New("http listen address is not configured")
