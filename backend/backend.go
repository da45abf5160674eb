// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import "errors"

// Common backend errors.
var (
	// ErrNotRegistered is returned by Get for an unknown backend name.
	ErrNotRegistered = errors.New("backend: not registered")

	// ErrUnavailable is returned when a registered factory cannot create a
	// device, for example because no GPU is present.
	ErrUnavailable = errors.New("backend: not available")
)
