// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "errors"

// Package errors for the HAL device adapter.
var (
	// ErrNilDevice is returned when creating a device without a HAL device.
	ErrNilDevice = errors.New("native: HAL device is nil")

	// ErrNoHALDevice is returned when a device provider does not expose a
	// HAL device through HalDevice() any.
	ErrNoHALDevice = errors.New("native: provider does not expose a HAL device")

	// ErrForeignResource is returned when a barrier names a resource that was
	// not created with NewBuffer or NewTexture.
	ErrForeignResource = errors.New("native: resource is not a native buffer or texture")

	// ErrScopeClosed is returned when a scope is used after Finish or Discard.
	ErrScopeClosed = errors.New("native: recording scope already closed")
)
