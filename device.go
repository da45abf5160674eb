// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

// Device is the capability the graph needs from the rendering backend.
// It is passed explicitly to Execute and to every pass; the graph keeps no
// reference to it after Execute returns.
//
// See backend/record for an in-memory implementation and backend/native for
// one backed by gogpu/wgpu HAL.
type Device interface {
	// BeginRecording opens a fresh command recording scope.
	BeginRecording(label string) (RecordingScope, error)
}

// RecordingScope records commands into a single command buffer.
// A scope is used by one goroutine and ends with exactly one call to Finish
// or Discard.
type RecordingScope interface {
	// BarrierBuffer makes shader writes to [offset, offset+size) visible to
	// later shader reads.
	BarrierBuffer(b Buffer, offset, size uint64) error

	// BarrierTexture transitions t from oldLayout to newLayout.
	BarrierTexture(t Texture, oldLayout, newLayout ImageLayout) error

	// Finish closes the scope and returns the recorded command buffer.
	Finish() (CommandBuffer, error)

	// Discard abandons the scope without producing a command buffer.
	Discard()
}

// CommandBuffer is a finished recording ready for queue submission.
type CommandBuffer interface {
	// Label returns the debug label given to the recording scope.
	Label() string
}
