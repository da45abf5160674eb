// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package record

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Buffer is a CPU-side stand-in for a GPU buffer.
type Buffer struct {
	label string
	size  uint64
}

// NewBuffer creates a buffer descriptor of size bytes.
func NewBuffer(label string, size uint64) *Buffer {
	return &Buffer{label: label, size: size}
}

// Label returns the debug label.
func (b *Buffer) Label() string { return b.label }

// Size implements rendergraph.Buffer.
func (b *Buffer) Size() uint64 { return b.size }

// Texture is a CPU-side stand-in for a GPU texture.
type Texture struct {
	label  string
	format gputypes.TextureFormat
}

// NewTexture creates a texture descriptor with the given format.
func NewTexture(label string, format gputypes.TextureFormat) *Texture {
	return &Texture{label: label, format: format}
}

// Label returns the debug label.
func (t *Texture) Label() string { return t.label }

// Format implements rendergraph.Texture.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// resourceLabel names a resource in recorded commands. Foreign resources
// without a Label method are named by their Go type.
func resourceLabel(r any) string {
	if l, ok := r.(interface{ Label() string }); ok {
		return l.Label()
	}
	return fmt.Sprintf("%T", r)
}
