// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Buffer wraps a hal.Buffer owned by the host so it can be registered with a
// render graph. The wrapper never destroys the underlying buffer.
type Buffer struct {
	raw  hal.Buffer
	size uint64
}

// NewBuffer wraps raw. size must be the size raw was created with.
func NewBuffer(raw hal.Buffer, size uint64) *Buffer {
	return &Buffer{raw: raw, size: size}
}

// Size implements rendergraph.Buffer.
func (b *Buffer) Size() uint64 { return b.size }

// Raw returns the wrapped HAL buffer.
func (b *Buffer) Raw() hal.Buffer { return b.raw }

// Texture wraps a hal.Texture owned by the host.
type Texture struct {
	raw    hal.Texture
	format gputypes.TextureFormat
}

// NewTexture wraps raw. format must be the format raw was created with.
func NewTexture(raw hal.Texture, format gputypes.TextureFormat) *Texture {
	return &Texture{raw: raw, format: format}
}

// Format implements rendergraph.Texture.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// Raw returns the wrapped HAL texture.
func (t *Texture) Raw() hal.Texture { return t.raw }

// CommandBuffer is a finished HAL command buffer ready for queue submission.
type CommandBuffer struct {
	label string
	raw   hal.CommandBuffer
}

// Label implements rendergraph.CommandBuffer.
func (cb *CommandBuffer) Label() string { return cb.label }

// Raw returns the HAL command buffer to pass to hal.Queue.Submit.
func (cb *CommandBuffer) Raw() hal.CommandBuffer { return cb.raw }
