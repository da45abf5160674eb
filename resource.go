// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "github.com/gogpu/gputypes"

// Buffer is a GPU buffer owned by the caller. The graph only references it;
// it never creates, mutates or destroys the underlying object.
type Buffer interface {
	// Size returns the buffer size in bytes.
	Size() uint64
}

// Texture is a GPU texture owned by the caller.
type Texture interface {
	// Format returns the texture format. Backends use it to tell depth
	// textures from color textures when synthesizing barriers.
	Format() gputypes.TextureFormat
}

// ResourceKind tags the variant held by a ResourceHandle.
type ResourceKind uint8

const (
	// ResourceKindInvalid is the kind of the zero ResourceHandle.
	ResourceKindInvalid ResourceKind = iota
	ResourceKindBuffer
	ResourceKindTexture
)

// String returns "buffer", "texture" or "invalid".
func (k ResourceKind) String() string {
	switch k {
	case ResourceKindBuffer:
		return "buffer"
	case ResourceKindTexture:
		return "texture"
	default:
		return "invalid"
	}
}

// ResourceHandle holds either a Buffer or a Texture. Construct it with
// BufferHandle or TextureHandle and switch on Kind to consume it:
//
//	switch h.Kind() {
//	case rendergraph.ResourceKindBuffer:
//	    b, _ := h.Buffer()
//	case rendergraph.ResourceKindTexture:
//	    t, _ := h.Texture()
//	}
type ResourceHandle struct {
	kind    ResourceKind
	buffer  Buffer
	texture Texture
}

// BufferHandle wraps a buffer.
func BufferHandle(b Buffer) ResourceHandle {
	return ResourceHandle{kind: ResourceKindBuffer, buffer: b}
}

// TextureHandle wraps a texture.
func TextureHandle(t Texture) ResourceHandle {
	return ResourceHandle{kind: ResourceKindTexture, texture: t}
}

// Kind returns which variant the handle holds.
func (h ResourceHandle) Kind() ResourceKind { return h.kind }

// Buffer returns the buffer and true if the handle holds a buffer.
func (h ResourceHandle) Buffer() (Buffer, bool) {
	return h.buffer, h.kind == ResourceKindBuffer
}

// Texture returns the texture and true if the handle holds a texture.
func (h ResourceHandle) Texture() (Texture, bool) {
	return h.texture, h.kind == ResourceKindTexture
}

// ResourceView is the read-only view of a graph's resources handed to each
// pass. The zero value is an empty view.
type ResourceView struct {
	handles []ResourceHandle
}

// Len returns the number of registered resources.
func (v ResourceView) Len() int { return len(v.handles) }

// Get returns the handle registered under id.
func (v ResourceView) Get(id ResourceID) (ResourceHandle, bool) {
	if id < 0 || int(id) >= len(v.handles) {
		return ResourceHandle{}, false
	}
	return v.handles[id], true
}

// Buffer returns the buffer registered under id. It reports false if id is
// unknown or refers to a texture.
func (v ResourceView) Buffer(id ResourceID) (Buffer, bool) {
	h, ok := v.Get(id)
	if !ok {
		return nil, false
	}
	return h.Buffer()
}

// Texture returns the texture registered under id. It reports false if id
// is unknown or refers to a buffer.
func (v ResourceView) Texture(id ResourceID) (Texture, bool) {
	h, ok := v.Get(id)
	if !ok {
		return nil, false
	}
	return h.Texture()
}
