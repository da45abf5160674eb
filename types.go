// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"fmt"
	"strings"
)

// NodeID identifies a pass registered with a Graph. Ids are assigned in
// registration order starting at 0 and are only meaningful for the Graph
// that issued them.
type NodeID int

// String returns "node<N>".
func (n NodeID) String() string { return fmt.Sprintf("node%d", int(n)) }

// ResourceID identifies a buffer or texture registered with a Graph. Ids are
// assigned in registration order starting at 0.
type ResourceID int

// String returns "res<N>".
func (r ResourceID) String() string { return fmt.Sprintf("res%d", int(r)) }

// Edge is an explicit ordering constraint: Before runs before After.
type Edge struct {
	Before NodeID
	After  NodeID
}

// Usage describes how a pass accesses a resource.
type Usage uint8

// Usage flags. UsageReadWrite is the union of the other two.
const (
	UsageRead      Usage = 1 << 0
	UsageWrite     Usage = 1 << 1
	UsageReadWrite       = UsageRead | UsageWrite
)

// IsRead reports whether the usage reads the resource.
func (u Usage) IsRead() bool { return u&UsageRead != 0 }

// IsWrite reports whether the usage may write the resource.
func (u Usage) IsWrite() bool { return u&UsageWrite != 0 }

// String returns "read", "write", "readwrite" or "none".
func (u Usage) String() string {
	switch u & UsageReadWrite {
	case UsageRead:
		return "read"
	case UsageWrite:
		return "write"
	case UsageReadWrite:
		return "readwrite"
	default:
		return "none"
	}
}

// ImageLayout is the abstract layout a texture is in. Backends translate
// layouts into their own representation (Vulkan image layouts, WebGPU
// texture usages).
type ImageLayout uint8

// Image layouts. LayoutUndefined is the zero value and is the layout of every
// texture before the graph first touches it.
const (
	LayoutUndefined ImageLayout = iota
	LayoutTransferDst
	LayoutTransferSrc
	LayoutShaderReadOnly
	LayoutColorAttachment
	LayoutDepthStencilAttachment
	LayoutGeneral
	LayoutPresentSrc
)

var layoutNames = [...]string{
	LayoutUndefined:              "undefined",
	LayoutTransferDst:            "transfer-dst",
	LayoutTransferSrc:            "transfer-src",
	LayoutShaderReadOnly:         "shader-read-only",
	LayoutColorAttachment:        "color-attachment",
	LayoutDepthStencilAttachment: "depth-stencil-attachment",
	LayoutGeneral:                "general",
	LayoutPresentSrc:             "present-src",
}

// String returns the kebab-case name of the layout.
func (l ImageLayout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("ImageLayout(%d)", uint8(l))
}

// ParseImageLayout parses a layout name as produced by String.
// Matching ignores case, and underscores are accepted in place of dashes.
func ParseImageLayout(s string) (ImageLayout, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range layoutNames {
		if name == key {
			return ImageLayout(i), nil
		}
	}
	return LayoutUndefined, fmt.Errorf("rendergraph: unknown image layout %q", s)
}

// TextureBarrierHint lets the graph insert texture layout transitions
// automatically. NeedLayout is the layout the pass requires on entry.
// AfterPassLayout is the layout the pass leaves the texture in; the zero
// value (LayoutUndefined) means the texture stays in NeedLayout.
//
// Hints only apply to texture resources and are ignored for buffers.
type TextureBarrierHint struct {
	NeedLayout      ImageLayout
	AfterPassLayout ImageLayout
}

// after returns the layout the pass leaves the texture in.
func (h TextureBarrierHint) after() ImageLayout {
	if h.AfterPassLayout == LayoutUndefined {
		return h.NeedLayout
	}
	return h.AfterPassLayout
}

// ResourceUse declares that a pass accesses a resource. Build values with
// Read, Write or ReadWrite and optionally attach a texture hint:
//
//	rendergraph.Write(gbuffer).WithTransition(rendergraph.LayoutColorAttachment, rendergraph.LayoutShaderReadOnly)
//	rendergraph.Read(gbuffer).WithLayout(rendergraph.LayoutShaderReadOnly)
type ResourceUse struct {
	Resource ResourceID
	Usage    Usage
	// Hint is nil when the pass handles texture layouts itself.
	Hint *TextureBarrierHint
}

// Read declares a read-only use of r.
func Read(r ResourceID) ResourceUse { return ResourceUse{Resource: r, Usage: UsageRead} }

// Write declares a write-only use of r.
func Write(r ResourceID) ResourceUse { return ResourceUse{Resource: r, Usage: UsageWrite} }

// ReadWrite declares a read-modify-write use of r.
func ReadWrite(r ResourceID) ResourceUse { return ResourceUse{Resource: r, Usage: UsageReadWrite} }

// WithLayout attaches a hint requiring the texture to be in need on entry
// and leaving it there.
func (u ResourceUse) WithLayout(need ImageLayout) ResourceUse {
	u.Hint = &TextureBarrierHint{NeedLayout: need}
	return u
}

// WithTransition attaches a hint requiring need on entry and recording that
// the pass leaves the texture in after.
func (u ResourceUse) WithTransition(need, after ImageLayout) ResourceUse {
	u.Hint = &TextureBarrierHint{NeedLayout: need, AfterPassLayout: after}
	return u
}
