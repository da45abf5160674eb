// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package barrier

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// IsDepthFormat reports whether f has a depth aspect. Attachment transitions
// of depth textures use the fragment test stages instead of color output.
func IsDepthFormat(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8:
		return true
	default:
		return false
	}
}

// ForTexture is ForLayouts with depth derived from the texture format.
// A nil texture is treated as a color texture.
func ForTexture(t rendergraph.Texture, oldLayout, newLayout rendergraph.ImageLayout) Transition {
	depth := t != nil && IsDepthFormat(t.Format())
	return ForLayouts(oldLayout, newLayout, depth)
}
