// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package barrier

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
)

// LayoutUsage maps an image layout to the WebGPU texture usage that puts a
// texture in that state. WebGPU-style HAL backends transition textures by
// usage rather than by layout.
//
// LayoutUndefined and LayoutPresentSrc map to no usage: the former means
// the contents may be discarded, the latter is owned by the surface.
func LayoutUsage(l rendergraph.ImageLayout) gputypes.TextureUsage {
	switch l {
	case rendergraph.LayoutTransferDst:
		return gputypes.TextureUsageCopyDst
	case rendergraph.LayoutTransferSrc:
		return gputypes.TextureUsageCopySrc
	case rendergraph.LayoutShaderReadOnly:
		return gputypes.TextureUsageTextureBinding
	case rendergraph.LayoutColorAttachment, rendergraph.LayoutDepthStencilAttachment:
		return gputypes.TextureUsageRenderAttachment
	case rendergraph.LayoutGeneral:
		return gputypes.TextureUsageStorageBinding
	default:
		return 0
	}
}

// BufferHazardUsage returns the buffer usage pair of a whole-buffer hazard
// in WebGPU terms: storage writes made visible to storage, uniform and
// vertex reads. It is the usage form of ForBuffer.
func BufferHazardUsage() (oldUsage, newUsage gputypes.BufferUsage) {
	return gputypes.BufferUsageStorage,
		gputypes.BufferUsageStorage | gputypes.BufferUsageUniform | gputypes.BufferUsageVertex
}
