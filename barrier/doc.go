// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package barrier translates abstract hazards into concrete barrier masks.
//
// The render graph decides that a barrier is needed (a buffer hazard or a
// texture layout change); backends use this package to decide what the
// barrier must synchronize:
//
//	t := barrier.ForTexture(tex, rendergraph.LayoutColorAttachment, rendergraph.LayoutShaderReadOnly)
//	// t.Src = COLOR_ATTACHMENT_OUTPUT/COLOR_ATTACHMENT_WRITE
//	// t.Dst = VERTEX_SHADER|FRAGMENT_SHADER|COMPUTE_SHADER/SHADER_READ
//
// Stage and access bits use Vulkan values. For WebGPU-style HALs that
// transition by usage, LayoutUsage and BufferHazardUsage give the
// equivalent gputypes usages.
//
// Unknown transitions map to FullPipeline, a barrier over all commands and
// all memory.
package barrier
