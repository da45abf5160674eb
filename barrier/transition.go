// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package barrier

import (
	"fmt"

	"github.com/gogpu/rendergraph"
)

// Scope is one side of a barrier: the stages and memory accesses that must
// complete (source) or must wait (destination).
type Scope struct {
	Stages PipelineStage
	Access Access
}

// String formats the scope as "STAGES/ACCESS".
func (s Scope) String() string {
	return s.Stages.String() + "/" + s.Access.String()
}

// Transition is a synthesized barrier: work in Src must finish and its
// writes become visible before work in Dst starts.
type Transition struct {
	Src Scope
	Dst Scope
}

// String formats the transition as "src => dst".
func (t Transition) String() string {
	return fmt.Sprintf("%s => %s", t.Src, t.Dst)
}

// FullPipeline is the conservative barrier used for every transition the
// table does not know: all commands, all memory.
var FullPipeline = Transition{
	Src: Scope{Stages: StageAllCommands, Access: AccessMemoryRead | AccessMemoryWrite},
	Dst: Scope{Stages: StageAllCommands, Access: AccessMemoryRead | AccessMemoryWrite},
}

var (
	topOfPipe  = Scope{Stages: StageTopOfPipe, Access: AccessNone}
	transferW  = Scope{Stages: StageTransfer, Access: AccessTransferWrite}
	transferR  = Scope{Stages: StageTransfer, Access: AccessTransferRead}
	shaderRead = Scope{Stages: StageShaders, Access: AccessShaderRead}
	computeW   = Scope{Stages: StageComputeShader, Access: AccessShaderWrite}
	presentDst = Scope{Stages: StageBottomOfPipe, Access: AccessMemoryRead}
)

// attachment returns the attachment-output scope for color or depth.
func attachment(depth bool) Scope {
	if depth {
		return Scope{Stages: StageFragmentTests, Access: AccessDepthStencilAttachmentWrite}
	}
	return Scope{Stages: StageColorAttachmentOutput, Access: AccessColorAttachmentWrite}
}

func isAttachment(l rendergraph.ImageLayout) bool {
	return l == rendergraph.LayoutColorAttachment || l == rendergraph.LayoutDepthStencilAttachment
}

// ForLayouts returns the stage and access masks for transitioning a texture
// from oldLayout to newLayout. depth selects depth/stencil attachment stages
// and accesses for attachment layouts; use IsDepthFormat to derive it from
// the texture format.
//
// Transitions the table does not list degrade to FullPipeline rather than
// under-synchronizing.
func ForLayouts(oldLayout, newLayout rendergraph.ImageLayout, depth bool) Transition {
	att := attachment(depth)

	switch {
	case (oldLayout == rendergraph.LayoutUndefined || oldLayout == rendergraph.LayoutPresentSrc) && isAttachment(newLayout):
		return Transition{Src: topOfPipe, Dst: att}
	case isAttachment(oldLayout) && newLayout == rendergraph.LayoutPresentSrc:
		return Transition{Src: att, Dst: presentDst}
	case isAttachment(oldLayout) && newLayout == rendergraph.LayoutShaderReadOnly:
		return Transition{Src: att, Dst: shaderRead}
	case oldLayout == rendergraph.LayoutShaderReadOnly && isAttachment(newLayout):
		return Transition{Src: shaderRead, Dst: att}
	case oldLayout == rendergraph.LayoutGeneral && isAttachment(newLayout):
		return Transition{Src: computeW, Dst: att}
	case isAttachment(oldLayout) && newLayout == rendergraph.LayoutGeneral:
		return Transition{Src: att, Dst: computeW}
	}

	type pair struct{ from, to rendergraph.ImageLayout }
	switch (pair{oldLayout, newLayout}) {
	case pair{rendergraph.LayoutUndefined, rendergraph.LayoutTransferDst}:
		return Transition{Src: topOfPipe, Dst: transferW}
	case pair{rendergraph.LayoutUndefined, rendergraph.LayoutGeneral}:
		return Transition{Src: topOfPipe, Dst: computeW}
	case pair{rendergraph.LayoutTransferDst, rendergraph.LayoutShaderReadOnly}:
		return Transition{Src: transferW, Dst: shaderRead}
	case pair{rendergraph.LayoutTransferDst, rendergraph.LayoutTransferSrc}:
		return Transition{Src: transferW, Dst: transferR}
	case pair{rendergraph.LayoutTransferSrc, rendergraph.LayoutShaderReadOnly}:
		return Transition{Src: transferR, Dst: shaderRead}
	case pair{rendergraph.LayoutTransferSrc, rendergraph.LayoutTransferDst}:
		return Transition{Src: transferR, Dst: transferW}
	case pair{rendergraph.LayoutGeneral, rendergraph.LayoutShaderReadOnly}:
		return Transition{Src: computeW, Dst: shaderRead}
	case pair{rendergraph.LayoutShaderReadOnly, rendergraph.LayoutGeneral}:
		return Transition{Src: shaderRead, Dst: computeW}
	}
	return FullPipeline
}

// ForBuffer returns the masks used for a whole-buffer hazard: compute
// shader writes made visible to vertex, fragment and compute shader reads.
func ForBuffer() Transition {
	return Transition{Src: computeW, Dst: shaderRead}
}
