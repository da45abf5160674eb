// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package barrier

import "strings"

// PipelineStage is a bitmask of pipeline stages. Bit values match
// VkPipelineStageFlagBits so a Vulkan backend can convert with a cast.
type PipelineStage uint32

// Pipeline stages.
const (
	StageTopOfPipe             PipelineStage = 0x00000001
	StageDrawIndirect          PipelineStage = 0x00000002
	StageVertexInput           PipelineStage = 0x00000004
	StageVertexShader          PipelineStage = 0x00000008
	StageFragmentShader        PipelineStage = 0x00000080
	StageEarlyFragmentTests    PipelineStage = 0x00000100
	StageLateFragmentTests     PipelineStage = 0x00000200
	StageColorAttachmentOutput PipelineStage = 0x00000400
	StageComputeShader         PipelineStage = 0x00000800
	StageTransfer              PipelineStage = 0x00001000
	StageBottomOfPipe          PipelineStage = 0x00002000
	StageHost                  PipelineStage = 0x00004000
	StageAllGraphics           PipelineStage = 0x00008000
	StageAllCommands           PipelineStage = 0x00010000
)

// StageShaders covers every shader stage that can sample or load a resource.
const StageShaders = StageVertexShader | StageFragmentShader | StageComputeShader

// StageFragmentTests covers both depth/stencil test stages.
const StageFragmentTests = StageEarlyFragmentTests | StageLateFragmentTests

var stageNames = []struct {
	bit  PipelineStage
	name string
}{
	{StageTopOfPipe, "TOP_OF_PIPE"},
	{StageDrawIndirect, "DRAW_INDIRECT"},
	{StageVertexInput, "VERTEX_INPUT"},
	{StageVertexShader, "VERTEX_SHADER"},
	{StageFragmentShader, "FRAGMENT_SHADER"},
	{StageEarlyFragmentTests, "EARLY_FRAGMENT_TESTS"},
	{StageLateFragmentTests, "LATE_FRAGMENT_TESTS"},
	{StageColorAttachmentOutput, "COLOR_ATTACHMENT_OUTPUT"},
	{StageComputeShader, "COMPUTE_SHADER"},
	{StageTransfer, "TRANSFER"},
	{StageBottomOfPipe, "BOTTOM_OF_PIPE"},
	{StageHost, "HOST"},
	{StageAllGraphics, "ALL_GRAPHICS"},
	{StageAllCommands, "ALL_COMMANDS"},
}

// String returns the set flags joined by "|", or "NONE".
func (s PipelineStage) String() string {
	if s == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range stageNames {
		if s&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Access is a bitmask of memory access types. Bit values match
// VkAccessFlagBits.
type Access uint32

// Access types.
const (
	AccessNone                        Access = 0
	AccessIndirectCommandRead         Access = 0x00000001
	AccessIndexRead                   Access = 0x00000002
	AccessVertexAttributeRead         Access = 0x00000004
	AccessUniformRead                 Access = 0x00000008
	AccessInputAttachmentRead         Access = 0x00000010
	AccessShaderRead                  Access = 0x00000020
	AccessShaderWrite                 Access = 0x00000040
	AccessColorAttachmentRead         Access = 0x00000080
	AccessColorAttachmentWrite        Access = 0x00000100
	AccessDepthStencilAttachmentRead  Access = 0x00000200
	AccessDepthStencilAttachmentWrite Access = 0x00000400
	AccessTransferRead                Access = 0x00000800
	AccessTransferWrite               Access = 0x00001000
	AccessHostRead                    Access = 0x00002000
	AccessHostWrite                   Access = 0x00004000
	AccessMemoryRead                  Access = 0x00008000
	AccessMemoryWrite                 Access = 0x00010000
)

var accessNames = []struct {
	bit  Access
	name string
}{
	{AccessIndirectCommandRead, "INDIRECT_COMMAND_READ"},
	{AccessIndexRead, "INDEX_READ"},
	{AccessVertexAttributeRead, "VERTEX_ATTRIBUTE_READ"},
	{AccessUniformRead, "UNIFORM_READ"},
	{AccessInputAttachmentRead, "INPUT_ATTACHMENT_READ"},
	{AccessShaderRead, "SHADER_READ"},
	{AccessShaderWrite, "SHADER_WRITE"},
	{AccessColorAttachmentRead, "COLOR_ATTACHMENT_READ"},
	{AccessColorAttachmentWrite, "COLOR_ATTACHMENT_WRITE"},
	{AccessDepthStencilAttachmentRead, "DEPTH_STENCIL_ATTACHMENT_READ"},
	{AccessDepthStencilAttachmentWrite, "DEPTH_STENCIL_ATTACHMENT_WRITE"},
	{AccessTransferRead, "TRANSFER_READ"},
	{AccessTransferWrite, "TRANSFER_WRITE"},
	{AccessHostRead, "HOST_READ"},
	{AccessHostWrite, "HOST_WRITE"},
	{AccessMemoryRead, "MEMORY_READ"},
	{AccessMemoryWrite, "MEMORY_WRITE"},
}

// String returns the set flags joined by "|", or "NONE".
func (a Access) String() string {
	if a == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range accessNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
