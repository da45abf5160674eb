// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package record

import (
	"fmt"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/barrier"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdBufferBarrier  CommandType = iota // Whole-buffer memory barrier
	CmdTextureBarrier                    // Texture layout transition
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBufferBarrier:  "BufferBarrier",
	CmdTextureBarrier: "TextureBarrier",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all recorded commands.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BufferBarrierCommand makes writes to a byte range of a buffer visible.
type BufferBarrierCommand struct {
	// Resource is the label of the buffer.
	Resource string
	Offset   uint64
	Size     uint64
	// Transition holds the synthesized stage and access masks.
	Transition barrier.Transition
}

// Type implements Command.
func (BufferBarrierCommand) Type() CommandType { return CmdBufferBarrier }

func (c BufferBarrierCommand) String() string {
	return fmt.Sprintf("%s %s [%d, %d) %s", c.Type(), c.Resource, c.Offset, c.Offset+c.Size, c.Transition)
}

// TextureBarrierCommand transitions a texture between layouts.
type TextureBarrierCommand struct {
	// Resource is the label of the texture.
	Resource   string
	Old        rendergraph.ImageLayout
	New        rendergraph.ImageLayout
	Depth      bool
	Transition barrier.Transition
}

// Type implements Command.
func (TextureBarrierCommand) Type() CommandType { return CmdTextureBarrier }

func (c TextureBarrierCommand) String() string {
	return fmt.Sprintf("%s %s %s -> %s %s", c.Type(), c.Resource, c.Old, c.New, c.Transition)
}

// CommandBuffer is a finished recording scope.
// It is immutable once returned by Finish.
type CommandBuffer struct {
	label    string
	commands []Command
}

// Label implements rendergraph.CommandBuffer.
func (cb *CommandBuffer) Label() string { return cb.label }

// Commands returns the recorded commands in recording order.
func (cb *CommandBuffer) Commands() []Command {
	return append([]Command(nil), cb.commands...)
}

// Len returns the number of recorded commands.
func (cb *CommandBuffer) Len() int { return len(cb.commands) }
