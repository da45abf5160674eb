// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package record

import (
	"errors"
	"sync"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/barrier"
)

// ErrScopeClosed is returned when a scope is used after Finish or Discard.
var ErrScopeClosed = errors.New("record: recording scope already closed")

// Device is an in-memory rendergraph.Device. Every recording scope produces
// a *CommandBuffer whose commands can be inspected after the fact.
//
// The zero value is ready to use. Device is safe for concurrent use; each
// scope it returns is not.
type Device struct {
	// FailBegin, if non-nil, is returned by BeginRecording once
	// FailBeginAfter scopes have been opened.
	FailBegin      error
	FailBeginAfter int

	// FailFinish, if non-nil, is returned by every Finish.
	FailFinish error

	mu        sync.Mutex
	opened    int
	recorded  []*CommandBuffer
	discarded []string
}

// New creates a recording device.
func New() *Device {
	return &Device{}
}

// BeginRecording implements rendergraph.Device.
func (d *Device) BeginRecording(label string) (rendergraph.RecordingScope, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.FailBegin != nil && d.opened >= d.FailBeginAfter {
		return nil, d.FailBegin
	}
	d.opened++
	return &scope{dev: d, label: label}, nil
}

// Recorded returns every finished command buffer in finish order.
func (d *Device) Recorded() []*CommandBuffer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*CommandBuffer(nil), d.recorded...)
}

// Discarded returns the labels of discarded scopes in discard order.
func (d *Device) Discarded() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.discarded...)
}

// Opened returns the number of scopes opened so far.
func (d *Device) Opened() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

// scope records commands for one CommandBuffer.
type scope struct {
	dev      *Device
	label    string
	commands []Command
	closed   bool
}

func (s *scope) BarrierBuffer(b rendergraph.Buffer, offset, size uint64) error {
	if s.closed {
		return ErrScopeClosed
	}
	s.commands = append(s.commands, BufferBarrierCommand{
		Resource:   resourceLabel(b),
		Offset:     offset,
		Size:       size,
		Transition: barrier.ForBuffer(),
	})
	return nil
}

func (s *scope) BarrierTexture(t rendergraph.Texture, oldLayout, newLayout rendergraph.ImageLayout) error {
	if s.closed {
		return ErrScopeClosed
	}
	depth := t != nil && barrier.IsDepthFormat(t.Format())
	s.commands = append(s.commands, TextureBarrierCommand{
		Resource:   resourceLabel(t),
		Old:        oldLayout,
		New:        newLayout,
		Depth:      depth,
		Transition: barrier.ForLayouts(oldLayout, newLayout, depth),
	})
	return nil
}

func (s *scope) Finish() (rendergraph.CommandBuffer, error) {
	if s.closed {
		return nil, ErrScopeClosed
	}
	s.closed = true
	if err := s.dev.FailFinish; err != nil {
		return nil, err
	}

	cb := &CommandBuffer{label: s.label, commands: s.commands}
	s.dev.mu.Lock()
	s.dev.recorded = append(s.dev.recorded, cb)
	s.dev.mu.Unlock()
	return cb, nil
}

func (s *scope) Discard() {
	if s.closed {
		return
	}
	s.closed = true
	s.commands = nil

	s.dev.mu.Lock()
	s.dev.discarded = append(s.dev.discarded, s.label)
	s.dev.mu.Unlock()
}
