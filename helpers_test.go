// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// fakeBuffer is a named buffer for tests.
type fakeBuffer struct {
	name string
	size uint64
}

func (b *fakeBuffer) Size() uint64 { return b.size }

// fakeTexture is a named texture for tests.
type fakeTexture struct {
	name   string
	format gputypes.TextureFormat
}

func (t *fakeTexture) Format() gputypes.TextureFormat { return t.format }

type fakeCommandBuffer struct{ label string }

func (c fakeCommandBuffer) Label() string { return c.label }

// fakeDevice logs every call into events. Passes created by recordingPass
// log into the same slice, so tests can assert the full interleaving.
type fakeDevice struct {
	events []string

	beginErr   error
	barrierErr error
	finishErr  error
}

func (d *fakeDevice) BeginRecording(label string) (RecordingScope, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	d.events = append(d.events, "begin "+label)
	return &fakeScope{dev: d, label: label}, nil
}

type fakeScope struct {
	dev   *fakeDevice
	label string
}

func (s *fakeScope) BarrierBuffer(b Buffer, offset, size uint64) error {
	if s.dev.barrierErr != nil {
		return s.dev.barrierErr
	}
	s.dev.events = append(s.dev.events, fmt.Sprintf("barrier buffer %s %d %d", b.(*fakeBuffer).name, offset, size))
	return nil
}

func (s *fakeScope) BarrierTexture(t Texture, oldLayout, newLayout ImageLayout) error {
	if s.dev.barrierErr != nil {
		return s.dev.barrierErr
	}
	s.dev.events = append(s.dev.events, fmt.Sprintf("barrier texture %s %s %s", t.(*fakeTexture).name, oldLayout, newLayout))
	return nil
}

func (s *fakeScope) Finish() (CommandBuffer, error) {
	if s.dev.finishErr != nil {
		return nil, s.dev.finishErr
	}
	s.dev.events = append(s.dev.events, "finish "+s.label)
	return fakeCommandBuffer{label: s.label}, nil
}

func (s *fakeScope) Discard() {
	s.dev.events = append(s.dev.events, "discard "+s.label)
}

// recordingPass returns a labelled pass that logs "pass <name>" and
// returns one command buffer labelled name.
func recordingPass(name string) Pass {
	return Named(name, PassFunc(func(dev Device, _ ResourceView) ([]CommandBuffer, error) {
		if d, ok := dev.(*fakeDevice); ok {
			d.events = append(d.events, "pass "+name)
		}
		return []CommandBuffer{fakeCommandBuffer{label: name}}, nil
	}))
}

var errPassBoom = errors.New("boom")

func failingPass(name string) Pass {
	return Named(name, PassFunc(func(Device, ResourceView) ([]CommandBuffer, error) {
		return nil, errPassBoom
	}))
}

func labels(cbs []CommandBuffer) []string {
	out := make([]string, len(cbs))
	for i, cb := range cbs {
		out[i] = cb.Label()
	}
	return out
}

// indexOf returns the position of n in order, or -1.
func indexOf(order []NodeID, n NodeID) int {
	for i, m := range order {
		if m == n {
			return i
		}
	}
	return -1
}
