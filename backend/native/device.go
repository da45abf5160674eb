// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/barrier"
	"github.com/gogpu/wgpu/hal"
)

// encoder is the subset of hal.CommandEncoder used to record barriers.
type encoder interface {
	BeginEncoding(label string) error
	TransitionBuffers(barriers []hal.BufferBarrier)
	TransitionTextures(barriers []hal.TextureBarrier)
	EndEncoding() (hal.CommandBuffer, error)
	DiscardEncoding()
}

// Device adapts a hal.Device to rendergraph.Device. Every recording scope
// is a fresh hal.CommandEncoder; buffers and textures must be wrapped with
// NewBuffer and NewTexture before they are registered with the graph.
//
// Device does not own the HAL device and never destroys it. Command buffers
// returned by Execute are *CommandBuffer values; submit their Raw buffers to
// the queue in order and free them with hal.Device.FreeCommandBuffer.
type Device struct {
	newEncoder func(label string) (encoder, error)
}

// NewDevice wraps a HAL device.
func NewDevice(device hal.Device) (*Device, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	return &Device{
		newEncoder: func(label string) (encoder, error) {
			enc, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
			if err != nil {
				return nil, err
			}
			return enc, nil
		},
	}, nil
}

// NewDeviceFromProvider wraps the HAL device of a host application, for
// example a gogpu app. The provider must implement HalDevice() any
// returning a hal.Device.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice returned %T", ErrNoHALDevice, hp.HalDevice())
	}
	rendergraph.Logger().Debug("native: using shared HAL device")
	return NewDevice(device)
}

// BeginRecording implements rendergraph.Device.
func (d *Device) BeginRecording(label string) (rendergraph.RecordingScope, error) {
	enc, err := d.newEncoder(label)
	if err != nil {
		return nil, fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("native: begin encoding: %w", err)
	}
	return &scope{enc: enc, label: label}, nil
}

// scope records barriers into one HAL command encoder.
type scope struct {
	enc    encoder
	label  string
	closed bool
}

// BarrierBuffer records a whole-buffer storage-write to shader-read
// transition. HAL buffer barriers have no range; offset and size are only
// logged.
func (s *scope) BarrierBuffer(b rendergraph.Buffer, offset, size uint64) error {
	if s.closed {
		return ErrScopeClosed
	}
	nb, ok := b.(*Buffer)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignResource, b)
	}
	oldUsage, newUsage := barrier.BufferHazardUsage()
	s.enc.TransitionBuffers([]hal.BufferBarrier{{
		Buffer: nb.raw,
		Usage: hal.BufferUsageTransition{
			OldUsage: oldUsage,
			NewUsage: newUsage,
		},
	}})
	rendergraph.Logger().Debug("native: buffer barrier",
		slog.String("scope", s.label), slog.Uint64("offset", offset), slog.Uint64("size", size))
	return nil
}

// BarrierTexture records a usage transition equivalent to the layout change.
// Layout changes that map to the same HAL usage record nothing.
func (s *scope) BarrierTexture(t rendergraph.Texture, oldLayout, newLayout rendergraph.ImageLayout) error {
	if s.closed {
		return ErrScopeClosed
	}
	nt, ok := t.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignResource, t)
	}
	oldUsage, newUsage := barrier.LayoutUsage(oldLayout), barrier.LayoutUsage(newLayout)
	if oldUsage == newUsage {
		return nil
	}
	s.enc.TransitionTextures([]hal.TextureBarrier{{
		Texture: nt.raw,
		Usage: hal.TextureUsageTransition{
			OldUsage: oldUsage,
			NewUsage: newUsage,
		},
	}})
	rendergraph.Logger().Debug("native: texture barrier",
		slog.String("scope", s.label),
		slog.String("old", oldLayout.String()), slog.String("new", newLayout.String()))
	return nil
}

func (s *scope) Finish() (rendergraph.CommandBuffer, error) {
	if s.closed {
		return nil, ErrScopeClosed
	}
	s.closed = true
	raw, err := s.enc.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("native: end encoding: %w", err)
	}
	return &CommandBuffer{label: s.label, raw: raw}, nil
}

func (s *scope) Discard() {
	if s.closed {
		return
	}
	s.closed = true
	s.enc.DiscardEncoding()
}
