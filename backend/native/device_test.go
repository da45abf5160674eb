// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/wgpu/hal"
)

// mockHALBuffer is a test double for hal.Buffer. The embedded interface
// supplies the methods the adapter never calls.
type mockHALBuffer struct {
	hal.Buffer
}

func (b *mockHALBuffer) Destroy()              {}
func (b *mockHALBuffer) NativeHandle() uintptr { return 0 }

// mockHALTexture is a test double for hal.Texture.
type mockHALTexture struct {
	hal.Texture
}

func (t *mockHALTexture) Destroy()              {}
func (t *mockHALTexture) NativeHandle() uintptr { return 0 }

// mockEncoder records the barriers it receives.
type mockEncoder struct {
	label     string
	began     bool
	ended     bool
	discarded bool

	buffers  []hal.BufferBarrier
	textures []hal.TextureBarrier

	beginErr error
	endErr   error
}

func (e *mockEncoder) BeginEncoding(label string) error {
	if e.beginErr != nil {
		return e.beginErr
	}
	e.began = true
	e.label = label
	return nil
}

func (e *mockEncoder) TransitionBuffers(b []hal.BufferBarrier)   { e.buffers = append(e.buffers, b...) }
func (e *mockEncoder) TransitionTextures(t []hal.TextureBarrier) { e.textures = append(e.textures, t...) }

func (e *mockEncoder) EndEncoding() (hal.CommandBuffer, error) {
	if e.endErr != nil {
		return nil, e.endErr
	}
	e.ended = true
	return nil, nil
}

func (e *mockEncoder) DiscardEncoding() { e.discarded = true }

// mockDevice returns a Device whose encoders are appended to *encoders.
func mockDevice(encoders *[]*mockEncoder, template mockEncoder) *Device {
	return &Device{
		newEncoder: func(string) (encoder, error) {
			enc := template
			*encoders = append(*encoders, &enc)
			return &enc, nil
		},
	}
}

func TestNewDeviceNil(t *testing.T) {
	if _, err := NewDevice(nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewDevice(nil) error = %v, want ErrNilDevice", err)
	}
}

// mockProvider is a gpucontext.DeviceProvider without a HAL accessor.
type mockProvider struct {
	gpucontext.DeviceProvider
	hal any
}

type mockHALProvider struct {
	mockProvider
}

func (m *mockHALProvider) HalDevice() any { return m.hal }

func TestNewDeviceFromProviderRejects(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
	}{
		{"no hal accessor", &mockProvider{}},
		{"nil hal device", &mockHALProvider{}},
		{"wrong hal type", &mockHALProvider{mockProvider{hal: "not a device"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDeviceFromProvider(tt.provider); !errors.Is(err, ErrNoHALDevice) {
				t.Errorf("NewDeviceFromProvider() error = %v, want ErrNoHALDevice", err)
			}
		})
	}
}

func TestExecuteRecordsHALBarriers(t *testing.T) {
	var encoders []*mockEncoder
	dev := mockDevice(&encoders, mockEncoder{})

	rawBuf, rawTex := &mockHALBuffer{}, &mockHALTexture{}
	g := rendergraph.New()
	lights := g.AddBuffer(NewBuffer(rawBuf, 1024))
	gbuf := g.AddTexture(NewTexture(rawTex, gputypes.TextureFormatRGBA8Unorm))
	noop := rendergraph.PassFunc(func(rendergraph.Device, rendergraph.ResourceView) ([]rendergraph.CommandBuffer, error) {
		return nil, nil
	})
	cull := g.AddPass(rendergraph.Named("cull", noop), rendergraph.Write(lights))
	geometry := g.AddPass(rendergraph.Named("geometry", noop),
		rendergraph.Write(gbuf).WithLayout(rendergraph.LayoutColorAttachment))
	lighting := g.AddPass(rendergraph.Named("lighting", noop),
		rendergraph.Read(lights),
		rendergraph.Read(gbuf).WithLayout(rendergraph.LayoutShaderReadOnly))
	g.AddEdge(cull, lighting)
	g.AddEdge(geometry, lighting)

	cbs, err := g.Execute(dev)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(cbs) != 1 || cbs[0].Label() != "rendergraph/barriers/lighting" {
		t.Fatalf("Execute() returned %d buffers, want the lighting barrier buffer", len(cbs))
	}
	if _, ok := cbs[0].(*CommandBuffer); !ok {
		t.Errorf("command buffer is %T, want *CommandBuffer", cbs[0])
	}

	if len(encoders) != 1 {
		t.Fatalf("created %d encoders, want 1", len(encoders))
	}
	enc := encoders[0]
	if !enc.began || !enc.ended || enc.discarded {
		t.Errorf("encoder state began=%v ended=%v discarded=%v", enc.began, enc.ended, enc.discarded)
	}
	if enc.label != "rendergraph/barriers/lighting" {
		t.Errorf("encoder label = %q", enc.label)
	}

	if len(enc.buffers) != 1 {
		t.Fatalf("recorded %d buffer barriers, want 1", len(enc.buffers))
	}
	bb := enc.buffers[0]
	if bb.Buffer != hal.Buffer(rawBuf) {
		t.Error("buffer barrier does not reference the wrapped HAL buffer")
	}
	if bb.Usage.OldUsage != gputypes.BufferUsageStorage {
		t.Errorf("buffer OldUsage = %v, want Storage", bb.Usage.OldUsage)
	}

	if len(enc.textures) != 1 {
		t.Fatalf("recorded %d texture barriers, want 1", len(enc.textures))
	}
	tb := enc.textures[0]
	if tb.Texture != hal.Texture(rawTex) {
		t.Error("texture barrier does not reference the wrapped HAL texture")
	}
	if tb.Usage.OldUsage != gputypes.TextureUsageRenderAttachment || tb.Usage.NewUsage != gputypes.TextureUsageTextureBinding {
		t.Errorf("texture usage = %v -> %v, want RenderAttachment -> TextureBinding", tb.Usage.OldUsage, tb.Usage.NewUsage)
	}
}

func TestSameUsageTransitionIsSkipped(t *testing.T) {
	var encoders []*mockEncoder
	dev := mockDevice(&encoders, mockEncoder{})
	s, err := dev.BeginRecording("x")
	if err != nil {
		t.Fatalf("BeginRecording() error = %v", err)
	}
	tex := NewTexture(&mockHALTexture{}, gputypes.TextureFormatDepth24PlusStencil8)
	// Both layouts map to RenderAttachment.
	if err := s.BarrierTexture(tex, rendergraph.LayoutColorAttachment, rendergraph.LayoutDepthStencilAttachment); err != nil {
		t.Fatalf("BarrierTexture() error = %v", err)
	}
	if len(encoders[0].textures) != 0 {
		t.Errorf("recorded %d texture barriers, want 0", len(encoders[0].textures))
	}
}

type foreignBuffer struct{}

func (foreignBuffer) Size() uint64 { return 4 }

func TestForeignResourceDiscardsEncoder(t *testing.T) {
	var encoders []*mockEncoder
	dev := mockDevice(&encoders, mockEncoder{})

	g := rendergraph.New()
	x := g.AddBuffer(foreignBuffer{})
	noop := rendergraph.PassFunc(func(rendergraph.Device, rendergraph.ResourceView) ([]rendergraph.CommandBuffer, error) {
		return nil, nil
	})
	g.AddPass(noop, rendergraph.Write(x))
	g.AddPass(noop, rendergraph.Read(x))

	_, err := g.Execute(dev)
	if !errors.Is(err, ErrForeignResource) || !errors.Is(err, rendergraph.ErrBackend) {
		t.Fatalf("Execute() error = %v, want ErrForeignResource backend error", err)
	}
	if !encoders[0].discarded {
		t.Error("encoder was not discarded after a failed barrier")
	}
}

func TestEncoderErrors(t *testing.T) {
	errHAL := errors.New("hal failure")

	t.Run("create", func(t *testing.T) {
		dev := &Device{newEncoder: func(string) (encoder, error) { return nil, errHAL }}
		if _, err := dev.BeginRecording("x"); !errors.Is(err, errHAL) {
			t.Errorf("BeginRecording() error = %v, want %v", err, errHAL)
		}
	})

	t.Run("begin", func(t *testing.T) {
		var encoders []*mockEncoder
		dev := mockDevice(&encoders, mockEncoder{beginErr: errHAL})
		if _, err := dev.BeginRecording("x"); !errors.Is(err, errHAL) {
			t.Errorf("BeginRecording() error = %v, want %v", err, errHAL)
		}
	})

	t.Run("end", func(t *testing.T) {
		var encoders []*mockEncoder
		dev := mockDevice(&encoders, mockEncoder{endErr: errHAL})
		s, err := dev.BeginRecording("x")
		if err != nil {
			t.Fatalf("BeginRecording() error = %v", err)
		}
		if _, err := s.Finish(); !errors.Is(err, errHAL) {
			t.Errorf("Finish() error = %v, want %v", err, errHAL)
		}
		if _, err := s.Finish(); !errors.Is(err, ErrScopeClosed) {
			t.Errorf("second Finish() error = %v, want ErrScopeClosed", err)
		}
	})
}

func TestDiscardClosesScope(t *testing.T) {
	var encoders []*mockEncoder
	dev := mockDevice(&encoders, mockEncoder{})
	s, err := dev.BeginRecording("x")
	if err != nil {
		t.Fatalf("BeginRecording() error = %v", err)
	}
	s.Discard()
	s.Discard()
	if !encoders[0].discarded || encoders[0].ended {
		t.Errorf("encoder state discarded=%v ended=%v, want discarded only", encoders[0].discarded, encoders[0].ended)
	}

	buf := NewBuffer(&mockHALBuffer{}, 16)
	if err := s.BarrierBuffer(buf, 0, 16); !errors.Is(err, ErrScopeClosed) {
		t.Errorf("BarrierBuffer() after Discard error = %v, want ErrScopeClosed", err)
	}
	tex := NewTexture(&mockHALTexture{}, gputypes.TextureFormatRGBA8Unorm)
	if err := s.BarrierTexture(tex, rendergraph.LayoutUndefined, rendergraph.LayoutGeneral); !errors.Is(err, ErrScopeClosed) {
		t.Errorf("BarrierTexture() after Discard error = %v, want ErrScopeClosed", err)
	}
	if _, err := s.Finish(); !errors.Is(err, ErrScopeClosed) {
		t.Errorf("Finish() after Discard error = %v, want ErrScopeClosed", err)
	}
	if len(encoders[0].buffers) != 0 || len(encoders[0].textures) != 0 {
		t.Error("closed scope recorded barriers")
	}
}

func TestResourceWrappers(t *testing.T) {
	raw := &mockHALBuffer{}
	b := NewBuffer(raw, 64)
	if b.Size() != 64 || b.Raw() != hal.Buffer(raw) {
		t.Errorf("NewBuffer() = size %d raw %v", b.Size(), b.Raw())
	}
	tex := NewTexture(&mockHALTexture{}, gputypes.TextureFormatR8Unorm)
	if tex.Format() != gputypes.TextureFormatR8Unorm {
		t.Errorf("Format() = %v, want R8Unorm", tex.Format())
	}
}
