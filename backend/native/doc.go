// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native records render graph barriers with gogpu/wgpu HAL.
//
// The host owns the HAL device, queue and resources. It wraps them for the
// graph, executes the frame and submits the result:
//
//	dev, err := native.NewDevice(halDevice)
//	g := rendergraph.New()
//	gbuf := g.AddTexture(native.NewTexture(halTex, gputypes.TextureFormatRGBA8Unorm))
//	// ... add passes ...
//	cbs, err := g.Execute(dev)
//	raw := make([]hal.CommandBuffer, len(cbs))
//	for i, cb := range cbs {
//		raw[i] = cb.(*native.CommandBuffer).Raw()
//	}
//	err = queue.Submit(raw, fence, value)
//
// HAL backends transition resources by WebGPU usage, so layouts are mapped
// with barrier.LayoutUsage. Buffer hazards become a storage to
// storage|uniform|vertex usage transition.
package native
