// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend provides a registry of rendergraph devices.
//
// A render graph records barriers through a rendergraph.Device. The
// backend packages provide implementations:
//
//   - backend/record: an in-memory device producing inspectable command
//     streams. It needs no GPU and is registered as "record".
//   - backend/native: an adapter over a gogpu/wgpu HAL device. It wraps a
//     device the host already owns and is therefore not registered.
//
// # Backend Registration
//
// Backends register a Factory from init() and are selected by name:
//
//	import _ "github.com/gogpu/rendergraph/backend/record"
//
//	dev, err := backend.Get("record")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cbs, err := graph.Execute(dev)
//
// Use Available to list the registered names.
package backend
