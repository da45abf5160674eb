// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package record provides an in-memory rendergraph device.
//
// Barriers are captured as typed command structs instead of being sent to a
// GPU, so a frame can be executed headless and its command stream inspected:
//
//	dev := record.New()
//	cbs, err := graph.Execute(dev)
//	for _, cb := range dev.Recorded() {
//		for _, cmd := range cb.Commands() {
//			fmt.Println(cb.Label(), cmd)
//		}
//	}
//
// Each barrier command carries the stage and access masks synthesized by
// package barrier. Importing the package registers it with package backend
// under the name "record".
package record
