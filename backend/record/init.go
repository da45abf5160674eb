// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package record

import (
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend"
)

// BackendName is the name the recording device is registered under.
const BackendName = "record"

func init() {
	backend.Register(BackendName, func() (rendergraph.Device, error) {
		return New(), nil
	})
}
