// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framefile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeferred(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "deferred.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "deferred", f.Name)
	require.Len(t, f.Resources, 4)
	require.Len(t, f.Passes, 3)
	require.Len(t, f.Edges, 2)
	assert.Equal(t, Use{Resource: "backbuffer", Usage: "write", Need: "color-attachment", After: "present-src"}, f.Passes[2].Uses[3])
}

func TestBuildAndExecute(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "deferred.yaml"))
	require.NoError(t, err)

	fr := Build(f)
	assert.Equal(t, 3, fr.Graph.NumPasses())
	assert.Equal(t, 4, fr.Graph.NumResources())

	lighting, ok := fr.Pass("lighting")
	require.True(t, ok)
	assert.Equal(t, "lighting", fr.PassName(lighting))
	albedo, ok := fr.Resource("albedo")
	require.True(t, ok)
	assert.Equal(t, "albedo", fr.ResourceName(albedo))

	tex, ok := fr.Graph.Resources().Texture(albedo)
	require.True(t, ok)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, tex.Format())

	dev := record.New()
	cbs, err := fr.Graph.Execute(dev)
	require.NoError(t, err)

	var labels []string
	for _, cb := range cbs {
		labels = append(labels, cb.Label())
	}
	assert.Equal(t, []string{"cull", "gbuffer", "deferred/barriers/lighting", "lighting"}, labels)

	barriers := dev.Recorded()[2].Commands()
	require.Len(t, barriers, 3)
	assert.Equal(t, record.CmdBufferBarrier, barriers[0].Type())
	depth := barriers[1].(record.TextureBarrierCommand)
	assert.Equal(t, "depth", depth.Resource)
	assert.True(t, depth.Depth)
	assert.Equal(t, rendergraph.LayoutShaderReadOnly, depth.New)
}

func TestBuildAppliesOptions(t *testing.T) {
	f, err := Parse(strings.NewReader(`
passes:
  - name: a
  - name: b
`))
	require.NoError(t, err)

	plan, err := Build(f, rendergraph.WithReadyOrder(rendergraph.ReadyLIFO)).Graph.Plan()
	require.NoError(t, err)
	assert.Equal(t, []rendergraph.NodeID{1, 0}, plan.Nodes())
}

func TestNamesOutOfRange(t *testing.T) {
	fr := Build(&File{})
	assert.Equal(t, "node3", fr.PassName(3))
	assert.Equal(t, "res1", fr.ResourceName(1))
	_, ok := fr.Pass("missing")
	assert.False(t, ok)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", ``, "empty document"},
		{"unknown field", "passes:\n  - name: a\n    color: red\n", "field color not found"},
		{"duplicate resource", "resources:\n  - {name: x, kind: buffer, size: 4}\n  - {name: x, kind: buffer, size: 4}\n", `duplicate resource "x"`},
		{"duplicate pass", "passes:\n  - name: a\n  - name: a\n", `duplicate pass "a"`},
		{"unnamed resource", "resources:\n  - {kind: buffer, size: 4}\n", "resource 0 has no name"},
		{"unknown kind", "resources:\n  - {name: x, kind: image}\n", `unknown kind "image"`},
		{"buffer without size", "resources:\n  - {name: x, kind: buffer}\n", `buffer "x" has no size`},
		{"texture with size", "resources:\n  - {name: t, kind: texture, size: 4}\n", `texture "t" has a size`},
		{"unknown format", "resources:\n  - {name: t, kind: texture, format: rgb9e5}\n", `unknown texture format "rgb9e5"`},
		{"unknown resource", "passes:\n  - name: a\n    uses:\n      - {resource: x, usage: read}\n", `unknown resource "x"`},
		{"unknown usage", "resources:\n  - {name: x, kind: buffer, size: 4}\npasses:\n  - name: a\n    uses:\n      - {resource: x, usage: sample}\n", `unknown usage "sample"`},
		{"hint on buffer", "resources:\n  - {name: x, kind: buffer, size: 4}\npasses:\n  - name: a\n    uses:\n      - {resource: x, usage: read, need: general}\n", `layout hint on buffer "x"`},
		{"after without need", "resources:\n  - {name: t, kind: texture}\npasses:\n  - name: a\n    uses:\n      - {resource: t, usage: write, after: general}\n", "after without need"},
		{"unknown layout", "resources:\n  - {name: t, kind: texture}\npasses:\n  - name: a\n    uses:\n      - {resource: t, usage: write, need: optimal}\n", `unknown image layout "optimal"`},
		{"after undefined", "resources:\n  - {name: t, kind: texture}\npasses:\n  - name: a\n    uses:\n      - {resource: t, usage: write, need: general, after: undefined}\n", `"t" cannot be left undefined`},
		{"unknown edge pass", "passes:\n  - name: a\nedges:\n  - {before: a, after: b}\n", `unknown pass "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateJoinsProblems(t *testing.T) {
	f := &File{
		Resources: []Resource{{Name: "x", Kind: "buffer"}},
		Edges:     []Edge{{Before: "a", After: "b"}},
	}
	err := f.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	msg := err.Error()
	assert.Contains(t, msg, `buffer "x" has no size`)
	assert.Contains(t, msg, `unknown pass "a"`)
	assert.Contains(t, msg, `unknown pass "b"`)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureFormatRGBA8Unorm, f)

	f, err = ParseFormat("Depth32Float")
	require.NoError(t, err)
	assert.Equal(t, gputypes.TextureFormatDepth32Float, f)
}
