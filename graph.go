// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"errors"
	"fmt"
	"log/slog"
)

// node is a registered pass with its declared resource usages.
type node struct {
	pass  Pass
	label string
	uses  []ResourceUse
}

// Graph is the render graph of a single frame.
//
// A Graph is created empty, populated with resources, passes and edges, then
// executed exactly once and discarded. Registration never touches the GPU.
//
// Graph is NOT safe for concurrent use.
type Graph struct {
	opts options

	nodes     []node
	edges     []Edge
	resources []ResourceHandle

	executed bool
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph{opts: o}
}

// logger returns the graph logger, falling back to the package logger.
func (g *Graph) logger() *slog.Logger {
	if g.opts.logger != nil {
		return g.opts.logger
	}
	return Logger()
}

// AddResource registers a buffer or texture and returns its id.
func (g *Graph) AddResource(h ResourceHandle) ResourceID {
	id := ResourceID(len(g.resources))
	g.resources = append(g.resources, h)
	return id
}

// AddBuffer registers a buffer. It is shorthand for AddResource(BufferHandle(b)).
func (g *Graph) AddBuffer(b Buffer) ResourceID {
	return g.AddResource(BufferHandle(b))
}

// AddTexture registers a texture. It is shorthand for AddResource(TextureHandle(t)).
func (g *Graph) AddTexture(t Texture) ResourceID {
	return g.AddResource(TextureHandle(t))
}

// AddPass registers a pass together with every resource it uses and returns
// its id. Usages cannot be changed after registration; the slice and hints
// are copied.
func (g *Graph) AddPass(p Pass, uses ...ResourceUse) NodeID {
	id := NodeID(len(g.nodes))
	owned := make([]ResourceUse, len(uses))
	for i, u := range uses {
		if u.Hint != nil {
			h := *u.Hint
			u.Hint = &h
		}
		owned[i] = u
	}
	g.nodes = append(g.nodes, node{pass: p, label: passLabel(p), uses: owned})
	return id
}

// AddEdge declares that before must run before after, independently of any
// resource usage. Edges naming ids this graph never issued are ignored by
// the scheduler; use Validate to detect them.
func (g *Graph) AddEdge(before, after NodeID) {
	g.edges = append(g.edges, Edge{Before: before, After: after})
}

// NumPasses returns the number of registered passes.
func (g *Graph) NumPasses() int { return len(g.nodes) }

// NumResources returns the number of registered resources.
func (g *Graph) NumResources() int { return len(g.resources) }

// Edges returns a copy of the registered edges in registration order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// PassLabel returns the label of pass n, or "" if it has none.
func (g *Graph) PassLabel(n NodeID) string {
	if !g.validNode(n) {
		return ""
	}
	return g.nodes[n].label
}

// Uses returns a copy of the usages declared for pass n.
func (g *Graph) Uses(n NodeID) []ResourceUse {
	if !g.validNode(n) {
		return nil
	}
	return append([]ResourceUse(nil), g.nodes[n].uses...)
}

// Resources returns a read-only view of the registered resources.
func (g *Graph) Resources() ResourceView {
	return ResourceView{handles: g.resources}
}

func (g *Graph) validNode(n NodeID) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

func (g *Graph) validResource(r ResourceID) bool {
	return r >= 0 && int(r) < len(g.resources)
}

// Validate reports edges and usages that reference ids this graph never
// issued, and a cycle in the edges if there is one. Execute tolerates
// invalid ids (it ignores them); Validate is for callers that want to treat
// them as errors. All problems are joined into one error.
func (g *Graph) Validate() error {
	var errs []error
	for i, e := range g.edges {
		if !g.validNode(e.Before) || !g.validNode(e.After) {
			errs = append(errs, fmt.Errorf("%w: edge %d (%s -> %s)", ErrInvalidNode, i, e.Before, e.After))
		}
	}
	for n, nd := range g.nodes {
		for _, u := range nd.uses {
			if !g.validResource(u.Resource) {
				errs = append(errs, fmt.Errorf("%w: %s uses %s", ErrInvalidResource, NodeID(n), u.Resource))
			}
		}
	}
	if _, err := g.Schedule(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
