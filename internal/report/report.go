// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package report renders scheduled plans for people and for Graphviz.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/barrier"
)

// Names resolves ids to display names.
type Names interface {
	PassName(rendergraph.NodeID) string
	ResourceName(rendergraph.ResourceID) string
}

// idNames names passes and resources by id.
type idNames struct{}

func (idNames) PassName(n rendergraph.NodeID) string         { return n.String() }
func (idNames) ResourceName(r rendergraph.ResourceID) string { return r.String() }

// Report pairs a plan with the graph it was computed from.
type Report struct {
	Title string
	Graph *rendergraph.Graph
	Plan  *rendergraph.Plan
	// Names is optional; ids are used when nil.
	Names Names
}

func (r *Report) names() Names {
	if r.Names == nil {
		return idNames{}
	}
	return r.Names
}

// transition returns the synthesized masks for b.
func (r *Report) transition(b rendergraph.Barrier) barrier.Transition {
	if b.Kind == rendergraph.BarrierBuffer {
		return barrier.ForBuffer()
	}
	tex, _ := r.Graph.Resources().Texture(b.Resource)
	return barrier.ForTexture(tex, b.OldLayout, b.NewLayout)
}

func (r *Report) describe(b rendergraph.Barrier) string {
	name := r.names().ResourceName(b.Resource)
	if b.Kind == rendergraph.BarrierTexture {
		return fmt.Sprintf("texture %s: %s -> %s", name, b.OldLayout, b.NewLayout)
	}
	return fmt.Sprintf("buffer %s: [%d, %d)", name, b.Offset, b.Offset+b.Size)
}

// WriteText writes one line per pass in execution order, each followed by
// its barriers and their stage/access masks.
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder
	names := r.names()

	fmt.Fprintf(&sb, "frame %s\n", r.Title)
	fmt.Fprintf(&sb, "order: %s, passes: %d, barriers: %d\n", r.Plan.Order, len(r.Plan.Steps), r.Plan.NumBarriers())
	for i, step := range r.Plan.Steps {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, names.PassName(step.Node))
		for _, b := range step.Barriers {
			fmt.Fprintf(&sb, "   barrier %s\n", r.describe(b))
			fmt.Fprintf(&sb, "     %s\n", r.transition(b))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteDOT writes the graph in Graphviz DOT syntax. Nodes are numbered by
// execution step, explicit edges are solid, and passes preceded by
// barriers list them in their label.
func (r *Report) WriteDOT(w io.Writer) error {
	var sb strings.Builder
	names := r.names()

	fmt.Fprintf(&sb, "digraph %s {\n", quote(r.Title))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	for i, step := range r.Plan.Steps {
		label := fmt.Sprintf("%d. %s", i+1, names.PassName(step.Node))
		for _, b := range step.Barriers {
			label += "\n" + r.describe(b)
		}
		attrs := ""
		if len(step.Barriers) > 0 {
			attrs = ", style=bold"
		}
		fmt.Fprintf(&sb, "  n%d [label=%s%s];\n", int(step.Node), quote(label), attrs)
	}
	for _, e := range r.Graph.Edges() {
		if !validNode(r.Graph, e.Before) || !validNode(r.Graph, e.After) {
			continue
		}
		fmt.Fprintf(&sb, "  n%d -> n%d;\n", int(e.Before), int(e.After))
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func validNode(g *rendergraph.Graph, n rendergraph.NodeID) bool {
	return n >= 0 && int(n) < g.NumPasses()
}

// quote returns s as a DOT string literal.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
