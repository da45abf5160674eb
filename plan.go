// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "log/slog"

// Step is one scheduled pass together with the barriers that must be
// recorded before it.
type Step struct {
	Node     NodeID
	Label    string
	Barriers []Barrier
}

// Plan is the result of scheduling and hazard analysis, computed without a
// device. Execute records exactly the barriers a Plan lists, in Plan order.
type Plan struct {
	Order ReadyOrder
	Steps []Step
}

// Nodes returns the scheduled pass order.
func (p *Plan) Nodes() []NodeID {
	nodes := make([]NodeID, len(p.Steps))
	for i, s := range p.Steps {
		nodes[i] = s.Node
	}
	return nodes
}

// NumBarriers returns the total number of barriers across every step.
func (p *Plan) NumBarriers() int {
	n := 0
	for _, s := range p.Steps {
		n += len(s.Barriers)
	}
	return n
}

// Plan schedules the graph and walks the order once with the hazard
// tracker. It returns a *CycleError if the edges contain a cycle.
// Plan does not mark the graph as executed.
func (g *Graph) Plan() (*Plan, error) {
	order, err := g.Schedule()
	if err != nil {
		return nil, err
	}
	log := g.logger()
	log.Debug("rendergraph: scheduled",
		slog.Int("passes", len(order)),
		slog.Int("edges", len(g.edges)),
		slog.String("order", g.opts.order.String()))

	tracker := newHazardTracker(g.resources, log)
	plan := &Plan{Order: g.opts.order, Steps: make([]Step, 0, len(order))}
	for _, n := range order {
		nd := g.nodes[n]
		for _, u := range nd.uses {
			if !g.validResource(u.Resource) {
				log.Warn("rendergraph: ignoring usage of unknown resource",
					slog.Int("node", int(n)), slog.Int("resource", int(u.Resource)))
			}
		}
		plan.Steps = append(plan.Steps, Step{
			Node:     n,
			Label:    nd.label,
			Barriers: tracker.barriersFor(n, nd.uses),
		})
		tracker.advance(nd.uses)
	}
	return plan, nil
}
