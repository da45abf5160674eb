// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "log/slog"

// readySet holds passes whose predecessors have all been scheduled.
type readySet struct {
	order ReadyOrder
	items []NodeID
	head  int
}

func (s *readySet) push(n NodeID) { s.items = append(s.items, n) }

func (s *readySet) empty() bool { return s.head == len(s.items) }

func (s *readySet) pop() NodeID {
	if s.order == ReadyLIFO {
		last := len(s.items) - 1
		n := s.items[last]
		s.items = s.items[:last]
		return n
	}
	n := s.items[s.head]
	s.head++
	return n
}

// Schedule computes the execution order of all passes from the explicit
// edges (Kahn's algorithm). Ties between simultaneously ready passes are
// broken by the graph's ReadyOrder. If the edges contain a cycle, Schedule
// returns a *CycleError listing the passes that could not be ordered.
//
// Schedule is pure: it can be called any number of times and always
// returns the same order for the same graph.
func (g *Graph) Schedule() ([]NodeID, error) {
	n := len(g.nodes)
	inDegree := make([]int, n)
	successors := make([][]NodeID, n)
	for _, e := range g.edges {
		if !g.validNode(e.Before) || !g.validNode(e.After) {
			g.logger().Warn("rendergraph: ignoring edge with unknown node",
				slog.Int("before", int(e.Before)), slog.Int("after", int(e.After)))
			continue
		}
		inDegree[e.After]++
		successors[e.Before] = append(successors[e.Before], e.After)
	}

	ready := readySet{order: g.opts.order}
	for i := range n {
		if inDegree[i] == 0 {
			ready.push(NodeID(i))
		}
	}

	order := make([]NodeID, 0, n)
	for !ready.empty() {
		u := ready.pop()
		order = append(order, u)
		for _, v := range successors[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				ready.push(v)
			}
		}
	}

	if len(order) != n {
		var stuck []NodeID
		for i := range n {
			if inDegree[i] > 0 {
				stuck = append(stuck, NodeID(i))
			}
		}
		return nil, &CycleError{Nodes: stuck}
	}
	return order, nil
}
