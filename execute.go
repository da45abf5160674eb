// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import "log/slog"

// Execute schedules the graph, resolves hazards and runs every pass once.
//
// The returned command buffers must be submitted to a single queue in the
// order given: for each pass in schedule order, an optional barrier command
// buffer followed by the pass's own command buffers.
//
// If the edges contain a cycle, Execute returns a *CycleError before any
// recording scope is opened or any pass runs. Any other failure (a backend
// error or a pass error) aborts the walk immediately; Execute then returns a
// nil slice and the command buffers recorded so far must not be submitted.
//
// A Graph can be executed only once; later calls return ErrAlreadyExecuted.
func (g *Graph) Execute(dev Device) ([]CommandBuffer, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if g.executed {
		return nil, ErrAlreadyExecuted
	}
	g.executed = true

	plan, err := g.Plan()
	if err != nil {
		return nil, err
	}

	view := g.Resources()
	var out []CommandBuffer
	for _, step := range plan.Steps {
		if len(step.Barriers) > 0 {
			cb, err := g.recordBarriers(dev, step)
			if err != nil {
				return nil, err
			}
			out = append(out, cb)
		}

		nd := g.nodes[step.Node]
		cmds, err := nd.pass.Execute(dev, view)
		if err != nil {
			return nil, &PassError{Node: step.Node, Label: nd.label, Err: err}
		}
		out = append(out, cmds...)
	}

	g.logger().Debug("rendergraph: executed",
		slog.Int("passes", len(plan.Steps)),
		slog.Int("barriers", plan.NumBarriers()),
		slog.Int("command_buffers", len(out)))
	return out, nil
}

// recordBarriers records every barrier of step into one standalone
// command buffer.
func (g *Graph) recordBarriers(dev Device, step Step) (CommandBuffer, error) {
	name := step.Label
	if name == "" {
		name = step.Node.String()
	}
	scope, err := dev.BeginRecording(g.opts.label + "/barriers/" + name)
	if err != nil {
		return nil, &BackendError{Op: "begin", Node: step.Node, Err: err}
	}

	for _, b := range step.Barriers {
		if err := g.recordBarrier(scope, b); err != nil {
			scope.Discard()
			return nil, &BackendError{Op: "barrier", Node: step.Node, Err: err}
		}
	}

	cb, err := scope.Finish()
	if err != nil {
		return nil, &BackendError{Op: "finish", Node: step.Node, Err: err}
	}
	return cb, nil
}

func (g *Graph) recordBarrier(scope RecordingScope, b Barrier) error {
	h := g.resources[b.Resource]
	switch b.Kind {
	case BarrierBuffer:
		buf, _ := h.Buffer()
		return scope.BarrierBuffer(buf, b.Offset, b.Size)
	case BarrierTexture:
		tex, _ := h.Texture()
		return scope.BarrierTexture(tex, b.OldLayout, b.NewLayout)
	}
	return nil
}
