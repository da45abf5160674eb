// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

// Pass is one unit of GPU work scheduled by a Graph.
//
// Execute records the pass's commands using dev and returns the resulting
// command buffers in submission order. Resources are looked up by the ids
// the pass was registered with. Barriers for declared usages have already
// been recorded when Execute is called.
type Pass interface {
	Execute(dev Device, res ResourceView) ([]CommandBuffer, error)
}

// PassFunc adapts an ordinary function to the Pass interface.
type PassFunc func(dev Device, res ResourceView) ([]CommandBuffer, error)

// Execute calls f(dev, res).
func (f PassFunc) Execute(dev Device, res ResourceView) ([]CommandBuffer, error) {
	return f(dev, res)
}

// Labeler is implemented by passes that carry a human-readable name.
// The label is used in logs, errors, plans and barrier scope labels.
type Labeler interface {
	Label() string
}

// namedPass attaches a label to a pass.
type namedPass struct {
	Pass
	label string
}

func (p namedPass) Label() string { return p.label }

// Named returns p with the given label.
func Named(label string, p Pass) Pass {
	return namedPass{Pass: p, label: label}
}

// passLabel returns the pass label or "" when the pass has none.
func passLabel(p Pass) string {
	if l, ok := p.(Labeler); ok {
		return l.Label()
	}
	return ""
}
