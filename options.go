// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"fmt"
	"log/slog"
	"strings"
)

// ReadyOrder selects which pass the scheduler picks when several passes are
// ready at the same time.
type ReadyOrder uint8

const (
	// ReadyFIFO picks ready passes in the order they became ready. Passes that
	// are ready from the start are taken in registration order, so independent
	// passes run in the order they were added. This is the default.
	ReadyFIFO ReadyOrder = iota

	// ReadyLIFO picks the most recently readied pass first (stack discipline).
	// Independent passes run in reverse registration order.
	ReadyLIFO
)

// String returns the lowercase name of the order ("fifo" or "lifo").
func (o ReadyOrder) String() string {
	switch o {
	case ReadyFIFO:
		return "fifo"
	case ReadyLIFO:
		return "lifo"
	default:
		return fmt.Sprintf("ReadyOrder(%d)", uint8(o))
	}
}

// ParseReadyOrder parses "fifo" or "lifo" (case-insensitive).
func ParseReadyOrder(s string) (ReadyOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo":
		return ReadyFIFO, nil
	case "lifo":
		return ReadyLIFO, nil
	default:
		return ReadyFIFO, fmt.Errorf("rendergraph: unknown ready order %q", s)
	}
}

// Option configures a Graph during creation.
//
// Example:
//
//	g := rendergraph.New(
//	    rendergraph.WithReadyOrder(rendergraph.ReadyLIFO),
//	    rendergraph.WithLabel("frame"),
//	)
type Option func(*options)

// options holds optional configuration for Graph creation.
type options struct {
	order  ReadyOrder
	logger *slog.Logger
	label  string
}

// defaultOptions returns the default graph options.
func defaultOptions() options {
	return options{
		order: ReadyFIFO,
		label: "rendergraph",
	}
}

// WithReadyOrder sets the tie-break policy used by the scheduler.
func WithReadyOrder(o ReadyOrder) Option {
	return func(opts *options) {
		opts.order = o
	}
}

// WithLogger sets a logger for this graph only, overriding the package
// logger configured with SetLogger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// WithLabel sets the prefix of the labels given to barrier recording scopes.
// Barrier scopes are labelled "<label>/barriers/<pass>".
func WithLabel(label string) Option {
	return func(opts *options) {
		if label != "" {
			opts.label = label
		}
	}
}
