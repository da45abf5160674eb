// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic checking via errors.Is.
var (
	// ErrCycle is returned when the explicit edges do not form a DAG.
	ErrCycle = errors.New("rendergraph: graph has a cycle")

	// ErrBackend is returned when the device fails to open a recording
	// scope, record a barrier, or finish a scope.
	ErrBackend = errors.New("rendergraph: backend failure")

	// ErrPass is returned when a pass reports an error from Execute.
	ErrPass = errors.New("rendergraph: pass failed")

	// ErrAlreadyExecuted is returned by a second call to Execute.
	// A Graph describes exactly one frame.
	ErrAlreadyExecuted = errors.New("rendergraph: graph already executed")

	// ErrNilDevice is returned when Execute is called without a device.
	ErrNilDevice = errors.New("rendergraph: device is nil")

	// ErrInvalidNode is reported by Validate for edges naming node ids
	// this graph never issued.
	ErrInvalidNode = errors.New("rendergraph: invalid node id")

	// ErrInvalidResource is reported by Validate for usages naming resource
	// ids this graph never issued.
	ErrInvalidResource = errors.New("rendergraph: invalid resource id")
)

// CycleError reports the passes the scheduler could not order.
// Every pass on a cycle, and every pass downstream of one, is listed.
// Wraps ErrCycle for errors.Is compatibility.
type CycleError struct {
	// Nodes are the unscheduled passes in ascending id order.
	Nodes []NodeID
}

func (e *CycleError) Error() string {
	if e == nil || len(e.Nodes) == 0 {
		return ErrCycle.Error()
	}
	ids := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ids[i] = n.String()
	}
	return fmt.Sprintf("%s: unschedulable nodes [%s]", ErrCycle.Error(), strings.Join(ids, " "))
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// BackendError wraps a failure reported by the Device or one of its
// recording scopes. Both errors.Is(err, ErrBackend) and errors.Is(err, cause)
// hold for a BackendError.
type BackendError struct {
	// Op names the failing step: "begin", "barrier" or "finish".
	Op string
	// Node is the pass the barriers were being recorded for.
	Node NodeID
	// Err is the error returned by the backend, unchanged.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s barriers for %s: %v", ErrBackend.Error(), e.Op, e.Node, e.Err)
}

func (e *BackendError) Unwrap() []error { return []error{ErrBackend, e.Err} }

// PassError wraps an error returned by a pass's Execute.
type PassError struct {
	Node  NodeID
	Label string
	Err   error
}

func (e *PassError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("%s: %s (%s): %v", ErrPass.Error(), e.Node, e.Label, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrPass.Error(), e.Node, e.Err)
}

func (e *PassError) Unwrap() []error { return []error{ErrPass, e.Err} }
