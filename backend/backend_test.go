// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/rendergraph"
)

type stubDevice struct{}

func (stubDevice) BeginRecording(string) (rendergraph.RecordingScope, error) {
	return nil, errors.New("stub")
}

func TestRegisterAndGet(t *testing.T) {
	Register("test-stub", func() (rendergraph.Device, error) { return stubDevice{}, nil })
	t.Cleanup(func() { Unregister("test-stub") })

	if !IsRegistered("test-stub") {
		t.Fatal("IsRegistered(test-stub) = false after Register")
	}
	dev, err := Get("test-stub")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, ok := dev.(stubDevice); !ok {
		t.Errorf("Get() returned %T, want stubDevice", dev)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("does-not-exist")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Get() error = %v, want ErrNotRegistered", err)
	}
}

func TestGetFactoryError(t *testing.T) {
	errNoGPU := errors.New("no adapter")
	Register("test-broken", func() (rendergraph.Device, error) { return nil, errNoGPU })
	Register("test-nil", func() (rendergraph.Device, error) { return nil, nil })
	t.Cleanup(func() {
		Unregister("test-broken")
		Unregister("test-nil")
	})

	_, err := Get("test-broken")
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, errNoGPU) {
		t.Errorf("Get(test-broken) error = %v, want ErrUnavailable wrapping the factory error", err)
	}
	if _, err := Get("test-nil"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get(test-nil) error = %v, want ErrUnavailable", err)
	}
}

func TestAvailableSorted(t *testing.T) {
	factory := func() (rendergraph.Device, error) { return stubDevice{}, nil }
	Register("test-b", factory)
	Register("test-a", factory)
	t.Cleanup(func() {
		Unregister("test-a")
		Unregister("test-b")
	})

	names := Available()
	if !slices.IsSorted(names) {
		t.Errorf("Available() = %v, not sorted", names)
	}
	if !slices.Contains(names, "test-a") || !slices.Contains(names, "test-b") {
		t.Errorf("Available() = %v, missing test backends", names)
	}

	Unregister("test-a")
	if IsRegistered("test-a") {
		t.Error("Unregister did not remove test-a")
	}
}
