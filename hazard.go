// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendergraph

import (
	"fmt"
	"log/slog"
)

// BarrierKind distinguishes buffer barriers from texture transitions.
type BarrierKind uint8

const (
	// BarrierBuffer makes earlier writes to a whole buffer visible.
	BarrierBuffer BarrierKind = iota + 1
	// BarrierTexture transitions a texture between layouts.
	BarrierTexture
)

// String returns "buffer" or "texture".
func (k BarrierKind) String() string {
	switch k {
	case BarrierBuffer:
		return "buffer"
	case BarrierTexture:
		return "texture"
	default:
		return fmt.Sprintf("BarrierKind(%d)", uint8(k))
	}
}

// Barrier is an abstract synchronization requirement recorded before a pass.
type Barrier struct {
	Kind     BarrierKind
	Resource ResourceID

	// Offset and Size cover the byte range of a buffer barrier. Buffer
	// hazards are tracked per resource, so the range is always the whole
	// buffer.
	Offset uint64
	Size   uint64

	// OldLayout and NewLayout describe a texture transition.
	OldLayout ImageLayout
	NewLayout ImageLayout
}

// String formats the barrier for logs and reports.
func (b Barrier) String() string {
	if b.Kind == BarrierTexture {
		return fmt.Sprintf("texture %s %s -> %s", b.Resource, b.OldLayout, b.NewLayout)
	}
	return fmt.Sprintf("buffer %s [%d, %d)", b.Resource, b.Offset, b.Offset+b.Size)
}

// hazardTracker walks the scheduled order and decides which barriers each
// pass needs. It remembers which resources an earlier pass wrote and the
// last known layout of every hinted texture.
type hazardTracker struct {
	resources []ResourceHandle
	written   map[ResourceID]bool
	layouts   map[ResourceID]ImageLayout
	log       *slog.Logger
}

func newHazardTracker(resources []ResourceHandle, log *slog.Logger) *hazardTracker {
	return &hazardTracker{
		resources: resources,
		written:   make(map[ResourceID]bool),
		layouts:   make(map[ResourceID]ImageLayout),
		log:       log,
	}
}

func (t *hazardTracker) handle(id ResourceID) (ResourceHandle, bool) {
	if id < 0 || int(id) >= len(t.resources) {
		return ResourceHandle{}, false
	}
	return t.resources[id], true
}

// layout returns the tracked layout of a texture; untouched textures are
// undefined.
func (t *hazardTracker) layout(id ResourceID) ImageLayout {
	if l, ok := t.layouts[id]; ok {
		return l
	}
	return LayoutUndefined
}

// barriersFor returns the barriers pass n needs before it runs, given the
// state left by every pass scheduled before it. Each resource gets at most
// one barrier per pass; for textures the first hinted use decides. Buffer
// barriers come first, then texture transitions.
func (t *hazardTracker) barriersFor(n NodeID, uses []ResourceUse) []Barrier {
	var buffers, textures []Barrier
	seen := make(map[ResourceID]bool, len(uses))
	for _, u := range uses {
		if !u.Usage.IsRead() && !u.Usage.IsWrite() {
			continue
		}
		if !t.written[u.Resource] || seen[u.Resource] {
			continue
		}
		h, ok := t.handle(u.Resource)
		if !ok {
			continue
		}
		switch h.Kind() {
		case ResourceKindBuffer:
			b, _ := h.Buffer()
			seen[u.Resource] = true
			buffers = append(buffers, Barrier{
				Kind:     BarrierBuffer,
				Resource: u.Resource,
				Size:     b.Size(),
			})
		case ResourceKindTexture:
			if u.Hint == nil {
				// The pass handles its own transition; ordering is
				// still enforced by the schedule.
				continue
			}
			seen[u.Resource] = true
			old := t.layout(u.Resource)
			if old == u.Hint.NeedLayout {
				continue
			}
			textures = append(textures, Barrier{
				Kind:      BarrierTexture,
				Resource:  u.Resource,
				OldLayout: old,
				NewLayout: u.Hint.NeedLayout,
			})
		}
	}
	barriers := append(buffers, textures...)
	for _, b := range barriers {
		t.log.Debug("rendergraph: barrier", slog.Int("node", int(n)), slog.String("barrier", b.String()))
	}
	return barriers
}

// advance records the effects of a pass once it has run: written resources
// join the written set, and each hinted texture moves to the layout given by
// its first hinted use, the one barriersFor transitioned it with. A writing
// use leaves the texture in AfterPassLayout, a reading use in NeedLayout.
func (t *hazardTracker) advance(uses []ResourceUse) {
	hinted := make(map[ResourceID]bool, len(uses))
	for _, u := range uses {
		if !u.Usage.IsRead() && !u.Usage.IsWrite() {
			continue
		}
		h, ok := t.handle(u.Resource)
		if !ok {
			continue
		}
		if u.Usage.IsWrite() {
			t.written[u.Resource] = true
		}
		if h.Kind() != ResourceKindTexture || u.Hint == nil || hinted[u.Resource] {
			continue
		}
		hinted[u.Resource] = true
		if u.Usage.IsWrite() {
			t.layouts[u.Resource] = u.Hint.after()
		} else {
			t.layouts[u.Resource] = u.Hint.NeedLayout
		}
	}
}
