// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package framefile

import (
	"github.com/gogpu/rendergraph"
	"github.com/gogpu/rendergraph/backend/record"
)

// Frame is a graph built from a File together with the names of its
// passes and resources.
type Frame struct {
	Name  string
	Graph *rendergraph.Graph

	passNames     []string
	resourceNames []string
	passIDs       map[string]rendergraph.NodeID
	resourceIDs   map[string]rendergraph.ResourceID
}

// Build registers the file's resources, passes and edges with a new graph.
// Resources are record.Buffer and record.Texture descriptors. Each pass
// opens one recording scope labelled with the pass name and finishes it,
// standing in for the pass's own work.
//
// Build assumes f has been validated.
func Build(f *File, opts ...rendergraph.Option) *Frame {
	fr := &Frame{
		Name:        f.Name,
		Graph:       rendergraph.New(append([]rendergraph.Option{rendergraph.WithLabel(f.Name)}, opts...)...),
		passIDs:     make(map[string]rendergraph.NodeID, len(f.Passes)),
		resourceIDs: make(map[string]rendergraph.ResourceID, len(f.Resources)),
	}

	for _, r := range f.Resources {
		var id rendergraph.ResourceID
		if r.Kind == "buffer" {
			id = fr.Graph.AddBuffer(record.NewBuffer(r.Name, r.Size))
		} else {
			format, _ := ParseFormat(r.Format)
			id = fr.Graph.AddTexture(record.NewTexture(r.Name, format))
		}
		fr.resourceIDs[r.Name] = id
		fr.resourceNames = append(fr.resourceNames, r.Name)
	}

	for _, p := range f.Passes {
		uses := make([]rendergraph.ResourceUse, 0, len(p.Uses))
		for _, u := range p.Uses {
			usage, _ := parseUsage(u.Usage)
			use := rendergraph.ResourceUse{Resource: fr.resourceIDs[u.Resource], Usage: usage}
			if u.Need != "" {
				need, _ := rendergraph.ParseImageLayout(u.Need)
				after := rendergraph.LayoutUndefined
				if u.After != "" {
					after, _ = rendergraph.ParseImageLayout(u.After)
				}
				use = use.WithTransition(need, after)
			}
			uses = append(uses, use)
		}
		fr.passIDs[p.Name] = fr.Graph.AddPass(scopePass(p.Name), uses...)
		fr.passNames = append(fr.passNames, p.Name)
	}

	for _, e := range f.Edges {
		fr.Graph.AddEdge(fr.passIDs[e.Before], fr.passIDs[e.After])
	}
	return fr
}

// scopePass returns a pass that records one empty scope labelled name.
func scopePass(name string) rendergraph.Pass {
	return rendergraph.Named(name, rendergraph.PassFunc(
		func(dev rendergraph.Device, _ rendergraph.ResourceView) ([]rendergraph.CommandBuffer, error) {
			s, err := dev.BeginRecording(name)
			if err != nil {
				return nil, err
			}
			cb, err := s.Finish()
			if err != nil {
				return nil, err
			}
			return []rendergraph.CommandBuffer{cb}, nil
		}))
}

// PassName returns the name of pass n.
func (fr *Frame) PassName(n rendergraph.NodeID) string {
	if n < 0 || int(n) >= len(fr.passNames) {
		return n.String()
	}
	return fr.passNames[n]
}

// ResourceName returns the name of resource r.
func (fr *Frame) ResourceName(r rendergraph.ResourceID) string {
	if r < 0 || int(r) >= len(fr.resourceNames) {
		return r.String()
	}
	return fr.resourceNames[r]
}

// Pass returns the id of the named pass.
func (fr *Frame) Pass(name string) (rendergraph.NodeID, bool) {
	id, ok := fr.passIDs[name]
	return id, ok
}

// Resource returns the id of the named resource.
func (fr *Frame) Resource(name string) (rendergraph.ResourceID, bool) {
	id, ok := fr.resourceIDs[name]
	return id, ok
}
