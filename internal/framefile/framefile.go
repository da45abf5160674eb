// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framefile loads YAML frame descriptions and builds render graphs
// from them. Frame files name resources and passes instead of using ids:
//
//	resources:
//	  - {name: albedo, kind: texture, format: rgba8unorm}
//	  - {name: lights, kind: buffer, size: 4096}
//	passes:
//	  - name: gbuffer
//	    uses:
//	      - {resource: albedo, usage: write, need: color-attachment, after: shader-read-only}
//	  - name: lighting
//	    uses:
//	      - {resource: albedo, usage: read, need: shader-read-only}
//	      - {resource: lights, usage: read}
//	edges:
//	  - {before: gbuffer, after: lighting}
package framefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rendergraph"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation problem.
var ErrInvalid = errors.New("framefile: invalid frame")

// File is a parsed frame description.
type File struct {
	// Name labels the frame in reports. Defaults to the file name.
	Name      string     `yaml:"name,omitempty"`
	Resources []Resource `yaml:"resources"`
	Passes    []Pass     `yaml:"passes"`
	Edges     []Edge     `yaml:"edges,omitempty"`
}

// Resource declares a buffer or texture.
type Resource struct {
	Name string `yaml:"name"`
	// Kind is "buffer" or "texture".
	Kind string `yaml:"kind"`
	// Size is the buffer size in bytes. Buffers only.
	Size uint64 `yaml:"size,omitempty"`
	// Format is the texture format name, e.g. "rgba8unorm". Textures only;
	// defaults to rgba8unorm.
	Format string `yaml:"format,omitempty"`
}

// Pass declares a pass and the resources it uses.
type Pass struct {
	Name string `yaml:"name"`
	Uses []Use  `yaml:"uses,omitempty"`
}

// Use declares one resource usage. Need and After are layout names and
// form a texture barrier hint; After requires Need.
type Use struct {
	Resource string `yaml:"resource"`
	// Usage is "read", "write" or "readwrite".
	Usage string `yaml:"usage"`
	Need  string `yaml:"need,omitempty"`
	// After is the layout a writing pass leaves the texture in; omitted
	// means it stays in Need. A pass cannot leave a texture undefined, so
	// "undefined" is rejected.
	After string `yaml:"after,omitempty"`
}

// Edge is an explicit ordering constraint between two named passes.
type Edge struct {
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// Load reads and validates a frame file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("framefile: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = baseName(path)
	}
	return f, nil
}

// Parse decodes and validates a frame description. Unknown fields are
// rejected.
func Parse(r io.Reader) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("framefile: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks names, references, usages, layouts and formats.
// All problems are joined into one error; each wraps ErrInvalid.
// Cycles are not detected here; they surface when the graph is scheduled.
func (f *File) Validate() error {
	var errs []error
	problem := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	kinds := make(map[string]string, len(f.Resources))
	for i, r := range f.Resources {
		switch {
		case r.Name == "":
			problem("resource %d has no name", i)
			continue
		case kinds[r.Name] != "":
			problem("duplicate resource %q", r.Name)
			continue
		}
		switch r.Kind {
		case "buffer":
			if r.Size == 0 {
				problem("buffer %q has no size", r.Name)
			}
			if r.Format != "" {
				problem("buffer %q has a format", r.Name)
			}
		case "texture":
			if r.Size != 0 {
				problem("texture %q has a size", r.Name)
			}
			if _, err := ParseFormat(r.Format); err != nil {
				problem("texture %q: %v", r.Name, err)
			}
		default:
			problem("resource %q has unknown kind %q", r.Name, r.Kind)
		}
		kinds[r.Name] = r.Kind
	}

	passes := make(map[string]bool, len(f.Passes))
	for i, p := range f.Passes {
		switch {
		case p.Name == "":
			problem("pass %d has no name", i)
		case passes[p.Name]:
			problem("duplicate pass %q", p.Name)
		}
		passes[p.Name] = true

		for _, u := range p.Uses {
			kind, ok := kinds[u.Resource]
			if !ok {
				problem("pass %q uses unknown resource %q", p.Name, u.Resource)
			}
			if _, err := parseUsage(u.Usage); err != nil {
				problem("pass %q: %v", p.Name, err)
			}
			if u.Need == "" && u.After != "" {
				problem("pass %q: %q has after without need", p.Name, u.Resource)
			}
			if (u.Need != "" || u.After != "") && kind == "buffer" {
				problem("pass %q: layout hint on buffer %q", p.Name, u.Resource)
			}
			for _, l := range []string{u.Need, u.After} {
				if l == "" {
					continue
				}
				if _, err := rendergraph.ParseImageLayout(l); err != nil {
					problem("pass %q: %v", p.Name, err)
				}
			}
			if after, err := rendergraph.ParseImageLayout(u.After); err == nil && after == rendergraph.LayoutUndefined {
				problem("pass %q: %q cannot be left undefined", p.Name, u.Resource)
			}
		}
	}

	for i, e := range f.Edges {
		for _, name := range []string{e.Before, e.After} {
			if !passes[name] {
				problem("edge %d names unknown pass %q", i, name)
			}
		}
	}
	return errors.Join(errs...)
}

func parseUsage(s string) (rendergraph.Usage, error) {
	switch strings.ToLower(s) {
	case "read":
		return rendergraph.UsageRead, nil
	case "write":
		return rendergraph.UsageWrite, nil
	case "readwrite", "read-write":
		return rendergraph.UsageReadWrite, nil
	default:
		return 0, fmt.Errorf("unknown usage %q", s)
	}
}

var formats = map[string]gputypes.TextureFormat{
	"r8unorm":               gputypes.TextureFormatR8Unorm,
	"rgba8unorm":            gputypes.TextureFormatRGBA8Unorm,
	"bgra8unorm":            gputypes.TextureFormatBGRA8Unorm,
	"rgba16float":           gputypes.TextureFormatRGBA16Float,
	"depth16unorm":          gputypes.TextureFormatDepth16Unorm,
	"depth24plus":           gputypes.TextureFormatDepth24Plus,
	"depth24plus-stencil8":  gputypes.TextureFormatDepth24PlusStencil8,
	"depth32float":          gputypes.TextureFormatDepth32Float,
	"depth32float-stencil8": gputypes.TextureFormatDepth32FloatStencil8,
}

// ParseFormat maps a WebGPU format name to a gputypes format. The empty
// name is rgba8unorm.
func ParseFormat(name string) (gputypes.TextureFormat, error) {
	if name == "" {
		return gputypes.TextureFormatRGBA8Unorm, nil
	}
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return gputypes.TextureFormatUndefined, fmt.Errorf("unknown texture format %q", name)
	}
	return f, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
