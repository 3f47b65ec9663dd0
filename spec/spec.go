// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spec parses declarative view specifications into view
// trees.
//
// A specification is a YAML (or JSON) document. A node with an
// encoding and no children is a unit view; "layer", "concat",
// "hconcat", and "vconcat" nodes are composite views:
//
//	resolve:
//	  scale: {y: independent}
//	layer:
//	  - data: {values: [1, 2]}
//	    mark: point
//	    encoding:
//	      y: {field: data, type: quantitative}
//	  - data: {url: genes.tsv}
//	    mark: rect
//	    encoding:
//	      y: {field: start, type: quantitative}
//
// Data and encodings are inherited by children that do not override
// them. Scalar data values are wrapped as records with a single field
// named "data".
package spec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/razsultana/genome-spy/data"
	"github.com/razsultana/genome-spy/scales"
	"github.com/razsultana/genome-spy/view"
	"gopkg.in/yaml.v3"
)

// Spec is a node of a view specification.
type Spec struct {
	Name     string                  `yaml:"name"`
	Data     *Data                   `yaml:"data"`
	Mark     interface{}             `yaml:"mark"`
	Encoding map[string]*ChannelSpec `yaml:"encoding"`
	Layer    []*Spec                 `yaml:"layer"`
	Concat   []*Spec                 `yaml:"concat"`
	HConcat  []*Spec                 `yaml:"hconcat"`
	VConcat  []*Spec                 `yaml:"vconcat"`
	Resolve  *Resolve                `yaml:"resolve"`

	// Scales sets resolution-level scale properties for channels
	// whose resolution is rooted at this node.
	Scales map[string]*Scale `yaml:"scales"`
}

// Data is an inline or file-backed data source.
type Data struct {
	Values []interface{} `yaml:"values"`
	URL    string        `yaml:"url"`
}

// ChannelSpec is the specification of one encoding channel.
type ChannelSpec struct {
	Field string      `yaml:"field"`
	Type  string      `yaml:"type"`
	Title string      `yaml:"title"`
	Value interface{} `yaml:"value"`
	Scale *Scale      `yaml:"scale"`
	Axis  *Axis       `yaml:"axis"`
}

// Scale holds explicit scale properties.
type Scale struct {
	Type   string        `yaml:"type"`
	Domain []interface{} `yaml:"domain"`
	Range  []float64     `yaml:"range"`
	Zero   bool          `yaml:"zero"`
	Nice   bool          `yaml:"nice"`
	Clamp  bool          `yaml:"clamp"`
}

// Axis holds axis properties.
type Axis struct {
	Title string `yaml:"title"`
}

// Resolve maps channel names to "shared" or "independent".
type Resolve struct {
	Scale  map[string]string `yaml:"scale"`
	Axis   map[string]string `yaml:"axis"`
	Legend map[string]string `yaml:"legend"`
}

// Load reads the specification in file path and builds its view tree.
// Data URLs are relative to the directory containing path.
func Load(path string) (view.View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Dir(path))
}

// Parse reads a specification from r and builds its view tree. Data
// URLs are relative to baseDir.
func Parse(r io.Reader, baseDir string) (view.View, error) {
	var s Spec
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty specification")
		}
		return nil, err
	}
	return s.View(baseDir)
}

// View builds the view tree described by s. The tree is not resolved.
func (s *Spec) View(baseDir string) (view.View, error) {
	b := builder{baseDir: baseDir, names: map[string]bool{}}
	return b.build(s, "root", nil, nil)
}

type builder struct {
	baseDir string
	names   map[string]bool
}

func (b *builder) build(s *Spec, path string, src *data.Table, enc map[string]*ChannelSpec) (view.View, error) {
	name := s.Name
	if name == "" {
		name = path
	}
	if b.names[name] {
		return nil, &view.ConfigError{View: name, Msg: "duplicate view name"}
	}
	b.names[name] = true

	if s.Data != nil {
		t, err := s.Data.load(b.baseDir)
		if err != nil {
			return nil, &view.ConfigError{View: name, Msg: fmt.Sprintf("data: %v", err)}
		}
		src = data.New(name, t)
	}
	enc = mergeEncoding(enc, s.Encoding)

	var kind string
	var children []*Spec
	var dir view.Direction
	for _, c := range []struct {
		kind string
		sub  []*Spec
		dir  view.Direction
	}{
		{"layer", s.Layer, 0},
		{"concat", s.Concat, view.Wrap},
		{"hconcat", s.HConcat, view.Horizontal},
		{"vconcat", s.VConcat, view.Vertical},
	} {
		if c.sub == nil {
			continue
		}
		if kind != "" {
			return nil, &view.ConfigError{View: name, Msg: fmt.Sprintf("view has both %s and %s", kind, c.kind)}
		}
		kind, children, dir = c.kind, c.sub, c.dir
	}

	var v view.View
	if kind == "" {
		encoding, err := convertEncoding(name, enc)
		if err != nil {
			return nil, err
		}
		var ds view.DataSource
		if src != nil {
			ds = src
		}
		v = view.NewUnit(name, ds, encoding)
	} else {
		var views []view.View
		for i, c := range children {
			cv, err := b.build(c, path+"/"+strconv.Itoa(i), src, enc)
			if err != nil {
				return nil, err
			}
			views = append(views, cv)
		}
		if kind == "layer" {
			v = view.NewLayer(name, views...)
		} else {
			v = view.NewConcat(name, dir, views...)
		}
	}

	type configurable interface {
		SetResolve(view.ResolveConfig)
		SetScale(view.Channel, *view.ScaleDef)
	}
	cv := v.(configurable)
	if s.Resolve != nil {
		cv.SetResolve(view.ResolveConfig{
			Scale:  policies(s.Resolve.Scale),
			Axis:   policies(s.Resolve.Axis),
			Legend: policies(s.Resolve.Legend),
		})
	}
	for ch, sc := range s.Scales {
		cv.SetScale(view.Channel(ch), sc.def())
	}
	return v, nil
}

// mergeEncoding returns parent overlaid with child.
func mergeEncoding(parent, child map[string]*ChannelSpec) map[string]*ChannelSpec {
	if len(parent) == 0 {
		return child
	}
	out := make(map[string]*ChannelSpec, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

func convertEncoding(name string, enc map[string]*ChannelSpec) (view.Encoding, error) {
	out := make(view.Encoding, len(enc))
	for ch, cs := range enc {
		if cs == nil {
			return nil, &view.ConfigError{View: name, Channel: view.Channel(ch), Msg: "empty channel definition"}
		}
		def := &view.ChannelDef{
			Field: cs.Field,
			Type:  view.Type(cs.Type),
			Title: cs.Title,
			Value: cs.Value,
			Scale: cs.Scale.def(),
		}
		if cs.Axis != nil {
			def.Axis = &view.AxisDef{Title: cs.Axis.Title}
		}
		out[view.Channel(ch)] = def
	}
	return out, nil
}

func (s *Scale) def() *view.ScaleDef {
	if s == nil {
		return nil
	}
	return &view.ScaleDef{
		Type:   scales.Type(s.Type),
		Domain: s.Domain,
		Range:  s.Range,
		Zero:   s.Zero,
		Nice:   s.Nice,
		Clamp:  s.Clamp,
	}
}

func policies(m map[string]string) map[view.Channel]view.Policy {
	if m == nil {
		return nil
	}
	out := make(map[view.Channel]view.Policy, len(m))
	for ch, p := range m {
		out[view.Channel(ch)] = view.Policy(p)
	}
	return out
}
