// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/razsultana/genome-spy/interval"
	"github.com/razsultana/genome-spy/view"
)

func parse(t *testing.T, src string) view.View {
	t.Helper()
	v, err := Parse(strings.NewReader(src), "testdata")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := view.Resolve(v); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return v
}

func domainInterval(t *testing.T, r *view.ScaleResolution) interval.Interval {
	t.Helper()
	if r == nil {
		t.Fatalf("no resolution")
	}
	d, err := r.Domain()
	if err != nil {
		t.Fatal(err)
	}
	return d.Interval
}

func TestShared(t *testing.T) {
	root := parse(t, `
layer:
  - data: {values: [1, 2]}
    mark: point
    encoding:
      y: {field: data, type: quantitative}
  - data: {values: [4, 5]}
    mark: point
    encoding:
      y: {field: data, type: quantitative}
`)
	if got := domainInterval(t, root.Resolution(view.Y)); got != interval.New(1, 5) {
		t.Errorf("domain = %v, want [1,5]", got)
	}
	if title, _ := root.Resolution(view.Y).Title(); title != "data" {
		t.Errorf("title = %q, want data", title)
	}
}

func TestIndependent(t *testing.T) {
	// JSON is a subset of YAML.
	root := parse(t, `{
  "resolve": {"scale": {"y": "independent"}},
  "layer": [
    {"data": {"values": [1, 2]}, "mark": "point", "encoding": {"y": {"field": "data", "type": "quantitative"}}},
    {"data": {"values": [4, 5]}, "mark": "point", "encoding": {"y": {"field": "data", "type": "quantitative"}}}
  ]
}`)
	if r := root.Resolution(view.Y); r != nil {
		t.Errorf("root resolution = %v, want nil", r)
	}
	children := root.Children()
	if got := domainInterval(t, children[0].Resolution(view.Y)); got != interval.New(1, 2) {
		t.Errorf("first child domain = %v, want [1,2]", got)
	}
	if got := domainInterval(t, children[1].Resolution(view.Y)); got != interval.New(4, 5) {
		t.Errorf("second child domain = %v, want [4,5]", got)
	}
}

func TestInheritance(t *testing.T) {
	root := parse(t, `
data:
  values:
    - {a: 1, b: 10}
    - {a: 3, b: 20}
encoding:
  x: {field: a, type: quantitative}
layer:
  - name: first
    encoding:
      y: {field: a, type: quantitative}
  - name: second
    encoding:
      y: {field: b, type: quantitative}
`)
	if got := domainInterval(t, root.Resolution(view.X)); got != interval.New(1, 3) {
		t.Errorf("x domain = %v, want [1,3]", got)
	}
	if got := domainInterval(t, root.Resolution(view.Y)); got != interval.New(1, 20) {
		t.Errorf("y domain = %v, want [1,20]", got)
	}
	if title, _ := root.Resolution(view.Y).Title(); title != "a, b" {
		t.Errorf("y title = %q, want %q", title, "a, b")
	}
	if view.Find(root, "second") == nil {
		t.Errorf("named view not found")
	}
}

func TestLoad(t *testing.T) {
	root, err := Load("testdata/tracks.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if err := view.Resolve(root); err != nil {
		t.Fatal(err)
	}
	if root.Name() != "tracks" {
		t.Errorf("root name = %q", root.Name())
	}
	if got := domainInterval(t, root.Resolution(view.X)); got != interval.New(0, 500) {
		t.Errorf("x domain = %v, want [0,500]", got)
	}
	if title, _ := root.Resolution(view.X).Title(); title != "start, end, pos" {
		t.Errorf("x title = %q", title)
	}
	if title, _ := root.Resolution(view.Y).Title(); title != "Depth" {
		t.Errorf("y title = %q, want Depth", title)
	}
	d, err := root.Resolution(view.Color).Domain()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"chr1", "chr2"}; !reflect.DeepEqual(want, d.Categories) {
		t.Errorf("color domain = %v, want %v", d.Categories, want)
	}
}

func TestErrors(t *testing.T) {
	for _, src := range []string{
		"layer: [{encoding: {x: {value: 1}}}]\nhconcat: [{encoding: {x: {value: 1}}}]\n",
		"layer:\n  - name: a\n    encoding: {x: {value: 1}}\n  - name: a\n    encoding: {x: {value: 1}}\n",
		"data: {values: [[1]]}\nencoding: {x: {field: data, type: quantitative}}\n",
		"data: {url: missing.tsv}\nencoding: {x: {field: data, type: quantitative}}\n",
	} {
		_, err := Parse(strings.NewReader(src), "testdata")
		var ce *view.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("Parse(%q) error = %v, want ConfigError", src, err)
		}
	}

	root, err := Parse(strings.NewReader(`
resolve: {scale: {x: sometimes}}
layer:
  - data: {values: [1]}
    encoding: {x: {field: data, type: quantitative}}
`), "testdata")
	if err != nil {
		t.Fatal(err)
	}
	var ce *view.ConfigError
	if err := view.Resolve(root); !errors.As(err, &ce) {
		t.Errorf("invalid policy: Resolve error = %v, want ConfigError", err)
	}
}
