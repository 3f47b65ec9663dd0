// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"testing"
)

func TestTitle(t *testing.T) {
	for _, test := range []struct {
		defs []*ChannelDef
		want string
	}{
		// Field name only.
		{[]*ChannelDef{{Field: "a"}}, "a"},
		// Channel title overrides the field.
		{[]*ChannelDef{{Field: "a", Title: "x"}}, "x"},
		// Axis title overrides the channel title.
		{[]*ChannelDef{{Field: "a", Title: "x", Axis: &AxisDef{Title: "z"}}}, "z"},
		// An empty axis title falls through.
		{[]*ChannelDef{{Field: "a", Axis: &AxisDef{}}}, "a"},
		// Distinct fields are joined in member order.
		{[]*ChannelDef{{Field: "a"}, {Field: "b"}}, "a, b"},
		{[]*ChannelDef{{Field: "b"}, {Field: "a"}}, "b, a"},
		// Runs of the same label collapse.
		{[]*ChannelDef{{Field: "a"}, {Field: "a"}, {Field: "b"}}, "a, b"},
		{[]*ChannelDef{{Field: "a"}, {Field: "b"}, {Field: "b"}}, "a, b"},
		// Repeats that are not adjacent are kept.
		{[]*ChannelDef{{Field: "a"}, {Field: "b"}, {Field: "a"}}, "a, b, a"},
		// Any member's title beats joining.
		{[]*ChannelDef{{Field: "a"}, {Field: "b", Title: "T"}}, "T"},
		// Any member's axis title beats any member's title.
		{[]*ChannelDef{{Field: "a", Title: "T"}, {Field: "b", Axis: &AxisDef{Title: "Z"}}}, "Z"},
		// The first title wins.
		{[]*ChannelDef{{Field: "a", Title: "T1"}, {Field: "b", Title: "T2"}}, "T1"},
	} {
		var children []View
		for i, def := range test.defs {
			def.Type = Quantitative
			children = append(children, NewUnit(fmt.Sprint(i), numbers(def.Field, 1, 2), Encoding{Y: def}))
		}
		root := NewLayer("root", children...)
		mustResolve(t, root)

		r := root.Resolution(Y)
		got, ok := r.Title()
		if !ok || got != test.want {
			t.Errorf("title of %d members = %q, %v; want %q", len(test.defs), got, ok, test.want)
		}
		// Every member view sees the same title through its
		// own accessor.
		for _, c := range children {
			if got2, _ := c.Resolution(Y).Title(); got2 != got {
				t.Errorf("member %s sees title %q, want %q", c.Name(), got2, got)
			}
		}
	}
}

func TestTitleCache(t *testing.T) {
	a := quantUnit("a", X, 1)
	root := NewLayer("root", a)
	mustResolve(t, root)
	r := root.Resolution(X)
	if got, _ := r.Title(); got != "data" {
		t.Fatalf("title = %q, want data", got)
	}

	b := NewUnit("b", numbers("pos", 1), Encoding{X: {Field: "pos", Type: Quantitative}})
	if err := r.AddMember(b, X, b.Encoding()[X]); err != nil {
		t.Fatal(err)
	}
	if got, _ := r.Title(); got != "data, pos" {
		t.Errorf("title after AddMember = %q, want %q", got, "data, pos")
	}
}
