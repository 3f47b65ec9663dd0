// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"regexp"
	"testing"
)

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(err.(string)) {
			t.Fatalf("want panic matching %q; got %s", re, err)
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	shouldPanic(t, "exceeds", func() { New(2, 1) })
	shouldPanic(t, "NaN", func() { New(math.NaN(), 1) })

	i := New(1, 3)
	if w := i.Width(); w != 2 {
		t.Errorf("Width of %v should be 2, got %v", i, w)
	}
	if s := i.String(); s != "[1,3]" {
		t.Errorf("String should be [1,3], got %s", s)
	}
}

func TestContains(t *testing.T) {
	i := New(1, 3)
	for _, test := range []struct {
		x    float64
		want bool
	}{
		{0.5, false},
		{1, true},
		{2, true},
		{3, false},
		{4, false},
	} {
		if got := i.Contains(test.x); got != test.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", i, test.x, got, test.want)
		}
	}
}

func TestMerge(t *testing.T) {
	a, b, c := New(1, 2), New(4, 5), New(-3, 1.5)

	if got, want := a.Merge(b), New(1, 5); got != want {
		t.Errorf("%v.Merge(%v) = %v, want %v", a, b, got, want)
	}
	if a.Merge(b) != b.Merge(a) {
		t.Errorf("Merge is not commutative for %v and %v", a, b)
	}
	if a.Merge(b).Merge(c) != a.Merge(b.Merge(c)) {
		t.Errorf("Merge is not associative for %v, %v, %v", a, b, c)
	}
	if a.Merge(a) != a {
		t.Errorf("Merge is not idempotent for %v", a)
	}
	if got, want := a.Include(0), New(0, 2); got != want {
		t.Errorf("%v.Include(0) = %v, want %v", a, got, want)
	}
}

func TestUnion(t *testing.T) {
	if _, ok := Union(); ok {
		t.Errorf("Union of nothing should not be ok")
	}

	ivs := []Interval{New(4, 5), New(1, 2), New(2, 3), New(-1, 0)}
	want := New(-1, 5)
	// Every rotation of the input must produce the same union.
	for r := range ivs {
		rot := append(append([]Interval{}, ivs[r:]...), ivs[:r]...)
		if got, ok := Union(rot...); !ok || got != want {
			t.Errorf("Union(%v) = %v, %v; want %v", rot, got, ok, want)
		}
	}
}
