// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval implements closed numeric ranges used as scale
// domains.
package interval

import (
	"fmt"
	"math"
)

// Interval is the range [Lower, Upper]. Lower <= Upper always holds
// for Intervals constructed with New or produced by Merge.
//
// Intervals are values; operations never modify their receiver.
type Interval struct {
	Lower, Upper float64
}

// New returns the interval [lower, upper]. It panics if lower >
// upper or if either bound is NaN.
func New(lower, upper float64) Interval {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		panic("interval bound is NaN")
	}
	if lower > upper {
		panic(fmt.Sprintf("interval lower bound %g exceeds upper bound %g", lower, upper))
	}
	return Interval{lower, upper}
}

// Point returns the zero-width interval [x, x].
func Point(x float64) Interval {
	return New(x, x)
}

// Width returns Upper - Lower.
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Contains reports whether x is in the half-open range [Lower,
// Upper).
func (i Interval) Contains(x float64) bool {
	return i.Lower <= x && x < i.Upper
}

// Merge returns the smallest interval containing both i and o.
func (i Interval) Merge(o Interval) Interval {
	return Interval{math.Min(i.Lower, o.Lower), math.Max(i.Upper, o.Upper)}
}

// Include returns the smallest interval containing i and x.
func (i Interval) Include(x float64) Interval {
	return i.Merge(Point(x))
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g,%g]", i.Lower, i.Upper)
}

// Union merges all of ivs. It returns false if ivs is empty.
func Union(ivs ...Interval) (Interval, bool) {
	if len(ivs) == 0 {
		return Interval{}, false
	}
	u := ivs[0]
	for _, iv := range ivs[1:] {
		u = u.Merge(iv)
	}
	return u, true
}
