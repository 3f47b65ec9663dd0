// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales implements materialized scales that map a resolved
// domain onto a visual range.
//
// A Scale is either continuous or discrete. A continuous Scale maps
// its interval domain to [0, 1] through a go-moremath scale (linear
// or logarithmic) and then applies a Ranger. A discrete Scale maps
// the Nth category either to the Nth level of a DiscreteRanger or to
// a position on [0, 1] (band centers or evenly spaced points) that
// is then passed to a ContinuousRanger.
package scales

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-moremath/scale"
)

// Type is the kind of mapping a Scale performs.
type Type string

const (
	Linear  Type = "linear"
	Log     Type = "log"
	Ordinal Type = "ordinal"
	Band    Type = "band"
	Point   Type = "point"
)

// Valid reports whether t is a known scale type.
func (t Type) Valid() bool {
	switch t {
	case Linear, Log, Ordinal, Band, Point:
		return true
	}
	return false
}

// Continuous reports whether t maps a numeric interval.
func (t Type) Continuous() bool {
	return t == Linear || t == Log
}

// Config describes a Scale to construct.
type Config struct {
	Type Type

	// Min and Max are the domain of a continuous scale. If both
	// are NaN, the domain is empty and the scale uses [-1, 1].
	Min, Max float64

	// Categories is the domain of a discrete scale, in level
	// order.
	Categories []string

	// Ranger maps the normalized output to the visual range. It
	// must be a gg.ContinuousRanger or a gg.DiscreteRanger.
	Ranger gg.Ranger

	// Nice expands a continuous domain to round tick values.
	Nice bool

	// Clamp limits continuous output to the range.
	Clamp bool
}

// quantitative is the subset of go-moremath's quantitative scales
// used here.
type quantitative interface {
	Map(x float64) float64
	SetClamp(clamp bool)
	Ticks(o scale.TickOptions) (major, minor []float64)
	Nice(o scale.TickOptions)
}

// A Scale maps domain values to visual values. Scales are immutable
// once constructed and safe for concurrent use.
type Scale struct {
	typ    Type
	ranger gg.Ranger

	q        quantitative
	min, max float64

	categories []string
	index      map[string]int
}

// niceTicks is the tick count used when Config.Nice is set.
const niceTicks = 10

// New constructs a Scale from c.
func New(c Config) (*Scale, error) {
	if !c.Type.Valid() {
		return nil, fmt.Errorf("unknown scale type %q", c.Type)
	}
	switch c.Ranger.(type) {
	case gg.ContinuousRanger, gg.DiscreteRanger:
	default:
		return nil, fmt.Errorf("ranger %v is neither continuous nor discrete", c.Ranger)
	}

	s := &Scale{typ: c.Type, ranger: c.Ranger}
	if !c.Type.Continuous() {
		s.categories = append([]string(nil), c.Categories...)
		s.index = make(map[string]int, len(s.categories))
		for i, cat := range s.categories {
			if _, ok := s.index[cat]; ok {
				return nil, fmt.Errorf("duplicate category %q", cat)
			}
			s.index[cat] = i
		}
		return s, nil
	}

	min, max := c.Min, c.Max
	if math.IsNaN(min) && math.IsNaN(max) {
		// Same fallback as an untrained go-gg linear scale.
		min, max = -1, 1
	}
	if min > max {
		min, max = max, min
	}

	switch c.Type {
	case Linear:
		if min == max {
			// A zero-width domain maps everything to the
			// middle of the range.
			min, max = min-0.5, max+0.5
		}
		s.q = &scale.Linear{Min: min, Max: max}

	case Log:
		if min <= 0 {
			return nil, fmt.Errorf("log scale domain [%g,%g] must be positive", min, max)
		}
		if min == max {
			min, max = min/10, max*10
		}
		ls, err := scale.NewLog(min, max, 10)
		if err != nil {
			return nil, err
		}
		s.q = &ls
	}
	if c.Nice {
		s.q.Nice(scale.TickOptions{Max: niceTicks})
		switch q := s.q.(type) {
		case *scale.Linear:
			min, max = q.Min, q.Max
		case *scale.Log:
			min, max = q.Min, q.Max
		}
	}
	s.q.SetClamp(c.Clamp)
	s.min, s.max = min, max
	return s, nil
}

func (s *Scale) String() string {
	if s.typ.Continuous() {
		return fmt.Sprintf("%s [%g,%g] => %s", s.typ, s.min, s.max, s.ranger)
	}
	return fmt.Sprintf("%s %q => %s", s.typ, s.categories, s.ranger)
}

// Type returns the scale's type.
func (s *Scale) Type() Type { return s.typ }

// Ranger returns the scale's output ranger.
func (s *Scale) Ranger() gg.Ranger { return s.ranger }

// Domain returns the domain of a continuous scale as materialized,
// which may differ from the configured domain if it was empty or
// made nice.
func (s *Scale) Domain() (min, max float64) {
	return s.min, s.max
}

// Categories returns the levels of a discrete scale.
func (s *Scale) Categories() []string {
	return s.categories
}

var float64Type = reflect.TypeOf(float64(0))

// Map maps the domain value x to the visual range. For continuous
// scales, x must be convertible to float64. For discrete scales, x
// is formatted with fmt.Sprint and looked up among the categories;
// Map returns nil for a value not in the domain.
func (s *Scale) Map(x interface{}) interface{} {
	if s.typ.Continuous() {
		var v float64
		switch x := x.(type) {
		case float64:
			v = x
		case gg.Unscaled:
			return s.rangeContinuous(float64(x))
		default:
			v = reflect.ValueOf(x).Convert(float64Type).Float()
		}
		return s.rangeContinuous(s.q.Map(v))
	}

	var i int
	switch x := x.(type) {
	case gg.Unscaled:
		i = int(x)
	default:
		var ok bool
		i, ok = s.index[fmt.Sprint(x)]
		if !ok {
			return nil
		}
	}
	return s.rangeDiscrete(i)
}

func (s *Scale) rangeContinuous(scaled float64) interface{} {
	switch r := s.ranger.(type) {
	case gg.ContinuousRanger:
		return r.Map(scaled)

	case gg.DiscreteRanger:
		_, levels := r.Levels()
		// Bin the scaled value into 'levels' bins.
		level := int(scaled * float64(levels))
		if level < 0 {
			level = 0
		} else if level >= levels {
			level = levels - 1
		}
		return r.MapLevel(level, levels)
	}
	panic("Ranger must be a ContinuousRanger or DiscreteRanger")
}

func (s *Scale) rangeDiscrete(i int) interface{} {
	n := len(s.categories)
	switch r := s.ranger.(type) {
	case gg.DiscreteRanger:
		minLevels, maxLevels := r.Levels()
		if n <= minLevels {
			return r.MapLevel(i, minLevels)
		} else if n <= maxLevels {
			return r.MapLevel(i, n)
		}
		return r.MapLevel(i%maxLevels, maxLevels)

	case gg.ContinuousRanger:
		var x float64
		switch {
		case s.typ == Point && n > 1:
			x = float64(i) / float64(n-1)
		case s.typ == Point:
			x = 0.5
		default:
			// Center of the ith equal n-way subdivision
			// of [0, 1].
			x = (float64(i) + 0.5) / float64(n)
		}
		return r.Map(x)
	}
	panic("Ranger must be a ContinuousRanger or DiscreteRanger")
}

// Ticks returns at most max major ticks for a continuous scale along
// with minor ticks and labels for the major ticks. Discrete scales
// return no tick positions and one label per category.
func (s *Scale) Ticks(max int) (major, minor []float64, labels []string) {
	if !s.typ.Continuous() {
		return nil, nil, append([]string(nil), s.categories...)
	}
	major, minor = s.q.Ticks(scale.TickOptions{Max: max})
	labels = make([]string, len(major))
	for i, x := range major {
		labels[i] = fmt.Sprintf("%.6g", x)
	}
	return major, minor, labels
}
