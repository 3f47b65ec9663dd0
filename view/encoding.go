// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"math"

	"github.com/razsultana/genome-spy/interval"
	"github.com/razsultana/genome-spy/scales"
)

// A Channel is a visual aesthetic that a view maps a data field onto.
type Channel string

const (
	X       Channel = "x"
	Y       Channel = "y"
	X2      Channel = "x2"
	Y2      Channel = "y2"
	Color   Channel = "color"
	Fill    Channel = "fill"
	Stroke  Channel = "stroke"
	Opacity Channel = "opacity"
	Size    Channel = "size"
	Shape   Channel = "shape"
)

// channelOrder is the canonical channel order. Resolution walks visit
// channels in this order so member registration is deterministic.
var channelOrder = []Channel{X, X2, Y, Y2, Color, Fill, Stroke, Opacity, Size, Shape}

// Channels returns all known channels in canonical order.
func Channels() []Channel {
	return append([]Channel(nil), channelOrder...)
}

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	for _, c2 := range channelOrder {
		if c == c2 {
			return true
		}
	}
	return false
}

// Primary returns the channel whose scale c shares. Secondary
// position channels share the scale of their primary channel; all
// other channels are their own primary.
func (c Channel) Primary() Channel {
	switch c {
	case X2:
		return X
	case Y2:
		return Y
	}
	return c
}

// Type is the measurement type of an encoded field.
type Type string

const (
	Quantitative Type = "quantitative"
	Nominal      Type = "nominal"
	Ordinal      Type = "ordinal"
	Temporal     Type = "temporal"
)

// Valid reports whether t is a known field type.
func (t Type) Valid() bool {
	switch t {
	case Quantitative, Nominal, Ordinal, Temporal:
		return true
	}
	return false
}

// Continuous reports whether fields of type t have interval domains.
// Continuous and discrete types cannot share a scale.
func (t Type) Continuous() bool {
	return t == Quantitative || t == Temporal
}

// ScaleDef holds explicit scale properties of a channel.
type ScaleDef struct {
	// Type overrides the default scale type.
	Type scales.Type

	// Domain overrides the data domain. For continuous fields it
	// must hold exactly two numbers; for discrete fields it lists
	// the categories.
	Domain []interface{}

	// Range overrides the visual range with [Range[0], Range[1]].
	Range []float64

	Zero, Nice, Clamp bool
}

// AxisDef holds axis properties of a positional channel.
type AxisDef struct {
	Title string
}

// ChannelDef declares how a view encodes one channel. A ChannelDef
// either maps a Field or sets a constant Value. Constant encodings
// never participate in scale resolution.
type ChannelDef struct {
	Field string
	Type  Type
	Title string
	Scale *ScaleDef
	Axis  *AxisDef
	Value interface{}
}

// Encoding maps channels to their definitions.
type Encoding map[Channel]*ChannelDef

// Constant reports whether d is a constant encoding.
func (d *ChannelDef) Constant() bool {
	return d.Field == ""
}

// label returns the best available label for d: the axis title, then
// the channel title, then the field.
func (d *ChannelDef) label() string {
	if d.Axis != nil && d.Axis.Title != "" {
		return d.Axis.Title
	}
	if d.Title != "" {
		return d.Title
	}
	return d.Field
}

func (d *ChannelDef) explicitDomain() []interface{} {
	if d.Scale == nil {
		return nil
	}
	return d.Scale.Domain
}

// check validates a channel definition for a field of type typ.
func (s *ScaleDef) check(typ Type) error {
	if s.Type != "" {
		if !s.Type.Valid() {
			return fmt.Errorf("unknown scale type %q", s.Type)
		}
		if s.Type.Continuous() != typ.Continuous() {
			return fmt.Errorf("scale type %q cannot encode a %s field", s.Type, typ)
		}
	}
	if len(s.Domain) > 0 {
		if typ.Continuous() {
			if _, err := domainInterval(s.Domain); err != nil {
				return err
			}
		}
	}
	if s.Range != nil && len(s.Range) != 2 {
		return fmt.Errorf("scale range must have two values, got %d", len(s.Range))
	}
	return nil
}

// domainInterval converts an explicit continuous domain to an
// Interval.
func domainInterval(dom []interface{}) (interval.Interval, error) {
	if len(dom) != 2 {
		return interval.Interval{}, fmt.Errorf("continuous scale domain must have two values, got %d", len(dom))
	}
	var bounds [2]float64
	for i, v := range dom {
		f, ok := ToFloat(v)
		if !ok || math.IsNaN(f) {
			return interval.Interval{}, fmt.Errorf("scale domain value %v is not a number", v)
		}
		bounds[i] = f
	}
	if bounds[0] > bounds[1] {
		return interval.Interval{}, fmt.Errorf("scale domain [%g,%g] is reversed", bounds[0], bounds[1])
	}
	return interval.New(bounds[0], bounds[1]), nil
}

// domainCategories converts an explicit discrete domain to category
// strings.
func domainCategories(dom []interface{}) []string {
	cats := make([]string, len(dom))
	for i, v := range dom {
		cats[i] = fmt.Sprint(v)
	}
	return cats
}

// ToFloat converts a numeric value decoded from a document or record
// to a float64. It reports false for non-numeric values.
func ToFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
