// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
)

// DefaultRanger returns the default Ranger for a channel. discrete
// selects between the discrete and continuous variants of the
// channel's range where they differ. It panics if channel is unknown.
func DefaultRanger(channel string, discrete bool) gg.Ranger {
	switch channel {
	case "x", "y", "x2", "y2":
		// Positions are normalized; layout maps them to
		// pixels.
		return gg.NewFloatRanger(0, 1)

	case "color", "fill", "stroke":
		if discrete {
			return gg.NewColorRanger(brewer.Set1_9)
		}
		return viridisRanger{}

	case "opacity":
		return gg.NewFloatRanger(0.1, 1)

	case "size":
		// Fraction of the minimum plot dimension.
		return gg.NewFloatRanger(0.01, 0.1)

	case "shape":
		return shapeRanger(defaultShapes)
	}

	panic(fmt.Sprintf("unknown channel %q", channel))
}

var colorType = reflect.TypeOf((*color.Color)(nil)).Elem()

// viridisRanger maps [0, 1] onto the Viridis palette.
type viridisRanger struct{}

func (viridisRanger) String() string { return "viridis" }

func (viridisRanger) RangeType() reflect.Type {
	return colorType
}

func (viridisRanger) Map(x float64) interface{} {
	return palette.Viridis.Map(x)
}

func (viridisRanger) Unmap(y interface{}) (float64, bool) {
	return 0, false
}

var defaultShapes = []string{"circle", "square", "triangle-up", "cross", "diamond", "triangle-down"}

var stringType = reflect.TypeOf("")

// shapeRanger is a DiscreteRanger over mark shape names.
type shapeRanger []string

func (r shapeRanger) RangeType() reflect.Type {
	return stringType
}

func (r shapeRanger) Levels() (min, max int) {
	return len(r), len(r)
}

func (r shapeRanger) MapLevel(i, j int) interface{} {
	if i < 0 {
		i = 0
	} else if i >= len(r) {
		i = len(r) - 1
	}
	return r[i]
}
