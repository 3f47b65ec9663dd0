// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

// A Policy says whether the views below a node share a channel's
// scale, axis, or legend.
type Policy string

const (
	Shared      Policy = "shared"
	Independent Policy = "independent"
)

func (p Policy) valid() bool {
	return p == Shared || p == Independent
}

// A ResolveKind selects which part of a ResolveConfig applies.
type ResolveKind int

const (
	ScaleKind ResolveKind = iota
	AxisKind
	LegendKind
)

func (k ResolveKind) String() string {
	switch k {
	case ScaleKind:
		return "scale"
	case AxisKind:
		return "axis"
	case LegendKind:
		return "legend"
	}
	return "unknown"
}

// ResolveConfig maps channels to resolve policies. A channel absent
// from a map is Shared.
type ResolveConfig struct {
	Scale  map[Channel]Policy
	Axis   map[Channel]Policy
	Legend map[Channel]Policy
}

func (c *ResolveConfig) policies(kind ResolveKind) map[Channel]Policy {
	switch kind {
	case ScaleKind:
		return c.Scale
	case AxisKind:
		return c.Axis
	case LegendKind:
		return c.Legend
	}
	panic("unknown resolve kind")
}

// policy returns the configured policy for ch, or Shared.
func (c *ResolveConfig) policy(kind ResolveKind, ch Channel) Policy {
	if p, ok := c.policies(kind)[ch.Primary()]; ok {
		return p
	}
	return Shared
}

// check validates c for the view v.
func (c *ResolveConfig) check(v View) error {
	for _, kind := range []ResolveKind{ScaleKind, AxisKind, LegendKind} {
		for _, ch := range sortedChannels(c.policies(kind)) {
			p := c.policies(kind)[ch]
			if !ch.Valid() {
				return configErrorf(v, ch, "unknown channel in resolve.%s", kind)
			}
			if ch != ch.Primary() {
				return configErrorf(v, ch, "resolve.%s belongs to channel %s", kind, ch.Primary())
			}
			if !p.valid() {
				return configErrorf(v, ch, "invalid resolve.%s policy %q", kind, p)
			}
		}
	}
	// A guide cannot be shared across independent scales.
	for _, kind := range []ResolveKind{AxisKind, LegendKind} {
		for _, ch := range sortedChannels(c.policies(kind)) {
			if c.policies(kind)[ch] == Shared && c.policy(ScaleKind, ch) == Independent {
				return configErrorf(v, ch, "shared %s requires a shared scale", kind)
			}
		}
	}
	return nil
}

// sortedChannels returns the keys of m in canonical channel order
// followed by any unknown channels.
func sortedChannels(m map[Channel]Policy) []Channel {
	var out []Channel
	for _, ch := range channelOrder {
		if _, ok := m[ch]; ok {
			out = append(out, ch)
		}
	}
	for ch := range m {
		if !ch.Valid() {
			out = append(out, ch)
		}
	}
	return out
}
