// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view resolves the scales of a hierarchical composition of
// views.
//
// A view tree consists of unit views, which encode data fields onto
// visual channels, and composite views (layers and concatenations)
// that group other views. Resolve decides, for every channel a unit
// view encodes, which node of the tree owns the ScaleResolution for
// that channel. Views that share a resolution share a single domain,
// scale, and title.
//
// By default every channel is shared. Setting a channel's scale
// policy to Independent on a node gives each of the node's children
// (or the node itself, if it is a unit view) a resolution of its own.
package view

import (
	"github.com/razsultana/genome-spy/interval"
)

// A View is a node in a view tree. The set of View implementations is
// closed: *UnitView, *LayerView, and *ConcatView.
type View interface {
	// Name returns the view's name. Names are used in error
	// messages and lookups and should be unique within a tree.
	Name() string

	// Parent returns the view's parent, or nil for the root.
	Parent() View

	// Children returns the view's children in order.
	Children() []View

	// Resolution returns the scale resolution bound to channel
	// at this view, or nil if there is none. A composite view
	// returns a resolution only if it is the resolution's root.
	// A unit view returns the resolution its encoding of channel
	// was bound to during Resolve.
	Resolution(channel Channel) *ScaleResolution

	// Resolutions returns the non-empty resolutions rooted at
	// this view, in canonical channel order.
	Resolutions() []*ScaleResolution

	// Policy returns the policy configured at this view for
	// channel, or Shared if none is configured.
	Policy(kind ResolveKind, channel Channel) Policy

	base() *node
}

// A DataSource provides the data of a unit view. Resolutions query it
// lazily when computing domains.
type DataSource interface {
	// HasField reports whether field exists in the data.
	HasField(field string) bool

	// Extent returns the range of the finite values of a numeric
	// field. It returns false if the field has no finite values.
	Extent(field string) (interval.Interval, bool, error)

	// DistinctValues returns the distinct values of field, in
	// first-seen order.
	DistinctValues(field string) ([]string, error)
}

// node holds the state common to all views.
type node struct {
	name    string
	parent  View
	resolve ResolveConfig

	// scaleDefs holds resolution-level scale properties for
	// channels whose resolution is rooted here.
	scaleDefs map[Channel]*ScaleDef

	resolutions map[Channel]*ScaleResolution
}

func (n *node) base() *node { return n }

func (n *node) Name() string { return n.name }

func (n *node) Parent() View { return n.parent }

// SetResolve sets the resolve configuration of the view. It takes
// effect at the next Resolve.
func (n *node) SetResolve(c ResolveConfig) {
	n.resolve = c
}

// SetScale sets resolution-level scale properties for channel. They
// apply to the channel's resolution if it is rooted at this view, and
// take precedence over member properties.
func (n *node) SetScale(channel Channel, def *ScaleDef) {
	if n.scaleDefs == nil {
		n.scaleDefs = make(map[Channel]*ScaleDef)
	}
	n.scaleDefs[channel] = def
}

func (n *node) Policy(kind ResolveKind, channel Channel) Policy {
	return n.resolve.policy(kind, channel)
}

func (n *node) Resolution(channel Channel) *ScaleResolution {
	r := n.resolutions[channel.Primary()]
	if r == nil || r.Len() == 0 {
		return nil
	}
	return r
}

func (n *node) Resolutions() []*ScaleResolution {
	var out []*ScaleResolution
	for _, ch := range channelOrder {
		if r := n.Resolution(ch); r != nil && r.Channel() == ch {
			out = append(out, r)
		}
	}
	return out
}

// adopt makes parent the parent of children. It panics if any child
// already has a parent.
func adopt(parent View, children []View) {
	for _, c := range children {
		b := c.base()
		if b.parent != nil {
			panic("view " + c.Name() + " already has parent " + b.parent.Name())
		}
		b.parent = parent
	}
}

// UnitView is a leaf view that encodes fields of its data onto
// channels.
type UnitView struct {
	node
	data     DataSource
	encoding Encoding

	// bound records the resolution each encoded channel joined.
	bound map[Channel]*ScaleResolution
}

// NewUnit returns a unit view with the given data and encoding. data
// may be nil if every channel is constant.
func NewUnit(name string, data DataSource, encoding Encoding) *UnitView {
	return &UnitView{
		node:     node{name: name},
		data:     data,
		encoding: encoding,
	}
}

func (u *UnitView) Children() []View { return nil }

// Encoding returns the view's encoding.
func (u *UnitView) Encoding() Encoding { return u.encoding }

// Data returns the view's data source.
func (u *UnitView) Data() DataSource { return u.data }

// SetData replaces the view's data. Every resolution the view is a
// member of discards its cached domain, scale, and title.
func (u *UnitView) SetData(data DataSource) {
	u.data = data
	for _, ch := range channelOrder {
		if r := u.bound[ch]; r != nil {
			r.Invalidate()
		}
	}
}

func (u *UnitView) Resolution(channel Channel) *ScaleResolution {
	r := u.bound[channel]
	if r == nil {
		r = u.bound[channel.Primary()]
	}
	if r == nil || r.Len() == 0 {
		return nil
	}
	return r
}

// LayerView superimposes its children in a shared coordinate space.
type LayerView struct {
	node
	children []View
}

// NewLayer returns a layer of children.
func NewLayer(name string, children ...View) *LayerView {
	l := &LayerView{node: node{name: name}, children: children}
	adopt(l, children)
	return l
}

func (l *LayerView) Children() []View { return l.children }

// Direction is the tiling direction of a ConcatView.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Wrap
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "hconcat"
	case Vertical:
		return "vconcat"
	case Wrap:
		return "concat"
	}
	return "unknown"
}

// ConcatView tiles its children side by side.
type ConcatView struct {
	node
	dir      Direction
	children []View
}

// NewConcat returns a concatenation of children in direction dir.
func NewConcat(name string, dir Direction, children ...View) *ConcatView {
	c := &ConcatView{node: node{name: name}, dir: dir, children: children}
	adopt(c, children)
	return c
}

func (c *ConcatView) Children() []View { return c.children }

// Direction returns the tiling direction.
func (c *ConcatView) Direction() Direction { return c.dir }

// Walk calls fn for each view in the tree rooted at root, in
// pre-order. If fn returns an error, Walk stops and returns it.
func Walk(root View, fn func(View) error) error {
	if err := fn(root); err != nil {
		return err
	}
	for _, c := range root.Children() {
		if err := Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the view named name in the tree rooted at root, or nil.
func Find(root View, name string) View {
	var found View
	Walk(root, func(v View) error {
		if found == nil && v.Name() == name {
			found = v
		}
		return nil
	})
	return found
}
