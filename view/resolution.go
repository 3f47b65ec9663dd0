// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/razsultana/genome-spy/interval"
	"github.com/razsultana/genome-spy/scales"
)

// A Member is a unit view's encoding of a channel that contributes to
// a ScaleResolution.
type Member struct {
	View    *UnitView
	Channel Channel
	Def     *ChannelDef
}

// A Domain is the merged input domain of a ScaleResolution.
type Domain struct {
	Type Type

	// Interval is the domain of a continuous resolution. It is
	// meaningless if Empty is set.
	Interval interval.Interval

	// Empty indicates that no member of a continuous resolution
	// had any finite data.
	Empty bool

	// Categories is the domain of a discrete resolution, in
	// first-seen order.
	Categories []string
}

func (d *Domain) String() string {
	switch {
	case !d.Type.Continuous():
		return fmt.Sprintf("%q", d.Categories)
	case d.Empty:
		return "[]"
	}
	return d.Interval.String()
}

// A ScaleResolution is the shared scale of one channel across the
// member views bound to it. It is owned by the view at the root of
// the subtree that shares it.
//
// Domain, Scale, and Title are computed on first use and cached until
// members change or a member's data changes. They may be called
// concurrently once the tree is resolved.
type ScaleResolution struct {
	owner   View
	channel Channel

	// mu guards members and the cache.
	mu      sync.Mutex
	members []Member

	// dirty is set when members or their data change. The cached
	// values below are only valid while dirty is false.
	dirty      bool
	domain     *Domain
	scale      *scales.Scale
	title      string
	titleValid bool
}

func newScaleResolution(owner View, channel Channel) *ScaleResolution {
	return &ScaleResolution{owner: owner, channel: channel}
}

func (r *ScaleResolution) String() string {
	return fmt.Sprintf("%s@%s", r.channel, r.owner.Name())
}

// Owner returns the view at the root of the resolution.
func (r *ScaleResolution) Owner() View { return r.owner }

// Channel returns the primary channel of the resolution.
func (r *ScaleResolution) Channel() Channel { return r.channel }

// Len returns the number of members.
func (r *ScaleResolution) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Members returns the members in registration order.
func (r *ScaleResolution) Members() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Member(nil), r.members...)
}

// Type returns the field type of the resolution, which is the type of
// its first member. It returns "" if there are no members.
func (r *ScaleResolution) Type() Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.typeLocked()
}

func (r *ScaleResolution) typeLocked() Type {
	if len(r.members) == 0 {
		return ""
	}
	return r.members[0].Def.Type
}

// AddMember adds v's encoding def of channel to r and binds v's
// channel to r. It fails if def cannot share a scale with the existing
// members.
func (r *ScaleResolution) AddMember(v *UnitView, channel Channel, def *ChannelDef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if def.Constant() {
		return configErrorf(v, channel, "constant encoding cannot join a scale resolution")
	}
	if channel.Primary() != r.channel {
		return configErrorf(v, channel, "cannot join the %s resolution", r.channel)
	}
	if len(r.members) > 0 {
		first := r.members[0]
		if def.Type.Continuous() != first.Def.Type.Continuous() {
			return configErrorf(v, channel, "%s field %q cannot share a scale with %s field %q of view %q",
				def.Type, def.Field, first.Def.Type, first.Def.Field, first.View.Name())
		}
		if t := explicitScaleType(def); t != "" {
			for _, m := range r.members {
				if t2 := explicitScaleType(m.Def); t2 != "" && t2 != t {
					return configErrorf(v, channel, "scale type %q conflicts with scale type %q of view %q", t, t2, m.View.Name())
				}
			}
		}
	}
	r.members = append(r.members, Member{v, channel, def})
	if v.bound == nil {
		v.bound = make(map[Channel]*ScaleResolution)
	}
	v.bound[channel] = r
	r.dirty = true
	return nil
}

func explicitScaleType(def *ChannelDef) scales.Type {
	if def.Scale == nil {
		return ""
	}
	return def.Scale.Type
}

// RemoveMember removes every member contributed by v and unbinds v's
// channels from r. It reports whether r has no members left, in which
// case the owner discards r.
func (r *ScaleResolution) RemoveMember(v *UnitView) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	keep := r.members[:0]
	for _, m := range r.members {
		if m.View != v {
			keep = append(keep, m)
			continue
		}
		if v.bound[m.Channel] == r {
			delete(v.bound, m.Channel)
		}
	}
	for i := len(keep); i < len(r.members); i++ {
		r.members[i] = Member{}
	}
	if len(keep) != len(r.members) {
		r.members = keep
		r.dirty = true
	}
	return len(r.members) == 0
}

// Invalidate discards the cached domain, scale, and title.
func (r *ScaleResolution) Invalidate() {
	r.mu.Lock()
	r.dirty = true
	r.mu.Unlock()
}

func (r *ScaleResolution) refresh() {
	if r.dirty {
		r.domain, r.scale = nil, nil
		r.title, r.titleValid = "", false
		r.dirty = false
	}
}

// scaleDef returns the resolution-level scale properties from the
// owner, or nil.
func (r *ScaleResolution) scaleDef() *ScaleDef {
	return r.owner.base().scaleDefs[r.channel]
}

// Domain returns the merged domain of the members. It returns nil if
// r has no members.
//
// A continuous domain is the union of the members' extents, where a
// member's explicit scale domain replaces its data extent. A
// resolution-level domain replaces the union. A discrete domain lists
// the distinct values of all members in first-seen order.
//
// The result is cached; callers must not modify it.
func (r *ScaleResolution) Domain() (*Domain, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.domainLocked()
}

func (r *ScaleResolution) domainLocked() (*Domain, error) {
	if len(r.members) == 0 {
		return nil, nil
	}
	r.refresh()
	if r.domain != nil {
		return r.domain, nil
	}

	var d *Domain
	var err error
	if r.typeLocked().Continuous() {
		d, err = r.continuousDomain()
	} else {
		d, err = r.discreteDomain()
	}
	if err != nil {
		return nil, err
	}
	r.domain = d
	return d, nil
}

func (r *ScaleResolution) continuousDomain() (*Domain, error) {
	d := &Domain{Type: r.typeLocked(), Empty: true}
	zero := false

	if sd := r.scaleDef(); sd != nil && len(sd.Domain) > 0 {
		iv, err := domainInterval(sd.Domain)
		if err != nil {
			return nil, configErrorf(r.owner, r.channel, "%v", err)
		}
		for _, m := range r.members {
			if m.Def.explicitDomain() != nil {
				Warning.Printf("view %q: %s domain of view %q is overridden by resolution domain %v", r.owner.Name(), m.Channel, m.View.Name(), iv)
			}
		}
		d.Interval, d.Empty = iv, false
		return d, nil
	}

	for _, m := range r.members {
		if m.Def.Scale != nil && m.Def.Scale.Zero {
			zero = true
		}

		var iv interval.Interval
		if dom := m.Def.explicitDomain(); len(dom) > 0 {
			var err error
			iv, err = domainInterval(dom)
			if err != nil {
				return nil, configErrorf(m.View, m.Channel, "%v", err)
			}
		} else {
			if m.View.data == nil {
				return nil, &MissingError{m.View.Name(), m.Channel, m.Def.Field}
			}
			var ok bool
			var err error
			iv, ok, err = m.View.data.Extent(m.Def.Field)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}

		if d.Empty {
			d.Interval, d.Empty = iv, false
		} else {
			d.Interval = d.Interval.Merge(iv)
		}
	}

	if sd := r.scaleDef(); sd != nil && sd.Zero {
		zero = true
	}
	if zero {
		if d.Empty {
			d.Interval, d.Empty = interval.Point(0), false
		} else {
			d.Interval = d.Interval.Include(0)
		}
	}
	return d, nil
}

func (r *ScaleResolution) discreteDomain() (*Domain, error) {
	if sd := r.scaleDef(); sd != nil && len(sd.Domain) > 0 {
		return &Domain{Type: r.typeLocked(), Categories: slice.Nub(domainCategories(sd.Domain)).([]string)}, nil
	}

	var all []string
	for _, m := range r.members {
		if dom := m.Def.explicitDomain(); len(dom) > 0 {
			all = append(all, domainCategories(dom)...)
			continue
		}
		if m.View.data == nil {
			return nil, &MissingError{m.View.Name(), m.Channel, m.Def.Field}
		}
		vals, err := m.View.data.DistinctValues(m.Def.Field)
		if err != nil {
			return nil, err
		}
		all = append(all, vals...)
	}
	cats := []string{}
	if len(all) > 0 {
		cats = slice.Nub(all).([]string)
	}
	return &Domain{Type: r.typeLocked(), Categories: cats}, nil
}

// Scale returns the materialized scale of r. It returns nil if r has
// no members. The result is cached and shared by all members.
func (r *ScaleResolution) Scale() (*scales.Scale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.members) == 0 {
		return nil, nil
	}
	r.refresh()
	if r.scale != nil {
		return r.scale, nil
	}

	d, err := r.domainLocked()
	if err != nil {
		return nil, err
	}
	def := r.mergedScaleDef()

	cfg := scales.Config{
		Type:  def.Type,
		Nice:  def.Nice,
		Clamp: def.Clamp,
	}
	if cfg.Type == "" {
		cfg.Type = r.defaultScaleType()
	}
	if d.Type.Continuous() {
		cfg.Min, cfg.Max = math.NaN(), math.NaN()
		if !d.Empty {
			cfg.Min, cfg.Max = d.Interval.Lower, d.Interval.Upper
		}
	} else {
		cfg.Categories = d.Categories
	}
	if def.Range != nil {
		cfg.Ranger = scaleRanger(def.Range)
	} else {
		cfg.Ranger = scales.DefaultRanger(string(r.channel), !d.Type.Continuous())
	}

	s, err := scales.New(cfg)
	if err != nil {
		return nil, configErrorf(r.owner, r.channel, "%v", err)
	}
	r.scale = s
	return s, nil
}

func scaleRanger(rng []float64) gg.Ranger {
	return gg.NewFloatRanger(rng[0], rng[1])
}

func (r *ScaleResolution) defaultScaleType() scales.Type {
	if r.typeLocked().Continuous() {
		return scales.Linear
	}
	switch r.channel {
	case X, Y:
		return scales.Band
	}
	return scales.Ordinal
}

// mergedScaleDef combines the scale properties of all members in
// registration order with the resolution-level properties, which take
// precedence.
func (r *ScaleResolution) mergedScaleDef() ScaleDef {
	var out ScaleDef
	merge := func(sd *ScaleDef) {
		if sd == nil {
			return
		}
		if out.Type == "" {
			out.Type = sd.Type
		}
		if out.Range == nil {
			out.Range = sd.Range
		}
		out.Zero = out.Zero || sd.Zero
		out.Nice = out.Nice || sd.Nice
		out.Clamp = out.Clamp || sd.Clamp
	}
	if sd := r.scaleDef(); sd != nil {
		merge(sd)
	}
	for _, m := range r.members {
		merge(m.Def.Scale)
	}
	return out
}

// Title returns the title of r. The first member axis title wins,
// then the first member channel title. Otherwise the members' labels
// are joined with ", ", with runs of the same label collapsed. It
// returns false if r has no members.
func (r *ScaleResolution) Title() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.members) == 0 {
		return "", false
	}
	r.refresh()
	if r.titleValid {
		return r.title, true
	}

	title := ""
	for _, m := range r.members {
		if m.Def.Axis != nil && m.Def.Axis.Title != "" {
			title = m.Def.Axis.Title
			break
		}
	}
	if title == "" {
		for _, m := range r.members {
			if m.Def.Title != "" {
				title = m.Def.Title
				break
			}
		}
	}
	if title == "" {
		labels := make([]string, 0, len(r.members))
		for _, m := range r.members {
			l := m.Def.label()
			if l == "" || len(labels) > 0 && labels[len(labels)-1] == l {
				continue
			}
			labels = append(labels, l)
		}
		title = strings.Join(labels, ", ")
	}

	r.title, r.titleValid = title, true
	return title, true
}
