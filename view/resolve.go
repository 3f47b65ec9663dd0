// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

// Resolve builds the scale resolutions of the tree rooted at root.
//
// Any resolutions from an earlier Resolve of the tree are torn down
// first. Resolve then checks every resolve configuration and encoding
// and visits the unit views in pre-order. For each channel a unit view
// encodes with a field, Resolve finds the channel's resolution root by
// climbing from the unit view for as long as both the current view and
// its parent have a Shared scale policy for the channel. The unit view
// joins the resolution owned by that root, which is created on first
// use. Members are therefore registered in pre-order, and within a
// unit view in canonical channel order.
//
// Resolve is all-or-nothing: if it fails, the tree is left with no
// resolutions.
func Resolve(root View) error {
	Teardown(root)
	if err := Walk(root, check); err != nil {
		return err
	}
	err := Walk(root, func(v View) error {
		if u, ok := v.(*UnitView); ok {
			return bind(u)
		}
		return nil
	})
	if err == nil {
		err = Walk(root, checkScaleDefs)
	}
	if err != nil {
		Teardown(root)
		return err
	}
	return nil
}

// resolutionRoot returns the view that owns the resolution of channel
// for the unit view u.
func resolutionRoot(u *UnitView, channel Channel) View {
	var v View = u
	for {
		p := v.Parent()
		if p == nil || v.Policy(ScaleKind, channel) != Shared || p.Policy(ScaleKind, channel) != Shared {
			return v
		}
		v = p
	}
}

func bind(u *UnitView) error {
	for _, ch := range channelOrder {
		def := u.encoding[ch]
		if def == nil {
			continue
		}
		if def.Constant() {
			if def.Scale != nil || def.Axis != nil {
				Warning.Printf("view %q: scale and axis properties of constant %s are ignored", u.Name(), ch)
			}
			continue
		}
		primary := ch.Primary()
		root := resolutionRoot(u, primary)
		rb := root.base()
		r := rb.resolutions[primary]
		if r == nil {
			if rb.resolutions == nil {
				rb.resolutions = make(map[Channel]*ScaleResolution)
			}
			r = newScaleResolution(root, primary)
			rb.resolutions[primary] = r
		}
		if err := r.AddMember(u, ch, def); err != nil {
			return err
		}
	}
	return nil
}

// Teardown removes every member from every resolution in the tree
// rooted at root and discards the resolutions. After Teardown, no view
// in the tree has a resolution.
func Teardown(root View) {
	Walk(root, func(v View) error {
		u, ok := v.(*UnitView)
		if !ok {
			return nil
		}
		for _, ch := range channelOrder {
			r := u.bound[ch]
			if r == nil {
				continue
			}
			if r.RemoveMember(u) {
				delete(r.owner.base().resolutions, r.channel)
			}
		}
		u.bound = nil
		return nil
	})
	// Drop anything left behind, such as a resolution created
	// by a bind that then failed.
	Walk(root, func(v View) error {
		v.base().resolutions = nil
		return nil
	})
}

// check validates the resolve configuration and encoding of v.
func check(v View) error {
	b := v.base()
	if err := b.resolve.check(v); err != nil {
		return err
	}
	for ch, sd := range b.scaleDefs {
		if !ch.Valid() {
			return configErrorf(v, ch, "unknown channel in scale properties")
		}
		if ch != ch.Primary() {
			return configErrorf(v, ch, "scale properties belong to channel %s", ch.Primary())
		}
		if sd == nil {
			continue
		}
		if sd.Type != "" && !sd.Type.Valid() {
			return configErrorf(v, ch, "unknown scale type %q", sd.Type)
		}
	}

	u, ok := v.(*UnitView)
	if !ok {
		return nil
	}
	for _, ch := range sortedEncoding(u.encoding) {
		def := u.encoding[ch]
		if !ch.Valid() {
			return configErrorf(v, ch, "unknown channel")
		}
		if def == nil {
			continue
		}
		if def.Constant() {
			if def.Value == nil {
				return configErrorf(v, ch, "encoding has neither field nor value")
			}
			continue
		}
		if def.Value != nil {
			return configErrorf(v, ch, "encoding has both field %q and value %v", def.Field, def.Value)
		}
		if def.Type == "" {
			return configErrorf(v, ch, "field %q has no type", def.Field)
		}
		if !def.Type.Valid() {
			return configErrorf(v, ch, "unknown type %q", def.Type)
		}
		if def.Scale != nil {
			if err := def.Scale.check(def.Type); err != nil {
				return configErrorf(v, ch, "%v", err)
			}
		}
		if def.Scale == nil || len(def.Scale.Domain) == 0 {
			if u.data == nil || !u.data.HasField(def.Field) {
				return &MissingError{v.Name(), ch, def.Field}
			}
		}
	}
	return nil
}

// checkScaleDefs validates resolution-level scale properties against
// the type of the resolution they apply to.
func checkScaleDefs(v View) error {
	b := v.base()
	for _, ch := range channelOrder {
		sd := b.scaleDefs[ch]
		if sd == nil {
			continue
		}
		r := b.Resolution(ch)
		if r == nil {
			Warning.Printf("view %q: scale properties for %s apply to no resolution", v.Name(), ch)
			continue
		}
		if err := sd.check(r.Type()); err != nil {
			return configErrorf(v, ch, "%v", err)
		}
	}
	return nil
}

// sortedEncoding returns the channels of e in canonical order followed
// by any unknown channels.
func sortedEncoding(e Encoding) []Channel {
	var out []Channel
	for _, ch := range channelOrder {
		if _, ok := e[ch]; ok {
			out = append(out, ch)
		}
	}
	for ch := range e {
		if !ch.Valid() {
			out = append(out, ch)
		}
	}
	return out
}
