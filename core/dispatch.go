// Package core: per-variant dispatch rules.
//
// A dispatch recomputes one node's RedState from its inputs at the
// current frame and names the nodes that must be revisited because of
// it. The solver decides whether those consequents actually enqueue —
// a dispatch that left the state unchanged provokes nothing.
package core

// FrameOffset of a torch: switching takes one frame, which is also
// what delays the initial seed dispatch out of frame 0.
func (t *Torch) FrameOffset() Frame { return 1 }

// Dispatch inverts the incoming signal: SourcePower when the incoming
// node is off or absent, 0 when it is on. Every outgoing edge is
// scheduled at the current frame.
func (t *Torch) Dispatch(ev DispatchEvent) []Consequent {
	power := SourcePower
	if t.incoming != nil && t.incoming.RedState().IsOn() {
		power = 0
	}
	t.state.SetPower(power, ev.Frame)

	consequents := make([]Consequent, 0, len(t.outgoing))
	for _, out := range t.outgoing {
		consequents = append(consequents, Consequent{Target: out, Earliest: ev.Frame, CreatedBy: t})
	}
	return consequents
}

// FrameOffset of a dust: conduction is instantaneous.
func (d *Dust) FrameOffset() Frame { return 0 }

// Dispatch recomputes the dust's power from its settled sources: the
// strongest source.power − weight, floored at zero, first source
// winning ties. Sources whose own dispatch has not happened yet are
// skipped, and with no settled source at all the dispatch is a no-op
// — the dust is still waiting for upstream work.
//
// Neighbors are scheduled at the current frame, except the node whose
// dispatch caused this one, which breaks immediate ping-pong between
// adjacent dusts.
func (d *Dust) Dispatch(ev DispatchEvent) []Consequent {
	best, found := uint8(0), false
	for _, e := range d.sources {
		src := e.Source.RedState()
		if !src.settledBy(ev.Frame) {
			continue
		}
		p := attenuate(src.Power(), e.Weight)
		if !found || p > best {
			best, found = p, true
		}
	}
	if !found {
		return nil
	}
	d.state.SetPower(best, ev.Frame)

	consequents := make([]Consequent, 0, len(d.neighbors))
	for _, n := range d.neighbors {
		if n == ev.CreatedBy {
			continue
		}
		consequents = append(consequents, Consequent{Target: n, Earliest: ev.Frame, CreatedBy: d})
	}
	return consequents
}

// FrameOffset of a block: relaying is instantaneous.
func (b *Block) FrameOffset() Frame { return 0 }

// Dispatch marks the block forced while any incoming node is on, and
// conducts SourcePower exactly while some incoming node is itself
// forced. Outgoing edges are scheduled at the current frame, creator
// excluded.
func (b *Block) Dispatch(ev DispatchEvent) []Consequent {
	hasPower, hasForced := false, false
	for _, in := range b.incoming {
		st := in.RedState()
		hasPower = hasPower || st.IsOn()
		hasForced = hasForced || st.IsForced()
	}

	b.state.SetForced(hasPower, ev.Frame)
	if hasForced {
		b.state.SetPower(SourcePower, ev.Frame)
	} else {
		b.state.SetPower(0, ev.Frame)
	}

	consequents := make([]Consequent, 0, len(b.outgoing))
	for _, out := range b.outgoing {
		if out == ev.CreatedBy {
			continue
		}
		consequents = append(consequents, Consequent{Target: out, Earliest: ev.Frame, CreatedBy: b})
	}
	return consequents
}

// FrameOffset of a repeater: its configured delay.
func (r *Repeater) FrameOffset() Frame { return r.delay }

// Dispatch re-drives the output from the incoming signal unless a
// lock neighbor is on, in which case the output holds whatever it
// last drove. A repeater with no incoming stays dark; it is never an
// autonomous source.
func (r *Repeater) Dispatch(ev DispatchEvent) []Consequent {
	for _, n := range r.neighbors {
		if n.RedState().IsOn() {
			return nil
		}
	}
	if r.incoming == nil {
		return nil
	}

	on := r.incoming.RedState().IsOn()
	r.state.SetForced(on, ev.Frame)
	if on {
		r.state.SetPower(SourcePower, ev.Frame)
	} else {
		r.state.SetPower(0, ev.Frame)
	}

	if r.outgoing == nil {
		return nil
	}
	return []Consequent{{Target: r.outgoing, Earliest: ev.Frame, CreatedBy: r}}
}

// attenuate subtracts weight from power, saturating at zero.
func attenuate(power, weight uint8) uint8 {
	if power <= weight {
		return 0
	}
	return power - weight
}
