// Package core: topology construction.
//
// Link, AddWeightedEdge, and Lock are the only ways edges enter the
// graph. All preconditions here guard caller bugs — wiring past a
// fan-out cap or into an occupied directed slot leaves the graph
// meaningless — so violations abort instead of returning errors.
package core

import "fmt"

// Link wires an edge from here to there.
//
// The source side records an outgoing reference; torch, block, and
// repeater targets record the matching incoming reference. Dust
// targets have no incoming list: they mirror the edge into their
// neighbor list only when the source is itself undirected (dust or
// block), and record nothing otherwise — torches and repeaters drive
// dust one way.
//
// Panics on fan-out/fan-in cap violations and on linking into an
// occupied single slot (torch incoming, repeater incoming/outgoing).
// Complexity: O(1).
func Link(here, there Redstone) {
	switch h := here.(type) {
	case *Torch:
		if len(h.outgoing) >= MaxTorchFanOut {
			panic(fmt.Sprintf("core: torch %q exceeds %d outgoing edges", h.name, MaxTorchFanOut))
		}
		h.outgoing = append(h.outgoing, there)
	case *Dust:
		if len(h.neighbors) >= MaxUndirectedDegree {
			panic(fmt.Sprintf("core: dust %q exceeds %d neighbors", h.name, MaxUndirectedDegree))
		}
		h.neighbors = append(h.neighbors, there)
	case *Block:
		if len(h.outgoing) >= MaxUndirectedDegree {
			panic(fmt.Sprintf("core: block %q exceeds %d outgoing edges", h.name, MaxUndirectedDegree))
		}
		h.outgoing = append(h.outgoing, there)
	case *Repeater:
		if h.outgoing != nil {
			panic(fmt.Sprintf("core: repeater %q outgoing slot already wired", h.name))
		}
		h.outgoing = there
	default:
		panic(fmt.Sprintf("core: unknown source variant %T", here))
	}

	switch t := there.(type) {
	case *Torch:
		if t.incoming != nil {
			panic(fmt.Sprintf("core: torch %q incoming slot already wired", t.name))
		}
		t.incoming = here
	case *Dust:
		if undirected(here) {
			if len(t.neighbors) >= MaxUndirectedDegree {
				panic(fmt.Sprintf("core: dust %q exceeds %d neighbors", t.name, MaxUndirectedDegree))
			}
			t.neighbors = append(t.neighbors, here)
		}
	case *Block:
		if len(t.incoming) >= MaxUndirectedDegree {
			panic(fmt.Sprintf("core: block %q exceeds %d incoming edges", t.name, MaxUndirectedDegree))
		}
		t.incoming = append(t.incoming, here)
	case *Repeater:
		if t.incoming != nil {
			panic(fmt.Sprintf("core: repeater %q incoming slot already wired", t.name))
		}
		t.incoming = here
	default:
		panic(fmt.Sprintf("core: unknown target variant %T", there))
	}
}

// AddWeightedEdge appends (weight, source) to the dust's source
// table. The table feeds the dust's power computation; neighbors feed
// only propagation. Sources with differing weights may repeat; the
// dispatch picks the strongest effective signal.
//
// Panics unless dust is a Dust and source is anything but a Dust —
// dust-to-dust power transfer goes through neighbor propagation, not
// the source table.
// Complexity: O(1).
func AddWeightedEdge(dust, source Redstone, weight uint8) {
	d, ok := dust.(*Dust)
	if !ok {
		panic(fmt.Sprintf("core: weighted edge target %q must be a dust, got %s", dust.Name(), dust.Kind()))
	}
	if source.Kind() == KindDust {
		panic(fmt.Sprintf("core: weighted edge source %q cannot be a dust", source.Name()))
	}
	d.sources = append(d.sources, WeightedEdge{Weight: weight, Source: source})
}

// Lock registers other as a lock neighbor of repeater: while other is
// on, the repeater's output holds. Only repeaters lock repeaters.
//
// Panics on a type mismatch or when the repeater already carries
// MaxLockNeighbors lock neighbors.
// Complexity: O(1).
func Lock(repeater, other Redstone) {
	r, ok := repeater.(*Repeater)
	if !ok {
		panic(fmt.Sprintf("core: lock target %q must be a repeater, got %s", repeater.Name(), repeater.Kind()))
	}
	if _, ok = other.(*Repeater); !ok {
		panic(fmt.Sprintf("core: locking neighbor %q must be a repeater, got %s", other.Name(), other.Kind()))
	}
	if len(r.neighbors) >= MaxLockNeighbors {
		panic(fmt.Sprintf("core: repeater %q exceeds %d lock neighbors", r.name, MaxLockNeighbors))
	}
	r.neighbors = append(r.neighbors, other)
}
