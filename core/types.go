// Package core: node variants and the dispatch contracts.
//
// This file declares the Redstone interface, the Kind discriminator,
// the four concrete variants with their per-variant adjacency, and
// the Consequent/DispatchEvent records exchanged with the solver.
package core

// Topology caps, checked at link time. Violating a cap is a
// programmer error and panics.
const (
	// MaxTorchFanOut bounds a torch's outgoing edges.
	MaxTorchFanOut = 5

	// MaxUndirectedDegree bounds a dust's neighbor list and a block's
	// incoming/outgoing lists.
	MaxUndirectedDegree = 6

	// MaxLockNeighbors bounds the repeaters registered to lock one
	// repeater.
	MaxLockNeighbors = 2
)

// Repeater delay bounds, in frames.
const (
	MinRepeaterDelay Frame = 1
	MaxRepeaterDelay Frame = 4
)

// Kind discriminates the node variants.
type Kind uint8

const (
	// KindTorch is an inverting source: lit unless its incoming is on.
	KindTorch Kind = iota
	// KindDust is a passive conductor; power decays by source weight.
	KindDust
	// KindBlock is a solid block relaying hard power.
	KindBlock
	// KindRepeater is a delayed unidirectional amplifier.
	KindRepeater
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindTorch:
		return "torch"
	case KindDust:
		return "dust"
	case KindBlock:
		return "block"
	case KindRepeater:
		return "repeater"
	default:
		return "unknown"
	}
}

// DispatchEvent is the context handed to a node when it is
// re-evaluated: the solver's current frame and the node whose
// dispatch scheduled this one (nil for collection-seeded work).
type DispatchEvent struct {
	Frame     Frame
	CreatedBy Redstone
}

// Consequent is a follow-up work item emitted by a dispatch: Target
// must be re-evaluated no earlier than Earliest (the target's own
// FrameOffset is charged on top by the scheduler). CreatedBy records
// the emitting node for creator suppression.
type Consequent struct {
	Target    Redstone
	Earliest  Frame
	CreatedBy Redstone
}

// Dispatchable is the contract every node variant implements for the
// solver.
type Dispatchable interface {
	// Dispatch recomputes the node's RedState from its inputs at the
	// event's frame and returns the work items it provokes. A node
	// with nothing to recompute returns nil and leaves its state
	// untouched.
	Dispatch(ev DispatchEvent) []Consequent

	// FrameOffset is the extra latency charged before a scheduled
	// re-evaluation of this node becomes eligible.
	FrameOffset() Frame
}

// Redstone is the common interface over the four node variants.
// Node identity is pointer identity: interface values of the same
// concrete node compare equal, and all visited-sets and the
// creator-suppression check rely on that.
type Redstone interface {
	Dispatchable

	// Name returns the diagnostic label given at creation.
	// Uniqueness is not required.
	Name() string

	// Kind returns the variant discriminator.
	Kind() Kind

	// RedState returns the node's signal cell. The returned pointer
	// stays valid for the node's lifetime.
	RedState() *RedState

	// Connections enumerates every node adjacent to this one for the
	// purpose of reachability: the edges walked during constraint
	// collection and component discovery.
	Connections() []Redstone
}

// node carries the fields shared by every variant.
type node struct {
	name  string
	state RedState
}

func (n *node) Name() string        { return n.name }
func (n *node) RedState() *RedState { return &n.state }

// Torch is an inverting source. With no incoming edge it emits
// SourcePower unconditionally; with one, it emits SourcePower exactly
// when the incoming node is off.
type Torch struct {
	node
	incoming Redstone
	outgoing []Redstone
}

// Kind returns KindTorch.
func (t *Torch) Kind() Kind { return KindTorch }

// Incoming returns the node driving this torch, or nil.
func (t *Torch) Incoming() Redstone { return t.incoming }

// Connections enumerates the incoming edge (if any) and all outgoing
// edges.
func (t *Torch) Connections() []Redstone {
	conns := make([]Redstone, 0, len(t.outgoing)+1)
	if t.incoming != nil {
		conns = append(conns, t.incoming)
	}
	return append(conns, t.outgoing...)
}

// WeightedEdge attaches an emitting source to a dust at an integer
// attenuation weight. The dust's power is the best of
// source.power − weight across sources settled by the current frame.
type WeightedEdge struct {
	Weight uint8
	Source Redstone
}

// Dust is a passive conductor. Neighbors receive propagation
// consequents; power itself is computed from the weighted source
// table, never from neighbors.
type Dust struct {
	node
	neighbors []Redstone
	sources   []WeightedEdge
}

// Kind returns KindDust.
func (d *Dust) Kind() Kind { return KindDust }

// Sources returns the weighted source table in insertion order.
func (d *Dust) Sources() []WeightedEdge { return d.sources }

// Connections enumerates all neighbors and all weighted sources.
func (d *Dust) Connections() []Redstone {
	conns := make([]Redstone, 0, len(d.neighbors)+len(d.sources))
	conns = append(conns, d.neighbors...)
	for _, e := range d.sources {
		conns = append(conns, e.Source)
	}
	return conns
}

// Block is a solid block. It becomes forced while any incoming node
// is on, and conducts SourcePower exactly while some incoming node is
// itself forced.
type Block struct {
	node
	incoming []Redstone
	outgoing []Redstone
}

// Kind returns KindBlock.
func (b *Block) Kind() Kind { return KindBlock }

// Connections enumerates all incoming and outgoing edges.
func (b *Block) Connections() []Redstone {
	conns := make([]Redstone, 0, len(b.incoming)+len(b.outgoing))
	conns = append(conns, b.incoming...)
	return append(conns, b.outgoing...)
}

// Repeater is a delayed unidirectional amplifier with single incoming
// and outgoing slots. While any registered lock neighbor is on, the
// repeater's output holds its previous state.
type Repeater struct {
	node
	delay     Frame
	incoming  Redstone
	outgoing  Redstone
	neighbors []Redstone
}

// Kind returns KindRepeater.
func (r *Repeater) Kind() Kind { return KindRepeater }

// Delay returns the configured delay in frames, 1..4.
func (r *Repeater) Delay() Frame { return r.delay }

// Connections enumerates the incoming and outgoing slots and the lock
// neighbors, so that a walk reaching a locked repeater also discovers
// its lockers.
func (r *Repeater) Connections() []Redstone {
	conns := make([]Redstone, 0, len(r.neighbors)+2)
	if r.incoming != nil {
		conns = append(conns, r.incoming)
	}
	if r.outgoing != nil {
		conns = append(conns, r.outgoing)
	}
	return append(conns, r.neighbors...)
}

// undirected reports whether linking from r registers the reverse
// direction on the target as well.
func undirected(r Redstone) bool {
	k := r.Kind()
	return k == KindDust || k == KindBlock
}
