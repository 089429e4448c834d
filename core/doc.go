// Package core defines the redstone node model: frames, per-node
// signal state, the four node variants, and the linker that wires
// them into a circuit graph.
//
// What:
//
//   - Frame — a monotone logical time tag; the solver's clock.
//   - RedState — per-node mutable cell: power 0..16, a forced bit,
//     and the frame of the most recent write.
//   - Redstone — the common interface over the four variants:
//     Torch (inverting source), Dust (attenuating conductor),
//     Block (hard-power relay), Repeater (delayed amplifier with
//     lockable output).
//   - Arena — owns node storage; node identity is pointer identity
//     and stays stable for the arena's lifetime.
//   - Link / AddWeightedEdge / Lock — topology construction.
//   - Reachable — the identity-deduped breadth-first walk used for
//     constraint collection and component discovery.
//
// Why:
//
//   - Circuits are cyclic by nature (memory cells, feedback AND
//     gates); stable identity plus interior-mutable state lets the
//     solver iterate such graphs to a fixed point.
//   - Each variant carries only the adjacency it needs, so dispatch
//     rules read exactly like their in-game counterparts.
//
// Concurrency:
//
//	Single-threaded by design. Adjacency is written only while
//	building; RedState cells mutate only inside a dispatch. Nothing
//	in this package locks.
//
// Errors:
//
//	Topology preconditions (fan-out caps, occupied directed slots,
//	type mismatches) are programmer errors and panic with a
//	"core:"-prefixed message. There are no recoverable errors here.
package core
