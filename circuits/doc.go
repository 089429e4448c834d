// Package circuits assembles canonical redstone devices into a
// caller's arena: wire runs, logic gates, memory cells, and locked
// repeater pairs.
//
// What:
//
//   - Wire(n) — a torch driving a run of n dusts, signal decaying one
//     unit per cell.
//   - AndGate(left, right) — the classic two-torch-arm AND with an
//     inverting output torch.
//   - XorGate(left, right) — XOR built from two inverter columns and
//     a shared AND arm.
//   - MemoryCell() — two cross-coupled block/torch loops; whichever
//     side the solver reaches first latches on.
//   - LockedPair(throughputDelay, lockerDelay) — a repeater on a dust
//     bus with a second repeater wired to lock it; which one wins is
//     purely a matter of their delays.
//   - RepeaterRelay(delay) — a repeater restoring full strength
//     behind a hard-powered block.
//
// Why:
//
//	Tests, examples, and the redsim CLI all exercise the same
//	devices; building each by hand in three places invites drift.
//	Constructors validate their parameters and return the named
//	nodes, ready for constraint.Collect.
//
// Errors:
//
//   - ErrNilArena: no arena to build into.
//   - ErrTooFewNodes: a size parameter below the device's minimum.
//   - ErrDelayRange: a repeater delay outside [1, 4].
package circuits
