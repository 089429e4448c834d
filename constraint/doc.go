// Package constraint collects a circuit's work set and solves it to
// quiescence with a frame-aware fixed-point loop.
//
// What:
//
//   - Collect(seed) walks the connected component around seed and
//     seeds one constraint per torch — torches are the only
//     autonomous sources; every other node enters the work set as a
//     consequent of someone else's dispatch.
//   - Solve() runs the two-queue loop: a primary queue drained with
//     depth-first (LIFO) consequent ordering inside one frame, and a
//     deferral queue holding work whose frame has not come yet. The
//     frame never advances while progress is possible; when the
//     primary queue drains it jumps straight to the earliest
//     dispatchable frame among the deferred items.
//   - A dispatch whose state did not change provokes nothing: that
//     gate is what drives cyclic circuits (memory cells, feedback
//     gates) to a fixed point.
//
// Why two queues:
//
//	Deferral is data-driven suspension. Keeping not-yet-eligible work
//	on its own queue means the solver never idles through empty
//	frames and the frame jump costs one pass over the deferred items.
//
// Determinism:
//
//	Given the same topology and seed, runs are identical: collection
//	order is the breadth-first walk, consequents push in their
//	emission order, deferrals retry in FIFO order, and dust source
//	tables break ties by insertion order.
//
// Options:
//
//   - WithMaxSteps(n): abort with ErrNonConvergent after n
//     dispatches — a safety net against graph patterns outside the
//     termination argument.
//   - WithContext(ctx): cancellation, checked only between frame
//     advances, never mid-frame.
//   - WithEventLog(): record an append-only diagnostic trace of
//     deferrals, dispatches, queued consequents, and frame advances.
//   - WithLogger(l): mirror the same events to slog at debug level.
//
// Errors:
//
//   - ErrNilSeed: Collect was handed a nil node.
//   - ErrOptionViolation: an invalid option value was supplied.
//   - ErrNonConvergent: the WithMaxSteps budget ran out.
package constraint
