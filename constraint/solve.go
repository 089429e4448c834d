package constraint

import (
	"fmt"

	"github.com/katalvlaran/redstone/core"
)

// Solve runs the fixed-point loop to quiescence, mutating node
// states in place. It is synchronous and single-threaded: control
// returns only at the fixed point (or on a budget/cancellation
// error), and every dispatch observes a consistent snapshot of all
// node states.
//
// The loop per frame:
//
//  1. Pop the primary queue front. An item whose frame has not come
//     moves to the deferral queue (FIFO).
//  2. Dispatch the node. If its state changed, push its consequents
//     onto the queue front (LIFO), giving depth-first propagation
//     within the frame. If not, discard them — that gate is what
//     terminates cycles.
//  3. When the primary queue drains with items deferred, jump the
//     frame to the earliest dispatchable deferred item and swap the
//     queues.
//
// Solve terminates when both queues are empty. Solving an already
// settled graph performs zero state-changing dispatches, so calling
// Solve again is harmless.
//
// Returns ErrNonConvergent when the WithMaxSteps budget runs out,
// or the context's error when cancellation fires between frames.
func (cg *ConstraintGraph) Solve() error {
	queue := make([]*constraint, len(cg.seeds))
	copy(queue, cg.seeds)

	var (
		deferred []*constraint
		frame    core.Frame
		steps    int
	)

	for len(queue) > 0 {
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]

			if !c.dispatchable(frame) {
				cg.record(Event{Kind: EventDeferred, Node: c.node.Name(), Frame: frame})
				deferred = append(deferred, c)
				continue
			}

			if cg.opts.MaxSteps > 0 && steps >= cg.opts.MaxSteps {
				return fmt.Errorf("%w: %d dispatches reached at frame %d",
					ErrNonConvergent, steps, frame)
			}
			steps++

			prev := c.node.RedState().View()
			consequents := c.node.Dispatch(core.DispatchEvent{Frame: frame, CreatedBy: c.createdBy})
			next := c.node.RedState().View()

			cg.record(Event{
				Kind:  EventDispatched,
				Node:  c.node.Name(),
				Frame: frame,
				WasOn: prev.IsOn(),
				NowOn: next.IsOn(),
			})

			if prev == next {
				continue
			}
			cg.record(Event{Kind: EventQueued, Node: c.node.Name(), Frame: frame, Queued: len(consequents)})
			for _, k := range consequents {
				queue = pushFront(queue, &constraint{
					earliest:  k.Earliest,
					node:      k.Target,
					createdBy: k.CreatedBy,
				})
			}
		}

		// The queue drained, but some items may await a later frame.
		// Jump straight to the earliest one can fire; walking idle
		// frames one by one would only burn time.
		if len(deferred) > 0 {
			if err := cg.opts.Ctx.Err(); err != nil {
				return err
			}
			frame = earliestDispatchable(deferred)
			cg.record(Event{Kind: EventFrameAdvanced, Frame: frame})
		}
		queue, deferred = deferred, nil
	}

	return nil
}

// pushFront prepends c to the queue.
func pushFront(queue []*constraint, c *constraint) []*constraint {
	queue = append(queue, nil)
	copy(queue[1:], queue)
	queue[0] = c
	return queue
}

// earliestDispatchable returns the smallest eligible frame among the
// deferred items: min over earliest + frame offset.
func earliestDispatchable(deferred []*constraint) core.Frame {
	min := deferred[0].earliest + deferred[0].node.FrameOffset()
	for _, c := range deferred[1:] {
		if at := c.earliest + c.node.FrameOffset(); at < min {
			min = at
		}
	}
	return min
}
