package constraint

import (
	"github.com/katalvlaran/redstone/core"
)

// constraint is one scheduler work item: a node to re-evaluate, the
// earliest frame the item may fire, and the node whose dispatch
// created it (nil for collection seeds).
type constraint struct {
	earliest  core.Frame
	node      core.Redstone
	createdBy core.Redstone
}

// dispatchable reports whether the item may fire at current: the
// item's earliest frame plus the node's own frame offset has come.
func (c *constraint) dispatchable(current core.Frame) bool {
	return c.earliest+c.node.FrameOffset() <= current
}

// ConstraintGraph holds the initial work set of one connected
// component and the diagnostic trace of solving it.
type ConstraintGraph struct {
	seeds  []*constraint
	opts   Options
	events []Event
}

// Collect walks the connected component around seed breadth-first
// and seeds one constraint, at frame 0, per torch it meets. Other
// variants are not seeded: they enter the work set only as
// consequents of upstream dispatches.
//
// Disjoint components need one Collect each, seeded from any of
// their nodes.
//
// Returns ErrNilSeed for a nil seed and ErrOptionViolation for an
// invalid option.
// Complexity: O(V + E) time, O(V) memory.
func Collect(seed core.Redstone, opts ...Option) (*ConstraintGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if seed == nil {
		return nil, ErrNilSeed
	}

	cg := &ConstraintGraph{opts: o}
	for _, r := range core.Reachable(seed) {
		if r.Kind() == core.KindTorch {
			cg.seeds = append(cg.seeds, &constraint{node: r})
		}
	}

	return cg, nil
}

// Len returns the size of the initial work set: the number of torches
// found during collection.
// Complexity: O(1).
func (cg *ConstraintGraph) Len() int { return len(cg.seeds) }

// Events returns the diagnostic trace recorded so far. Empty unless
// the graph was collected with WithEventLog.
// Complexity: O(1).
func (cg *ConstraintGraph) Events() []Event { return cg.events }

// record appends e to the trace and mirrors it to the logger, if
// either is enabled. Recording never influences control flow.
func (cg *ConstraintGraph) record(e Event) {
	if cg.opts.record {
		cg.events = append(cg.events, e)
	}
	if cg.opts.Logger != nil {
		cg.opts.Logger.Debug(e.Kind.String(),
			"node", e.Node,
			"frame", uint64(e.Frame),
			"was_on", e.WasOn,
			"now_on", e.NowOn,
			"queued", e.Queued,
		)
	}
}
