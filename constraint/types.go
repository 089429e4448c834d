// Package constraint: options, sentinel errors, and the diagnostic
// event model.
package constraint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/redstone/core"
)

// Sentinel errors for collection and solving.
var (
	// ErrNilSeed is returned when Collect is handed a nil node.
	ErrNilSeed = errors.New("constraint: seed node is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("constraint: invalid option supplied")

	// ErrNonConvergent is returned when the dispatch budget set by
	// WithMaxSteps runs out before the circuit settles.
	ErrNonConvergent = errors.New("constraint: solve exceeded dispatch budget")
)

// Option configures solving via functional arguments. An invalid
// option is recorded and surfaced as ErrOptionViolation by Collect.
type Option func(*Options)

// Options holds the tunable parameters of a solver run.
type Options struct {
	// Ctx allows cancellation; it is consulted only between frame
	// advances, so a frame always completes once entered.
	Ctx context.Context

	// MaxSteps bounds the total number of dispatches; 0 disables the
	// bound.
	MaxSteps int

	// Logger, when non-nil, receives every diagnostic event at debug
	// level.
	Logger *slog.Logger

	// record enables the in-memory event log.
	record bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, no dispatch bound, no event log, no logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation between frames.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the number of dispatches per Solve call.
//
//	n > 0:  abort with ErrNonConvergent after n dispatches
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithEventLog records an append-only diagnostic trace retrievable
// via Events. The log never influences control flow.
func WithEventLog() Option {
	return func(o *Options) { o.record = true }
}

// WithLogger mirrors diagnostic events to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// EventKind discriminates diagnostic events.
type EventKind uint8

const (
	// EventDeferred: a work item was not yet eligible and moved to
	// the deferral queue.
	EventDeferred EventKind = iota
	// EventDispatched: a node was re-evaluated.
	EventDispatched
	// EventQueued: a state-changing dispatch enqueued consequents.
	EventQueued
	// EventFrameAdvanced: the primary queue drained and the frame
	// jumped to the earliest dispatchable deferred item.
	EventFrameAdvanced
)

// String returns the lowercase event name.
func (k EventKind) String() string {
	switch k {
	case EventDeferred:
		return "deferred"
	case EventDispatched:
		return "dispatched"
	case EventQueued:
		return "queued"
	case EventFrameAdvanced:
		return "frame-advanced"
	default:
		return "unknown"
	}
}

// Event is one entry of the diagnostic trace.
type Event struct {
	// Kind discriminates the entry.
	Kind EventKind

	// Node is the subject's diagnostic name; empty for frame advances.
	Node string

	// Frame is the solver's current frame when the event fired (the
	// new frame, for advances).
	Frame core.Frame

	// WasOn and NowOn snapshot the on-bit around a dispatch.
	WasOn, NowOn bool

	// Queued counts the consequents enqueued by a state-changing
	// dispatch.
	Queued int
}

// String renders the entry for humans:
//
//	torch_a dispatched at frame 1: false -> true
func (e Event) String() string {
	switch e.Kind {
	case EventDeferred:
		return fmt.Sprintf("%s deferred at frame %d", e.Node, e.Frame)
	case EventDispatched:
		return fmt.Sprintf("%s dispatched at frame %d: %t -> %t", e.Node, e.Frame, e.WasOn, e.NowOn)
	case EventQueued:
		return fmt.Sprintf("%s queued %d consequents at frame %d", e.Node, e.Queued, e.Frame)
	case EventFrameAdvanced:
		return fmt.Sprintf("advanced to frame %d", e.Frame)
	default:
		return "unknown event"
	}
}
