package core

// Frame is a monotone logical time tag. The solver processes all
// eligible work at one frame before jumping to the next; repeater
// delays and the torch switch-off latency are expressed in frames.
// Frames add with ordinary integer addition.
type Frame uint64

// Power levels. Signal strength decays from SourcePower at an
// emitting node down to zero across weighted dust edges; MaxDustPower
// is the strongest signal a dust can carry.
const (
	// SourcePower is the magnitude of a direct source (lit torch,
	// hard-powered block, driving repeater).
	SourcePower uint8 = 16

	// MaxDustPower is the strongest attenuated signal a dust can hold.
	MaxDustPower uint8 = 15
)

// RedState is the mutable signal cell carried by every node.
//
// It is shared for reads by every neighbor's dispatch and written
// only by the dispatch of the owning node. Every write stamps the
// frame it happened in; dust dispatches use that stamp to consider
// only sources that have settled by the current frame.
type RedState struct {
	power        uint8
	forced       bool
	updatedFrame Frame
	updated      bool
}

// Power returns the current signal strength, 0..16.
// Complexity: O(1).
func (s *RedState) Power() uint8 { return s.power }

// IsForced reports whether the node is hard-powered. A solid block
// conducts a strong signal while forced even when its power is 0.
// Complexity: O(1).
func (s *RedState) IsForced() bool { return s.forced }

// IsOn reports whether the node emits any signal: power > 0 or forced.
// Complexity: O(1).
func (s *RedState) IsOn() bool { return s.power > 0 || s.forced }

// IsOff is the negation of IsOn.
// Complexity: O(1).
func (s *RedState) IsOff() bool { return !s.IsOn() }

// UpdatedFrame returns the frame of the most recent write, and false
// if the cell has never been written.
// Complexity: O(1).
func (s *RedState) UpdatedFrame() (Frame, bool) {
	return s.updatedFrame, s.updated
}

// SetPower assigns the power level and stamps the write frame.
// Two writes in the same frame overwrite; last write wins.
// Complexity: O(1).
func (s *RedState) SetPower(power uint8, frame Frame) {
	s.power = power
	s.updatedFrame = frame
	s.updated = true
}

// SetForced assigns the forced bit and stamps the write frame.
// Complexity: O(1).
func (s *RedState) SetForced(forced bool, frame Frame) {
	s.forced = forced
	s.updatedFrame = frame
	s.updated = true
}

// View snapshots the observable state as a comparable value. The
// write frame is metadata and deliberately excluded: the solver's
// change gate compares views before and after a dispatch.
// Complexity: O(1).
func (s *RedState) View() StateView {
	return StateView{Power: s.power, Forced: s.forced}
}

// settledBy reports whether the cell has been written at all by the
// given frame. Dust dispatches use this to skip sources whose own
// dispatch has not happened yet.
func (s *RedState) settledBy(frame Frame) bool {
	return s.updated && s.updatedFrame <= frame
}

// StateView is a comparable snapshot of a RedState, power and forced
// bit only. Two views are equal iff both fields are equal.
type StateView struct {
	Power  uint8
	Forced bool
}

// IsOn reports whether the snapshot carries any signal.
func (v StateView) IsOn() bool { return v.Power > 0 || v.Forced }
