package core_test

import (
	"testing"

	"github.com/katalvlaran/redstone/core"
)

// TestRedState_Zero verifies the zero value: no power, not forced,
// never written.
func TestRedState_Zero(t *testing.T) {
	var s core.RedState
	if s.Power() != 0 {
		t.Errorf("Power = %d; want 0", s.Power())
	}
	if s.IsForced() {
		t.Error("IsForced = true; want false")
	}
	if s.IsOn() {
		t.Error("IsOn = true; want false")
	}
	if _, ok := s.UpdatedFrame(); ok {
		t.Error("UpdatedFrame ok = true; want false before first write")
	}
}

// TestRedState_SetPower verifies power writes stamp the frame and
// that the last write in a frame wins.
func TestRedState_SetPower(t *testing.T) {
	var s core.RedState
	s.SetPower(16, 3)

	if s.Power() != 16 {
		t.Errorf("Power = %d; want 16", s.Power())
	}
	if !s.IsOn() {
		t.Error("IsOn = false; want true")
	}
	if f, ok := s.UpdatedFrame(); !ok || f != 3 {
		t.Errorf("UpdatedFrame = (%d, %t); want (3, true)", f, ok)
	}

	// Same-frame overwrite: last write wins.
	s.SetPower(7, 3)
	if s.Power() != 7 {
		t.Errorf("Power after overwrite = %d; want 7", s.Power())
	}
}

// TestRedState_Forced verifies that a forced cell is on even at zero
// power.
func TestRedState_Forced(t *testing.T) {
	var s core.RedState
	s.SetForced(true, 1)

	if s.Power() != 0 {
		t.Errorf("Power = %d; want 0", s.Power())
	}
	if !s.IsOn() {
		t.Error("IsOn = false; want true while forced")
	}
	if s.IsOff() {
		t.Error("IsOff = true; want false while forced")
	}
}

// TestRedState_View verifies the change-gate snapshot: frames are
// metadata and do not participate in equality.
func TestRedState_View(t *testing.T) {
	var a, b core.RedState
	a.SetPower(15, 1)
	b.SetPower(15, 9)

	if a.View() != b.View() {
		t.Error("views differ; want equal despite differing frames")
	}

	b.SetForced(true, 9)
	if a.View() == b.View() {
		t.Error("views equal; want different after forced flips")
	}
	if !b.View().IsOn() {
		t.Error("View.IsOn = false; want true")
	}
}
