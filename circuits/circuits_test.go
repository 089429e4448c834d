package circuits_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redstone/circuits"
	"github.com/katalvlaran/redstone/constraint"
	"github.com/katalvlaran/redstone/core"
)

// settle collects from seed and solves, failing the test on error.
func settle(t *testing.T, seed core.Redstone) {
	t.Helper()
	cg, err := constraint.Collect(seed)
	require.NoError(t, err)
	require.NoError(t, cg.Solve())
}

func TestWire_Attenuation(t *testing.T) {
	a := core.NewArena()
	w, err := circuits.Wire(a, 17)
	require.NoError(t, err)

	settle(t, w.Torch)

	require.EqualValues(t, 16, w.Torch.RedState().Power())
	require.EqualValues(t, 15, w.Dusts[0].RedState().Power())
	require.EqualValues(t, 1, w.Dusts[14].RedState().Power())
	require.EqualValues(t, 0, w.Dusts[15].RedState().Power())
	require.EqualValues(t, 0, w.Dusts[16].RedState().Power())
}

func TestWire_Validation(t *testing.T) {
	_, err := circuits.Wire(nil, 3)
	require.ErrorIs(t, err, circuits.ErrNilArena)

	_, err = circuits.Wire(core.NewArena(), 0)
	require.ErrorIs(t, err, circuits.ErrTooFewNodes)
}

// TestAndGate covers three of the four input combinations: the output
// torch lights only when both inputs are powered.
func TestAndGate(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        bool
	}{
		{"both_on", true, true, true},
		{"left_off", false, true, false},
		{"both_off", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := core.NewArena()
			g, err := circuits.AndGate(a, tc.left, tc.right)
			require.NoError(t, err)

			settle(t, g.Output)

			require.Equal(t, !tc.left, g.ArmL.RedState().IsOn(), "arm_l inverts its input")
			require.Equal(t, !tc.right, g.ArmR.RedState().IsOn(), "arm_r inverts its input")
			require.Equal(t, tc.want, g.Output.RedState().IsOn())
		})
	}
}

// TestXorGate covers the full truth table.
func TestXorGate(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        bool
	}{
		{"both_on", true, true, false},
		{"left_on", true, false, true},
		{"right_on", false, true, true},
		{"both_off", false, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := core.NewArena()
			g, err := circuits.XorGate(a, tc.left, tc.right)
			require.NoError(t, err)

			settle(t, g.Output)

			require.Equal(t, !tc.left, g.Left.TorchTop.RedState().IsOn())
			require.Equal(t, !tc.right, g.Right.TorchTop.RedState().IsOn())
			require.Equal(t, tc.left && tc.right, !g.InversionOfAnd.RedState().IsOn())
			require.Equal(t, tc.want, g.Output.RedState().IsOn())
		})
	}
}

// TestMemoryCell_SeedOrder verifies bistability: the side the
// collection walk reaches first latches on.
func TestMemoryCell_SeedOrder(t *testing.T) {
	t.Run("seed_a", func(t *testing.T) {
		a := core.NewArena()
		m, err := circuits.MemoryCell(a)
		require.NoError(t, err)

		settle(t, m.BlockA)

		require.True(t, m.TorchA.RedState().IsOn())
		require.False(t, m.TorchB.RedState().IsOn())
	})
	t.Run("seed_b", func(t *testing.T) {
		a := core.NewArena()
		m, err := circuits.MemoryCell(a)
		require.NoError(t, err)

		settle(t, m.BlockB)

		require.False(t, m.TorchA.RedState().IsOn())
		require.True(t, m.TorchB.RedState().IsOn())
	})
}

// TestLockedPair covers the delay race: the locker wins when it is
// at least as fast as the throughput repeater.
func TestLockedPair(t *testing.T) {
	cases := []struct {
		name               string
		throughput, locker core.Frame
		wantThrough        bool
		wantOutput         uint8
	}{
		{"locker_faster", 2, 1, false, 0},
		{"locker_slower", 1, 2, true, 15},
		{"equal_delays", 1, 1, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := core.NewArena()
			p, err := circuits.LockedPair(a, tc.throughput, tc.locker)
			require.NoError(t, err)

			settle(t, p.Output)

			require.True(t, p.Torch.RedState().IsOn())
			require.EqualValues(t, 15, p.Dust1.RedState().Power())
			require.EqualValues(t, 14, p.Dust2.RedState().Power())
			require.EqualValues(t, 14, p.Dust3.RedState().Power())
			require.EqualValues(t, 13, p.Dust4.RedState().Power())
			require.True(t, p.Locker.RedState().IsOn())
			require.Equal(t, tc.wantThrough, p.Throughput.RedState().IsOn())
			require.EqualValues(t, tc.wantOutput, p.Output.RedState().Power())
		})
	}
}

func TestLockedPair_DelayValidation(t *testing.T) {
	_, err := circuits.LockedPair(core.NewArena(), 0, 1)
	require.ErrorIs(t, err, circuits.ErrDelayRange)

	_, err = circuits.LockedPair(core.NewArena(), 1, 5)
	require.ErrorIs(t, err, circuits.ErrDelayRange)
}

// TestRepeaterRelay verifies the repeater re-drives full strength
// behind a merely forced block.
func TestRepeaterRelay(t *testing.T) {
	a := core.NewArena()
	r, err := circuits.RepeaterRelay(a, 1)
	require.NoError(t, err)

	settle(t, r.Torch)

	require.EqualValues(t, 16, r.Torch.RedState().Power())
	require.EqualValues(t, 15, r.Dust1.RedState().Power())
	require.EqualValues(t, 0, r.Block1.RedState().Power())
	require.True(t, r.Block1.RedState().IsForced())
	require.EqualValues(t, 16, r.Repeater.RedState().Power())
	require.EqualValues(t, 16, r.Block2.RedState().Power())
	require.True(t, r.Block2.RedState().IsForced())
	require.EqualValues(t, 15, r.Dust2.RedState().Power())
}
