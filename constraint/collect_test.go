package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redstone/constraint"
	"github.com/katalvlaran/redstone/core"
)

// TestCollect_SeedsOnlyTorches: the work set contains one constraint
// per torch, regardless of the seed node's variant.
func TestCollect_SeedsOnlyTorches(t *testing.T) {
	a := core.NewArena()
	torch1 := a.MakeTorch("torch1")
	torch2 := a.MakeTorch("torch2")
	dust := a.MakeDust("dust")
	block := a.MakeBlock("block")

	core.Link(torch1, dust)
	core.Link(torch2, dust)
	core.Link(dust, block)
	core.AddWeightedEdge(dust, torch1, 1)
	core.AddWeightedEdge(dust, torch2, 1)

	for _, seed := range []core.Redstone{torch1, dust, block} {
		cg, err := constraint.Collect(seed)
		require.NoError(t, err)
		require.Equal(t, 2, cg.Len(), "seeded from %s", seed.Name())
	}
}

// TestCollect_DisconnectedRepeater: a component without torches has
// an empty work set and solves trivially.
func TestCollect_DisconnectedRepeater(t *testing.T) {
	a := core.NewArena()
	repeater := a.MakeRepeater("repeater", 1)
	block := a.MakeBlock("block")
	core.Link(repeater, block)

	cg, err := constraint.Collect(repeater)
	require.NoError(t, err)
	require.Equal(t, 0, cg.Len())
	require.NoError(t, cg.Solve())
	require.False(t, repeater.RedState().IsOn(), "repeaters are not autonomous sources")
}

// TestCollect_NilSeed rejects a nil node.
func TestCollect_NilSeed(t *testing.T) {
	_, err := constraint.Collect(nil)
	require.ErrorIs(t, err, constraint.ErrNilSeed)
}

// TestCollect_OptionViolation surfaces invalid options before any
// walking happens.
func TestCollect_OptionViolation(t *testing.T) {
	a := core.NewArena()
	torch := a.MakeTorch("torch")

	_, err := constraint.Collect(torch, constraint.WithMaxSteps(-1))
	require.ErrorIs(t, err, constraint.ErrOptionViolation)
}
