package core_test

import (
	"testing"

	"github.com/katalvlaran/redstone/core"
)

// TestReachable_Nil verifies the trivial cases.
func TestReachable_Nil(t *testing.T) {
	if got := core.Reachable(nil); got != nil {
		t.Errorf("Reachable(nil) = %v; want nil", got)
	}

	a := core.NewArena()
	torch := a.MakeTorch("torch")
	got := core.Reachable(torch)
	if len(got) != 1 || got[0] != core.Redstone(torch) {
		t.Errorf("Reachable(lone torch) = %d nodes; want just the seed", len(got))
	}
}

// TestReachable_Cycle verifies a cyclic graph is walked once per
// node, seed first.
func TestReachable_Cycle(t *testing.T) {
	a := core.NewArena()
	blockA := a.MakeBlock("block_a")
	torch := a.MakeTorch("torch")
	blockB := a.MakeBlock("block_b")

	core.Link(blockA, torch)
	core.Link(torch, blockB)
	core.Link(blockB, blockA)

	got := core.Reachable(blockA)
	if len(got) != 3 {
		t.Fatalf("Reachable = %d nodes; want 3", len(got))
	}
	if got[0] != core.Redstone(blockA) {
		t.Errorf("first node = %s; want seed block_a", got[0].Name())
	}
}

// TestReachable_AgainstTheArrows verifies reachability is
// undirected: a walk from the sink still finds the source through
// incoming edges and weighted source tables.
func TestReachable_AgainstTheArrows(t *testing.T) {
	a := core.NewArena()
	torch := a.MakeTorch("torch")
	dust := a.MakeDust("dust")
	core.Link(torch, dust)
	core.AddWeightedEdge(dust, torch, 1)

	got := core.Reachable(dust)
	if len(got) != 2 {
		t.Fatalf("Reachable from sink = %d nodes; want 2", len(got))
	}
}

// TestReachable_LockNeighbors verifies a walk entering a locked
// repeater discovers its locker even with no wired path to it.
func TestReachable_LockNeighbors(t *testing.T) {
	a := core.NewArena()
	throughput := a.MakeRepeater("throughput", 1)
	locker := a.MakeRepeater("locker", 1)
	core.Lock(throughput, locker)

	got := core.Reachable(throughput)
	if len(got) != 2 {
		t.Fatalf("Reachable = %d nodes; want repeater plus locker", len(got))
	}
	if got[1] != core.Redstone(locker) {
		t.Errorf("second node = %s; want locker", got[1].Name())
	}
}
