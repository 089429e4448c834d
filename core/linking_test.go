package core_test

import (
	"testing"

	"github.com/katalvlaran/redstone/core"
)

// mustPanic asserts fn panics; topology preconditions are fatal.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestLink_TorchFanOutCap verifies a torch refuses a sixth outgoing
// edge.
func TestLink_TorchFanOutCap(t *testing.T) {
	a := core.NewArena()
	torch := a.MakeTorch("torch")
	for i := 0; i < core.MaxTorchFanOut; i++ {
		core.Link(torch, a.MakeDust("dust"))
	}
	mustPanic(t, "sixth torch edge", func() {
		core.Link(torch, a.MakeDust("one_too_many"))
	})
}

// TestLink_TorchIncomingSlot verifies the single incoming slot of a
// torch.
func TestLink_TorchIncomingSlot(t *testing.T) {
	a := core.NewArena()
	torch := a.MakeTorch("torch")
	core.Link(a.MakeBlock("block1"), torch)
	mustPanic(t, "second incoming", func() {
		core.Link(a.MakeBlock("block2"), torch)
	})
}

// TestLink_BlockDegreeCaps verifies the six-edge caps on a block.
func TestLink_BlockDegreeCaps(t *testing.T) {
	a := core.NewArena()

	out := a.MakeBlock("out")
	for i := 0; i < core.MaxUndirectedDegree; i++ {
		core.Link(out, a.MakeDust("dust"))
	}
	mustPanic(t, "seventh outgoing", func() {
		core.Link(out, a.MakeDust("one_too_many"))
	})

	in := a.MakeBlock("in")
	for i := 0; i < core.MaxUndirectedDegree; i++ {
		core.Link(a.MakeTorch("torch"), in)
	}
	mustPanic(t, "seventh incoming", func() {
		core.Link(a.MakeTorch("one_too_many"), in)
	})
}

// TestLink_RepeaterSlots verifies a repeater's single incoming and
// outgoing slots.
func TestLink_RepeaterSlots(t *testing.T) {
	a := core.NewArena()

	r := a.MakeRepeater("r", 1)
	core.Link(a.MakeBlock("block1"), r)
	mustPanic(t, "second incoming", func() {
		core.Link(a.MakeBlock("block2"), r)
	})

	r2 := a.MakeRepeater("r2", 1)
	core.Link(r2, a.MakeBlock("block3"))
	mustPanic(t, "second outgoing", func() {
		core.Link(r2, a.MakeBlock("block4"))
	})
}

// TestLink_DustMirroring verifies the undirected mirroring rule: an
// undirected source appears in a dust target's neighbor list, a
// directed one does not.
func TestLink_DustMirroring(t *testing.T) {
	a := core.NewArena()

	dust := a.MakeDust("dust")
	other := a.MakeDust("other")
	core.Link(dust, other)
	if got := len(other.Connections()); got != 1 {
		t.Errorf("dust→dust target connections = %d; want 1 (mirrored)", got)
	}

	lone := a.MakeDust("lone")
	core.Link(a.MakeTorch("torch"), lone)
	if got := len(lone.Connections()); got != 0 {
		t.Errorf("torch→dust target connections = %d; want 0 (directed source)", got)
	}
}

// TestAddWeightedEdge_TypeGuards verifies the dust/source type
// preconditions.
func TestAddWeightedEdge_TypeGuards(t *testing.T) {
	a := core.NewArena()
	dust := a.MakeDust("dust")
	torch := a.MakeTorch("torch")

	core.AddWeightedEdge(dust, torch, 1)
	if got := len(dust.Sources()); got != 1 {
		t.Fatalf("sources = %d; want 1", got)
	}

	mustPanic(t, "non-dust target", func() {
		core.AddWeightedEdge(torch, a.MakeBlock("block"), 1)
	})
	mustPanic(t, "dust source", func() {
		core.AddWeightedEdge(dust, a.MakeDust("dust2"), 1)
	})
}

// TestLock_Preconditions verifies the lock type and cap guards.
func TestLock_Preconditions(t *testing.T) {
	a := core.NewArena()
	r := a.MakeRepeater("r", 1)

	core.Lock(r, a.MakeRepeater("n1", 1))
	core.Lock(r, a.MakeRepeater("n2", 1))
	mustPanic(t, "third lock neighbor", func() {
		core.Lock(r, a.MakeRepeater("n3", 1))
	})
	mustPanic(t, "non-repeater locker", func() {
		core.Lock(a.MakeRepeater("r2", 1), a.MakeTorch("torch"))
	})
	mustPanic(t, "non-repeater target", func() {
		core.Lock(a.MakeTorch("torch2"), a.MakeRepeater("r3", 1))
	})
}

// TestMakeRepeater_DelayRange verifies the delay bounds at creation.
func TestMakeRepeater_DelayRange(t *testing.T) {
	a := core.NewArena()
	mustPanic(t, "delay 0", func() { a.MakeRepeater("r", 0) })
	mustPanic(t, "delay 5", func() { a.MakeRepeater("r", 5) })
}
