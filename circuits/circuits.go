// Package circuits: device constructors.
//
// Every constructor validates its parameters, allocates its nodes in
// the caller's arena, wires them, and returns a struct naming each
// node. Constructors never panic; parameter problems come back as
// sentinel errors.
package circuits

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/redstone/core"
)

// Sentinel errors for device construction.
var (
	// ErrNilArena indicates there is no arena to build into.
	ErrNilArena = errors.New("circuits: arena is nil")

	// ErrTooFewNodes indicates a size parameter below the device minimum.
	ErrTooFewNodes = errors.New("circuits: parameter too small")

	// ErrDelayRange indicates a repeater delay outside [1, 4].
	ErrDelayRange = errors.New("circuits: repeater delay out of range")
)

// WireCircuit is a torch driving a straight run of dusts.
type WireCircuit struct {
	Torch *core.Torch
	Dusts []*core.Dust
}

// Wire builds a torch followed by n dusts, each sourcing the torch at
// its distance along the run. Signal decays one unit per dust and
// dies past the fifteenth.
// Complexity: O(n).
func Wire(a *core.Arena, n int) (*WireCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	if n < 1 {
		return nil, fmt.Errorf("Wire: n=%d < 1: %w", n, ErrTooFewNodes)
	}

	w := &WireCircuit{
		Torch: a.MakeTorch("torch"),
		Dusts: make([]*core.Dust, n),
	}
	prev := core.Redstone(w.Torch)
	for i := range w.Dusts {
		w.Dusts[i] = a.MakeDust(fmt.Sprintf("dust%d", i+1))
		core.Link(prev, w.Dusts[i])
		core.AddWeightedEdge(w.Dusts[i], w.Torch, uint8(min(i+1, int(core.SourcePower))))
		prev = w.Dusts[i]
	}

	return w, nil
}

// AndGateCircuit is the two-arm torch AND gate. InputL/InputR are nil
// when the corresponding arm is built unpowered.
type AndGateCircuit struct {
	InputL, InputR *core.Torch
	ArmL, ArmR     *core.Torch
	Output         *core.Torch
	DustL, DustR   *core.Dust
	DustM          *core.Dust
	BlockL, BlockR *core.Block
	BlockM         *core.Block
}

// AndGate builds the classic AND: each input hard-powers a block
// whose arm torch shuts off, and the output torch lights only when
// both arm torches are dark. left and right choose whether each
// input torch exists.
// Complexity: O(1).
func AndGate(a *core.Arena, left, right bool) (*AndGateCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}

	g := &AndGateCircuit{
		ArmL:   a.MakeTorch("and_l"),
		ArmR:   a.MakeTorch("and_r"),
		Output: a.MakeTorch("output"),
		DustL:  a.MakeDust("dust_l"),
		DustM:  a.MakeDust("dust_m"),
		DustR:  a.MakeDust("dust_r"),
		BlockL: a.MakeBlock("block_l"),
		BlockM: a.MakeBlock("block_m"),
		BlockR: a.MakeBlock("block_r"),
	}

	if left {
		g.InputL = a.MakeTorch("input_l")
		core.Link(g.InputL, g.DustL)
		core.AddWeightedEdge(g.DustL, g.InputL, 1)
	}
	core.Link(g.DustL, g.BlockL)
	core.Link(g.BlockL, g.ArmL)

	if right {
		g.InputR = a.MakeTorch("input_r")
		core.Link(g.InputR, g.DustR)
		core.AddWeightedEdge(g.DustR, g.InputR, 1)
	}
	core.Link(g.DustR, g.BlockR)
	core.Link(g.BlockR, g.ArmR)

	core.Link(g.ArmL, g.DustM)
	core.Link(g.ArmR, g.DustM)
	core.Link(g.DustM, g.BlockM)
	core.Link(g.BlockM, g.Output)

	core.AddWeightedEdge(g.DustM, g.ArmL, 1)
	core.AddWeightedEdge(g.DustM, g.ArmR, 1)

	return g, nil
}

// xorColumn is one input column of the XOR gate: an inverter block
// carrying two torches, followed by a two-dust inversion run.
type xorColumn struct {
	Input          *core.Torch
	InputDust      *core.Dust
	InputBlock     *core.Block
	TorchTop       *core.Torch
	TorchFront     *core.Torch
	InvDust1       *core.Dust
	InvDust2       *core.Dust
	InvBlock       *core.Block
	InvOutputTorch *core.Torch
}

// XorGateCircuit is XOR assembled from two inverter columns sharing
// an AND arm whose inversion suppresses the both-on case.
type XorGateCircuit struct {
	Left, Right    xorColumn
	AndDust1       *core.Dust
	AndDust2       *core.Dust
	AndBlock       *core.Block
	InversionOfAnd *core.Torch
	Output         *core.Dust
}

// XorGate builds the XOR device. left and right choose whether each
// input torch exists.
// Complexity: O(1).
func XorGate(a *core.Arena, left, right bool) (*XorGateCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}

	g := &XorGateCircuit{
		Left:           buildXorColumn(a, "l", left),
		Right:          buildXorColumn(a, "r", right),
		AndDust1:       a.MakeDust("and_dust_1"),
		AndDust2:       a.MakeDust("and_dust_2"),
		AndBlock:       a.MakeBlock("and_block"),
		InversionOfAnd: a.MakeTorch("inversion_of_and"),
		Output:         a.MakeDust("output"),
	}

	core.Link(g.Left.TorchTop, g.AndDust1)
	core.Link(g.Right.TorchTop, g.AndDust1)
	core.Link(g.AndDust1, g.AndDust2)
	core.Link(g.AndDust2, g.AndBlock)
	core.Link(g.AndBlock, g.InversionOfAnd)

	core.AddWeightedEdge(g.AndDust1, g.Left.TorchFront, 1)
	core.AddWeightedEdge(g.AndDust1, g.Right.TorchFront, 1)
	core.AddWeightedEdge(g.AndDust2, g.Left.TorchFront, 2)
	core.AddWeightedEdge(g.AndDust2, g.Right.TorchFront, 2)

	core.Link(g.InversionOfAnd, g.Left.InvDust1)
	core.Link(g.InversionOfAnd, g.Right.InvDust1)

	core.AddWeightedEdge(g.Left.InvDust1, g.InversionOfAnd, 1)
	core.AddWeightedEdge(g.Left.InvDust2, g.InversionOfAnd, 2)
	core.AddWeightedEdge(g.Right.InvDust1, g.InversionOfAnd, 1)
	core.AddWeightedEdge(g.Right.InvDust2, g.InversionOfAnd, 2)

	core.Link(g.Left.InvOutputTorch, g.Output)
	core.Link(g.Right.InvOutputTorch, g.Output)

	core.AddWeightedEdge(g.Output, g.Left.InvOutputTorch, 1)
	core.AddWeightedEdge(g.Output, g.Right.InvOutputTorch, 1)

	return g, nil
}

// buildXorColumn wires one input column. powered chooses whether the
// input torch exists.
func buildXorColumn(a *core.Arena, side string, powered bool) xorColumn {
	c := xorColumn{
		InputDust:      a.MakeDust("input_dust_" + side),
		InputBlock:     a.MakeBlock("dust_block_" + side),
		TorchTop:       a.MakeTorch("torch_on_top_block_" + side),
		TorchFront:     a.MakeTorch("torch_in_front_block_" + side),
		InvDust1:       a.MakeDust("dust_after_inversion_" + side),
		InvDust2:       a.MakeDust("dust_after_inversion_" + side + "2"),
		InvBlock:       a.MakeBlock("block_after_inversion_" + side),
		InvOutputTorch: a.MakeTorch("torch_after_dust_inversion_" + side),
	}

	if powered {
		c.Input = a.MakeTorch("input_" + side)
		core.Link(c.Input, c.InputDust)
		core.AddWeightedEdge(c.InputDust, c.Input, 1)
	}
	core.Link(c.InputDust, c.InputBlock)
	core.Link(c.InputBlock, c.TorchTop)
	core.Link(c.InputBlock, c.TorchFront)
	core.Link(c.TorchFront, c.InvDust1)
	core.Link(c.InvDust1, c.InvDust2)
	core.Link(c.InvDust2, c.InvBlock)
	core.Link(c.InvBlock, c.InvOutputTorch)

	core.AddWeightedEdge(c.InvDust1, c.TorchFront, 1)
	core.AddWeightedEdge(c.InvDust2, c.TorchFront, 2)

	return c
}

// MemoryCellCircuit is two cross-coupled block/torch loops.
type MemoryCellCircuit struct {
	BlockA, BlockB *core.Block
	TorchA, TorchB *core.Torch
	DustA1, DustA2 *core.Dust
	DustB1, DustB2 *core.Dust
}

// MemoryCell builds the latch. The circuit is bistable: collecting
// from BlockA settles TorchA on, collecting from BlockB settles
// TorchB on.
// Complexity: O(1).
func MemoryCell(a *core.Arena) (*MemoryCellCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}

	m := &MemoryCellCircuit{
		BlockA: a.MakeBlock("block_a"),
		TorchA: a.MakeTorch("torch_a"),
		DustA1: a.MakeDust("dust_a1"),
		DustA2: a.MakeDust("dust_a2"),
		BlockB: a.MakeBlock("block_b"),
		TorchB: a.MakeTorch("torch_b"),
		DustB1: a.MakeDust("dust_b1"),
		DustB2: a.MakeDust("dust_b2"),
	}

	core.Link(m.BlockA, m.TorchA)
	core.Link(m.TorchA, m.DustA1)
	core.Link(m.DustA1, m.DustA2)
	core.Link(m.DustA2, m.BlockB)
	core.AddWeightedEdge(m.DustA1, m.TorchA, 1)
	core.AddWeightedEdge(m.DustA2, m.TorchA, 2)

	core.Link(m.BlockB, m.TorchB)
	core.Link(m.TorchB, m.DustB1)
	core.Link(m.DustB1, m.DustB2)
	core.Link(m.DustB2, m.BlockA)
	core.AddWeightedEdge(m.DustB1, m.TorchB, 1)
	core.AddWeightedEdge(m.DustB2, m.TorchB, 2)

	return m, nil
}

// LockedPairCircuit is a repeater on a dust bus with a second
// repeater positioned to lock it.
type LockedPairCircuit struct {
	Torch        *core.Torch
	Dust1, Dust2 *core.Dust
	Dust3, Dust4 *core.Dust
	Throughput   *core.Repeater
	Locker       *core.Repeater
	Output       *core.Dust
}

// LockedPair builds the lock race: one torch drives both repeaters
// over dust runs (two dusts to the throughput repeater, three to the
// locker, all settling in the same frame), and the locker is registered as a
// lock neighbor of the throughput repeater. Whichever repeater's
// delay fires first wins — equal delays favor the locker.
// Complexity: O(1).
func LockedPair(a *core.Arena, throughputDelay, lockerDelay core.Frame) (*LockedPairCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	if err := checkDelay("LockedPair", throughputDelay); err != nil {
		return nil, err
	}
	if err := checkDelay("LockedPair", lockerDelay); err != nil {
		return nil, err
	}

	p := &LockedPairCircuit{
		Torch:      a.MakeTorch("torch"),
		Dust1:      a.MakeDust("dust1"),
		Dust2:      a.MakeDust("dust2"),
		Dust3:      a.MakeDust("dust3"),
		Dust4:      a.MakeDust("dust4"),
		Throughput: a.MakeRepeater("throughput", throughputDelay),
		Locker:     a.MakeRepeater("locker", lockerDelay),
		Output:     a.MakeDust("output"),
	}

	core.Link(p.Torch, p.Dust1)
	core.Link(p.Dust1, p.Dust2)
	core.Link(p.Dust1, p.Dust3)
	core.Link(p.Dust3, p.Dust4)

	core.Link(p.Dust2, p.Throughput)
	core.Link(p.Dust4, p.Locker)

	core.Link(p.Throughput, p.Output)

	core.AddWeightedEdge(p.Dust1, p.Torch, 1)
	core.AddWeightedEdge(p.Dust2, p.Torch, 2)
	core.AddWeightedEdge(p.Dust3, p.Torch, 2)
	core.AddWeightedEdge(p.Dust4, p.Torch, 3)
	core.AddWeightedEdge(p.Output, p.Throughput, 1)

	core.Lock(p.Throughput, p.Locker)

	return p, nil
}

// RepeaterRelayCircuit is a repeater restoring a signal behind a
// hard-powered block.
type RepeaterRelayCircuit struct {
	Torch    *core.Torch
	Dust1    *core.Dust
	Block1   *core.Block
	Repeater *core.Repeater
	Block2   *core.Block
	Dust2    *core.Dust
}

// RepeaterRelay builds torch → dust → block → repeater → block →
// dust: the first block is merely forced, the repeater re-drives it
// to full strength, and the far dust lights at 15.
// Complexity: O(1).
func RepeaterRelay(a *core.Arena, delay core.Frame) (*RepeaterRelayCircuit, error) {
	if a == nil {
		return nil, ErrNilArena
	}
	if err := checkDelay("RepeaterRelay", delay); err != nil {
		return nil, err
	}

	r := &RepeaterRelayCircuit{
		Torch:    a.MakeTorch("torch"),
		Dust1:    a.MakeDust("dust1"),
		Block1:   a.MakeBlock("block1"),
		Repeater: a.MakeRepeater("repeater", delay),
		Block2:   a.MakeBlock("block2"),
		Dust2:    a.MakeDust("dust2"),
	}

	core.Link(r.Torch, r.Dust1)
	core.Link(r.Dust1, r.Block1)
	core.Link(r.Block1, r.Repeater)
	core.Link(r.Repeater, r.Block2)
	core.Link(r.Block2, r.Dust2)

	core.AddWeightedEdge(r.Dust1, r.Torch, 1)
	core.AddWeightedEdge(r.Dust2, r.Block2, 1)

	return r, nil
}

// checkDelay validates a repeater delay against the core bounds.
func checkDelay(method string, delay core.Frame) error {
	if delay < core.MinRepeaterDelay || delay > core.MaxRepeaterDelay {
		return fmt.Errorf("%s: delay=%d outside [%d, %d]: %w",
			method, delay, core.MinRepeaterDelay, core.MaxRepeaterDelay, ErrDelayRange)
	}
	return nil
}
