package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/redstone/circuits"
	"github.com/katalvlaran/redstone/core"
)

// catalog maps the circuit names accepted by `redsim run` to their
// builders. Builders fill the arena and return the node to collect
// from.
var catalog = map[string]struct {
	about string
	build func(a *core.Arena) (core.Redstone, error)
}{
	"wire": {
		about: "torch driving a 5-dust run, signal decaying per cell",
		build: func(a *core.Arena) (core.Redstone, error) {
			w, err := circuits.Wire(a, 5)
			if err != nil {
				return nil, err
			}
			return w.Torch, nil
		},
	},
	"and-gate": {
		about: "two-arm torch AND gate, both inputs powered",
		build: func(a *core.Arena) (core.Redstone, error) {
			g, err := circuits.AndGate(a, true, true)
			if err != nil {
				return nil, err
			}
			return g.Output, nil
		},
	},
	"xor-gate": {
		about: "torch XOR gate, left input powered only",
		build: func(a *core.Arena) (core.Redstone, error) {
			g, err := circuits.XorGate(a, true, false)
			if err != nil {
				return nil, err
			}
			return g.Output, nil
		},
	},
	"memory-cell": {
		about: "cross-coupled latch, settled from its A side",
		build: func(a *core.Arena) (core.Redstone, error) {
			m, err := circuits.MemoryCell(a)
			if err != nil {
				return nil, err
			}
			return m.BlockA, nil
		},
	},
	"locked-pair": {
		about: "repeater locked by a faster neighbor repeater",
		build: func(a *core.Arena) (core.Redstone, error) {
			p, err := circuits.LockedPair(a, 2, 1)
			if err != nil {
				return nil, err
			}
			return p.Output, nil
		},
	},
	"repeater-relay": {
		about: "repeater restoring full strength behind a block",
		build: func(a *core.Arena) (core.Redstone, error) {
			r, err := circuits.RepeaterRelay(a, 1)
			if err != nil {
				return nil, err
			}
			return r.Torch, nil
		},
	},
}

// catalogNames returns the circuit names in sorted order.
func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildCircuit assembles the named circuit into a fresh arena.
func buildCircuit(name string) (*core.Arena, core.Redstone, error) {
	entry, ok := catalog[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown circuit %q (see `redsim list`)", name)
	}
	arena := core.NewArena()
	seed, err := entry.build(arena)
	if err != nil {
		return nil, nil, err
	}
	return arena, seed, nil
}
