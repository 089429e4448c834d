package world

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/redstone/constraint"
	"github.com/katalvlaran/redstone/core"
)

// World is a sparse voxel grid that lowers itself into a circuit
// graph. Unset cells read as Air. Nodes materialize lazily, one per
// non-air voxel, inside an arena owned by the world.
type World struct {
	arena  *core.Arena
	voxels map[Vec3]Voxel
	nodes  map[Vec3]core.Redstone
	frozen bool
}

// New creates an empty world.
// Complexity: O(1).
func New() *World {
	return &World{
		arena:  core.NewArena(),
		voxels: make(map[Vec3]Voxel),
		nodes:  make(map[Vec3]core.Redstone),
	}
}

// Set places a voxel at the given coordinate, replacing whatever was
// there. Panics once the world has been lowered: topology is frozen
// from the first Graphs or Solve call on.
// Complexity: O(1).
func (w *World) Set(at Vec3, v Voxel) {
	if w.frozen {
		panic(fmt.Sprintf("world: topology frozen, cannot set voxel at %s", at))
	}
	w.voxels[at] = v
}

// At returns the voxel at the given coordinate; unset cells are Air.
// Complexity: O(1).
func (w *World) At(at Vec3) Voxel {
	return w.voxels[at]
}

// Node returns the circuit node materialized for the voxel at the
// given coordinate, creating it on first use. Air cells have no node
// and return nil.
// Complexity: O(1) amortized.
func (w *World) Node(at Vec3) core.Redstone {
	if n, ok := w.nodes[at]; ok {
		return n
	}

	var n core.Redstone
	switch v := w.At(at); v.Kind {
	case VoxelStone:
		n = w.arena.MakeBlock(v.name(at))
	case VoxelTorch:
		n = w.arena.MakeTorch(v.name(at))
	case VoxelDust:
		n = w.arena.MakeDust(v.name(at))
	default:
		return nil
	}

	w.nodes[at] = n
	return n
}

// Arena returns the arena holding every node materialized so far.
func (w *World) Arena() *core.Arena { return w.arena }

// Graphs lowers the world (once) and collects one constraint graph
// per disjoint circuit, in sorted-coordinate order of each
// component's first materialized node.
// Complexity: O(V + E) over materialized nodes, plus lowering.
func (w *World) Graphs(opts ...constraint.Option) ([]*constraint.ConstraintGraph, error) {
	w.lower()

	seen := make(map[core.Redstone]struct{})
	var graphs []*constraint.ConstraintGraph
	for _, at := range sortedKeys(w.nodes) {
		n := w.nodes[at]
		if _, ok := seen[n]; ok {
			continue
		}
		for _, r := range core.Reachable(n) {
			seen[r] = struct{}{}
		}

		cg, err := constraint.Collect(n, opts...)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, cg)
	}

	return graphs, nil
}

// Solve lowers the world (once) and solves every disjoint circuit to
// quiescence. Read results afterwards with Node.
func (w *World) Solve(opts ...constraint.Option) error {
	graphs, err := w.Graphs(opts...)
	if err != nil {
		return err
	}
	for _, cg := range graphs {
		if err = cg.Solve(); err != nil {
			return err
		}
	}
	return nil
}

// lower wires every voxel into the graph by the adjacency rules.
// Runs once; the world is frozen afterwards.
func (w *World) lower() {
	if w.frozen {
		return
	}
	w.frozen = true

	positions := sortedKeys(w.voxels)
	for _, at := range positions {
		switch v := w.voxels[at]; v.Kind {
		case VoxelTorch:
			w.linkTorch(at, v)
		case VoxelDust:
			w.linkDust(at)
		}
	}

	// Weighted sources are registered only after every link exists,
	// mirroring the two-pass shape of the in-game update order.
	for _, at := range positions {
		if w.voxels[at].IsDust() {
			w.sweepSources(at)
		}
	}
}

// linkTorch wires a torch to each linkable neighbor.
func (w *World) linkTorch(at Vec3, v Voxel) {
	torch := w.Node(at)
	for _, n := range at.neighbors() {
		if !w.torchLinks(at, v, n) {
			continue
		}
		core.Link(torch, w.Node(n))
	}
}

// torchLinks reports whether a torch at `at` links the voxel at
// `other`: never the voxel it is placed on, stone only directly
// below, any dust, never another torch.
func (w *World) torchLinks(at Vec3, v Voxel, other Vec3) bool {
	if other == v.placedOn(at) {
		return false
	}
	switch ov := w.At(other); ov.Kind {
	case VoxelStone:
		return at.Y-other.Y == 1
	case VoxelDust:
		return true
	default:
		return false
	}
}

// linkDust wires a dust to its stone support and to each adjacent
// dust. Links are symmetric, so each adjacent dust pair is wired
// once, from its lesser coordinate.
func (w *World) linkDust(at Vec3) {
	dust := w.Node(at)

	below := at.Down()
	if !w.At(below).IsStone() {
		panic(fmt.Sprintf("world: dust at %s must rest on stone", at))
	}
	core.Link(dust, w.Node(below))

	for _, n := range at.neighbors() {
		if !w.At(n).IsDust() || !at.less(n) {
			continue
		}
		core.Link(dust, w.Node(n))
	}
}

// sweepSources walks the dust run containing `at` breadth-first and
// registers every bordering stone or torch as a weighted source of
// the dust at `at`, weight = grid distance.
func (w *World) sweepSources(at Vec3) {
	dust := w.Node(at)

	type hop struct {
		weight int
		at     Vec3
	}
	queue := []hop{{0, at}}
	visited := make(map[Vec3]struct{})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := visited[cur.at]; ok {
			continue
		}
		visited[cur.at] = struct{}{}

		switch v := w.At(cur.at); v.Kind {
		case VoxelStone, VoxelTorch:
			core.AddWeightedEdge(dust, w.Node(cur.at), clampWeight(cur.weight))
		case VoxelDust:
			for _, n := range cur.at.neighbors() {
				queue = append(queue, hop{cur.weight + 1, n})
			}
		}
	}
}

// clampWeight narrows a grid distance to the edge-weight range. Any
// weight at or past SourcePower kills the signal, so saturating is
// lossless.
func clampWeight(weight int) uint8 {
	if weight > int(core.SourcePower) {
		return core.SourcePower
	}
	return uint8(weight)
}

// sortedKeys returns the map's coordinates in (X, Y, Z) order.
func sortedKeys[V any](m map[Vec3]V) []Vec3 {
	keys := make([]Vec3, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
	return keys
}
