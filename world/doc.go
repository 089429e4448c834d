// Package world embeds circuits in a sparse 3D voxel grid and wires
// them automatically by the adjacency rules of the game.
//
// What:
//
//   - Vec3 — integer grid coordinates with directional steps
//     (Up/Down/North/South/East/West).
//   - Voxel — the cell alphabet: Air, Stone, Torch (with a facing),
//     Dust. Unset cells read as Air.
//   - World — a sparse voxel map that lowers its cells into a
//     core.Arena graph and solves every disjoint circuit it finds.
//
// Linking rules (applied during lowering):
//
//   - A torch never links the voxel it is placed on. It links any
//     adjacent dust, links stone only directly below itself, and
//     never links another torch.
//   - A dust must rest on stone; it links its support and every
//     orthogonally adjacent dust.
//   - Every dust then sweeps the dust run it belongs to breadth-first
//     and registers each bordering stone or torch as a weighted
//     source, at a weight equal to its grid distance — which is what
//     makes signal strength decay one unit per cell of dust.
//
// Lifecycle:
//
//	Set voxels → Solve → read states via Node. Lowering happens once,
//	on the first Solve or Graphs call; the topology is frozen after
//	that and further Set calls panic.
//
// Determinism:
//
//	Cells are processed in sorted coordinate order, so the lowered
//	topology — and therefore the solver's outcome — is reproducible
//	for a given set of voxels.
package world
