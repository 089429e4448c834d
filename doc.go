// Package redstone is an in-memory steady-state simulator for
// Minecraft-style redstone signal networks.
//
// 🚀 What is redstone?
//
//	A small, composable library that models a heterogeneous circuit of
//	torches, dusts, solid blocks, and repeaters as a directed graph and
//	solves it to quiescence with a frame-aware fixed-point dispatcher:
//
//	  • Core primitives: typed nodes, stable identity, explicit linking
//	  • Constraint solver: two-queue frame advancement, repeater delays
//	  • Voxel world: 3D grids auto-wired into circuits by adjacency
//
// ✨ Why choose redstone?
//
//   - Deterministic          — fixed iteration orders, reproducible runs
//   - Cycle-friendly         — memory cells and feedback loops just work
//   - Observable             — append-only event log of every dispatch
//   - Pure library           — no background goroutines, no hidden state
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Frame, RedState, node variants, arena & linker
//	constraint/ — collection and the fixed-point solving loop
//	world/      — sparse voxel grids lowered to circuits
//	circuits/   — canonical devices (wires, gates, memory cells)
//
// Quick ASCII example:
//
//	    torch ──> dust ──> block ──> torch
//	      16       15     forced      off
//
//	a powered dust hard-powers the block, which shuts the output torch.
//
// Dive into the per-package documentation for the dispatch contracts,
// the frame model, and the solver's ordering guarantees.
//
//	go get github.com/katalvlaran/redstone
package redstone
