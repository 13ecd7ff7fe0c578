// Package wayfind is an in-memory engine for route finding on weighted
// graphs whose nodes describe their own connectivity, from single cheapest
// routes to exhaustive path enumeration.
//
// 🚀 What is wayfind?
//
//	A thread-safe, generics-based engine that brings together:
//		• Core primitives: keyed nodes under R/W locks, two-step edge generation
//		• Shared paths: immutable route snapshots with inverted cost ordering
//		• All-destinations routing: Bellman-Ford with negative-cycle reporting
//		• Single-target routing: cycle-avoiding Bellman-Ford
//		• Cheapest-route search: best-first frontier expansion
//		• Exhaustive enumeration: every simple route, grouped by destination
//		• Tile maps: 8-way grids with console rendering and YAML scenarios
//
// ✨ Why choose wayfind?
//
//   - Self-describing graphs: node values produce their own connections on demand
//   - Rock-solid guarantees: R/W locks, value copies, immutable shared paths
//   - Generic keys and weights: any comparable key, any ordered weight type
//   - Batteries included: a demo CLI with map generation and rendering
//
// Everything is organized under focused subpackages:
//
//	core/        — Graph, Edge, Path, SharedPath and the Connector contract
//	bellmanford/ — all-destinations and single-target Bellman-Ford
//	bestfirst/   — cheapest-route frontier search
//	allpaths/    — exhaustive simple-route enumeration
//	tilegrid/    — 2-D tile maps: generation, parsing, rendering, scenarios
//	cmd/wayfind/ — the demo command line
//
// Quick ASCII example:
//
//	S . #
//	. # .
//	# . .
//
//	a 3×3 tile map where the cheapest route threads between the walls.
//
//	go get github.com/katalvlaran/wayfind
package wayfind
