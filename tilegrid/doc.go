// Package tilegrid provides the demo 2-D tile map that exercises the
// wayfind engine with a concrete node type.
//
// What:
//
//   - TileMap wraps a Width×Height grid of open/blocked tiles, generated
//     from a seeded random source or parsed from rows of text.
//   - Tile implements core.Connector over Vec2 keys: eight move directions,
//     bounds-checked and filtered against blocked destinations through the
//     graph View, with orthogonal moves costing 1000 and diagonal moves
//     1414 (≈ 1000·√2, keeping weights integral).
//   - Console renderers draw the bare grid or a grid with a highlighted
//     path, for eyeballing search results.
//   - Scenario files (YAML rows of '.'/'#' text) make demo runs
//     reproducible.
//
// Why:
//
//   - Grids are the smallest honest workload for the engine: blocked tiles
//     show dynamic edge filtering, diagonal costs show weighted expansion,
//     and the rendered output makes correctness visible at a glance.
//
// Errors:
//
//   - ErrBadSize: requested grid dimension is not positive.
//   - ErrBadDensity: block density outside [0, 1).
//   - ErrEmptyGrid: scenario has no rows or no columns.
//   - ErrNonRectangular: scenario rows differ in length.
//   - ErrBadTile: scenario contains an unknown tile character.
package tilegrid
