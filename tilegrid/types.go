// Package tilegrid defines the grid value types, tunable generation
// options, and sentinel errors.
package tilegrid

import (
	"errors"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for tilegrid operations.
var (
	// ErrBadSize indicates a non-positive grid dimension.
	ErrBadSize = errors.New("tilegrid: grid dimensions must be positive")
	// ErrBadDensity indicates a block density outside [0, 1).
	ErrBadDensity = errors.New("tilegrid: block density must be in [0, 1)")
	// ErrEmptyGrid indicates a scenario with no rows or no columns.
	ErrEmptyGrid = errors.New("tilegrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates scenario rows of differing lengths.
	ErrNonRectangular = errors.New("tilegrid: all rows must have the same length")
	// ErrBadTile indicates an unknown tile character in a scenario row.
	ErrBadTile = errors.New("tilegrid: unknown tile character")
)

// Move costs. Diagonal steps cost ≈ √2 times an orthogonal step; both are
// scaled by 1000 to keep weights integral.
const (
	CostOrthogonal int64 = 1000
	CostDiagonal   int64 = 1414
)

// Vec2 is a 2-D integer coordinate, used as the node key of grid graphs.
type Vec2 struct {
	X, Y int64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// TileKind classifies a grid cell.
type TileKind int

const (
	// KindOpen marks a traversable tile.
	KindOpen TileKind = iota
	// KindBlocked marks an impassable tile; no connection may end on it.
	KindBlocked
)

// moveDirs are the eight candidate step directions of a tile, in scan order.
var moveDirs = []Vec2{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Tile is the node value stored per grid cell. It describes its own
// outgoing connectivity: one connection per direction whose destination
// exists and is not blocked.
type Tile struct {
	Kind TileKind
	Pos  Vec2
}

// Connections reports the tile's traversable moves. Candidates are filtered
// through the graph view: destinations off the map or blocked are dropped.
// The scan order of moveDirs is fixed, so repeated calls are deterministic.
func (t Tile) Connections(nodes core.View[Vec2, Tile, int64]) []core.Connection[Vec2, int64] {
	conns := make([]core.Connection[Vec2, int64], 0, len(moveDirs))
	for _, dir := range moveDirs {
		dest, ok := nodes.Value(t.Pos.Add(dir))
		if !ok || dest.Kind == KindBlocked {
			continue
		}
		cost := CostOrthogonal
		if dir.X != 0 && dir.Y != 0 {
			cost = CostDiagonal
		}
		conns = append(conns, TileConnection{Origin: t.Pos, Dir: dir, Cost: cost})
	}

	return conns
}

// TileConnection is the intermediate move description produced by a Tile
// before edge ids are assigned.
type TileConnection struct {
	Origin Vec2
	Dir    Vec2
	Cost   int64
}

// Edge finalizes the move into a weighted edge with the given sequential id.
func (c TileConnection) Edge(id int) core.Edge[Vec2, int64] {
	return core.Edge[Vec2, int64]{
		ID:     id,
		From:   c.Origin,
		To:     c.Origin.Add(c.Dir),
		Weight: c.Cost,
	}
}

// Options tunes random map generation.
type Options struct {
	// Seed feeds the deterministic random source.
	Seed int64
	// BlockDensity is the probability in [0, 1) that a tile is blocked.
	BlockDensity float64
}

// DefaultOptions returns the generation defaults: seed 1, half the tiles
// blocked.
func DefaultOptions() Options {
	return Options{Seed: 1, BlockDensity: 0.5}
}
