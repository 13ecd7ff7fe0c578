package tilegrid

import (
	"math/rand"

	"github.com/katalvlaran/wayfind/core"
)

// TileMap is a rectangular grid of open/blocked tiles. It is immutable once
// built; searches run against the Graph it produces.
type TileMap struct {
	Width, Height int64

	kinds map[Vec2]TileKind
}

// New generates a size×size map with opts. Each tile is independently
// blocked with probability opts.BlockDensity, drawn from a random source
// seeded with opts.Seed, so identical options reproduce identical maps.
// Complexity: O(size²).
func New(size int64, opts Options) (*TileMap, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if opts.BlockDensity < 0 || opts.BlockDensity >= 1 {
		return nil, ErrBadDensity
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	kinds := make(map[Vec2]TileKind, size*size)
	for y := int64(0); y < size; y++ {
		for x := int64(0); x < size; x++ {
			kind := KindOpen
			if rng.Float64() < opts.BlockDensity {
				kind = KindBlocked
			}
			kinds[Vec2{X: x, Y: y}] = kind
		}
	}

	return &TileMap{Width: size, Height: size, kinds: kinds}, nil
}

// FromRows parses a map from rows of text: '#' is blocked, '.' and ' ' are
// open, 'S' is accepted as open so rendered scenarios round-trip.
// Complexity: O(W×H).
func FromRows(rows []string) (*TileMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	kinds := make(map[Vec2]TileKind, len(rows)*w)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, ch := range row {
			pos := Vec2{X: int64(x), Y: int64(y)}
			switch ch {
			case '#':
				kinds[pos] = KindBlocked
			case '.', ' ', 'S':
				kinds[pos] = KindOpen
			default:
				return nil, ErrBadTile
			}
		}
	}

	return &TileMap{Width: int64(w), Height: int64(len(rows)), kinds: kinds}, nil
}

// At returns the kind of the tile at pos; positions off the map read as
// blocked.
func (m *TileMap) At(pos Vec2) TileKind {
	kind, ok := m.kinds[pos]
	if !ok {
		return KindBlocked
	}

	return kind
}

// InBounds reports whether pos lies within the map.
func (m *TileMap) InBounds(pos Vec2) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// Graph builds the search graph: one node per tile, keyed by coordinate.
// Blocked tiles are present as nodes (so they render and bounds-check) but
// no connection ever ends on one.
// Complexity: O(W×H).
func (m *TileMap) Graph() *core.Graph[Vec2, Tile, int64] {
	g := core.NewGraph[Vec2, Tile, int64]()
	for pos, kind := range m.kinds {
		g.AddValue(pos, Tile{Kind: kind, Pos: pos})
	}

	return g
}
