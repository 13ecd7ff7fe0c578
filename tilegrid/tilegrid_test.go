package tilegrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/bestfirst"
	"github.com/katalvlaran/wayfind/tilegrid"
)

// ------------------------------------------------------------------------
// 1. Generation: validation, determinism, density bounds.
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := tilegrid.New(0, tilegrid.DefaultOptions())
	assert.ErrorIs(t, err, tilegrid.ErrBadSize)

	_, err = tilegrid.New(4, tilegrid.Options{BlockDensity: 1})
	assert.ErrorIs(t, err, tilegrid.ErrBadDensity)

	_, err = tilegrid.New(4, tilegrid.Options{BlockDensity: -0.1})
	assert.ErrorIs(t, err, tilegrid.ErrBadDensity)
}

func TestNew_DeterministicPerSeed(t *testing.T) {
	opts := tilegrid.Options{Seed: 42, BlockDensity: 0.4}
	a, err := tilegrid.New(8, opts)
	require.NoError(t, err)
	b, err := tilegrid.New(8, opts)
	require.NoError(t, err)

	for y := int64(0); y < 8; y++ {
		for x := int64(0); x < 8; x++ {
			pos := tilegrid.Vec2{X: x, Y: y}
			assert.Equal(t, a.At(pos), b.At(pos), "tile %v differs between identical seeds", pos)
		}
	}
}

func TestNew_ZeroDensityIsAllOpen(t *testing.T) {
	m, err := tilegrid.New(5, tilegrid.Options{Seed: 7, BlockDensity: 0})
	require.NoError(t, err)

	for y := int64(0); y < 5; y++ {
		for x := int64(0); x < 5; x++ {
			assert.Equal(t, tilegrid.KindOpen, m.At(tilegrid.Vec2{X: x, Y: y}))
		}
	}
}

// ------------------------------------------------------------------------
// 2. Parsing rows and reading tiles.
// ------------------------------------------------------------------------

func TestFromRows_Validation(t *testing.T) {
	_, err := tilegrid.FromRows(nil)
	assert.ErrorIs(t, err, tilegrid.ErrEmptyGrid)

	_, err = tilegrid.FromRows([]string{"..", "..."})
	assert.ErrorIs(t, err, tilegrid.ErrNonRectangular)

	_, err = tilegrid.FromRows([]string{".x"})
	assert.ErrorIs(t, err, tilegrid.ErrBadTile)
}

func TestFromRows_ParsesKinds(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"S.#",
		"##.",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), m.Width)
	assert.Equal(t, int64(2), m.Height)
	assert.Equal(t, tilegrid.KindOpen, m.At(tilegrid.Vec2{X: 0, Y: 0}))
	assert.Equal(t, tilegrid.KindBlocked, m.At(tilegrid.Vec2{X: 2, Y: 0}))
	assert.Equal(t, tilegrid.KindBlocked, m.At(tilegrid.Vec2{X: 1, Y: 1}))
	assert.Equal(t, tilegrid.KindOpen, m.At(tilegrid.Vec2{X: 2, Y: 1}))

	// Off-map positions read as blocked.
	assert.Equal(t, tilegrid.KindBlocked, m.At(tilegrid.Vec2{X: -1, Y: 0}))
	assert.False(t, m.InBounds(tilegrid.Vec2{X: 3, Y: 0}))
}

// ------------------------------------------------------------------------
// 3. Connectivity: bounds checks, blocked filtering, move costs.
// ------------------------------------------------------------------------

func TestGraph_CenterTileConnections(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"...",
		"..#",
		"...",
	})
	require.NoError(t, err)
	g := m.Graph()

	// Center (1,1): 8 neighbors minus the blocked (2,1).
	edges := g.GenerateEdges(tilegrid.Vec2{X: 1, Y: 1})
	require.Len(t, edges, 7)

	for i, e := range edges {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, tilegrid.Vec2{X: 1, Y: 1}, e.From)
		assert.NotEqual(t, tilegrid.Vec2{X: 2, Y: 1}, e.To, "blocked destination must be filtered")

		diagonal := e.To.X != 1 && e.To.Y != 1
		if diagonal {
			assert.Equal(t, tilegrid.CostDiagonal, e.Weight)
		} else {
			assert.Equal(t, tilegrid.CostOrthogonal, e.Weight)
		}
	}
}

func TestGraph_CornerTileBoundsChecked(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"..",
		"..",
	})
	require.NoError(t, err)
	g := m.Graph()

	// A corner has exactly three in-bounds neighbors.
	edges := g.GenerateEdges(tilegrid.Vec2{X: 0, Y: 0})
	assert.Len(t, edges, 3)
}

func TestGraph_RepeatedGenerationIsStable(t *testing.T) {
	m, err := tilegrid.New(6, tilegrid.Options{Seed: 3, BlockDensity: 0.3})
	require.NoError(t, err)
	g := m.Graph()

	key := tilegrid.Vec2{X: 2, Y: 2}
	first := g.GenerateEdges(key)
	second := g.GenerateEdges(key)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

// ------------------------------------------------------------------------
// 4. Search integration: route around a wall.
// ------------------------------------------------------------------------

func TestSearch_RoutesAroundWall(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"...",
		".#.",
		"...",
	})
	require.NoError(t, err)
	g := m.Graph()

	results, err := bestfirst.Search(g, tilegrid.Vec2{X: 0, Y: 0}, tilegrid.Vec2{X: 2, Y: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// The direct diagonal is blocked: orth + diag + orth = 3414.
	assert.Equal(t, int64(3414), results[0].Total())
	for _, e := range results[0].Edges() {
		assert.NotEqual(t, tilegrid.Vec2{X: 1, Y: 1}, e.To, "route passes through the wall")
	}
}

func TestSearch_OpenDiagonal(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"...",
		"...",
		"...",
	})
	require.NoError(t, err)
	g := m.Graph()

	results, err := bestfirst.Search(g, tilegrid.Vec2{X: 0, Y: 0}, tilegrid.Vec2{X: 2, Y: 2})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(2*tilegrid.CostDiagonal), results[0].Total())
}

// ------------------------------------------------------------------------
// 5. Rendering and scenarios.
// ------------------------------------------------------------------------

func TestRender_Glyphs(t *testing.T) {
	m, err := tilegrid.FromRows([]string{
		"S#",
		"..",
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, m.Render(&sb))
	assert.Equal(t, "S ██\n    \n", sb.String())

	var withPath strings.Builder
	path := map[tilegrid.Vec2]struct{}{{X: 0, Y: 1}: {}}
	require.NoError(t, m.RenderPath(&withPath, path))
	assert.Equal(t, "S ██\n##  \n", withPath.String())
}

func TestLoadScenario(t *testing.T) {
	doc := `
name: corridor
rows:
  - "S.#"
  - "..."
`
	sc, m, err := tilegrid.LoadScenario(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "corridor", sc.Name)
	assert.Equal(t, int64(3), m.Width)
	assert.Equal(t, tilegrid.KindBlocked, m.At(tilegrid.Vec2{X: 2, Y: 0}))
}

func TestLoadScenario_BadRows(t *testing.T) {
	doc := `
name: broken
rows:
  - ".."
  - "."
`
	_, _, err := tilegrid.LoadScenario(strings.NewReader(doc))
	assert.ErrorIs(t, err, tilegrid.ErrNonRectangular)
}
