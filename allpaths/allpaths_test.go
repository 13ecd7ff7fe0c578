package allpaths_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/allpaths"
	"github.com/katalvlaran/wayfind/bestfirst"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/graphtest"
)

func TestAllPaths_NilGraph(t *testing.T) {
	_, err := allpaths.AllPaths[string, graphtest.ListNode, int64](nil, "A")
	assert.ErrorIs(t, err, allpaths.ErrNilGraph)
}

func TestAllPaths_IsolatedSource(t *testing.T) {
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{"A": nil, "B": nil})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAllPaths_DeadEndSeedIsRecorded(t *testing.T) {
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{"A": {{To: "B", W: 1}}, "B": nil})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)
	require.Len(t, all["B"], 1)
	assert.Equal(t, int64(1), all["B"][0].Total())
	assert.Equal(t, 1, all["B"][0].Len())
}

func TestAllPaths_DiamondFindsBothRoutes(t *testing.T) {
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{
		"A": {{To: "B", W: 1}, {To: "C", W: 2}},
		"B": {{To: "D", W: 3}},
		"C": {{To: "D", W: 4}},
		"D": nil,
	})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)

	require.Len(t, all["D"], 2, "both diamond routes must arrive at D exactly once")
	totals := []int64{all["D"][0].Total(), all["D"][1].Total()}
	sort.Slice(totals, func(i, j int) bool { return totals[i] < totals[j] })
	assert.Equal(t, []int64{4, 6}, totals)

	// No recorded path is duplicated.
	for key, paths := range all {
		for i := range paths {
			for j := i + 1; j < len(paths); j++ {
				assert.False(t, paths[i].Equal(paths[j]), "duplicate path recorded at %s", key)
			}
		}
	}
}

func TestAllPaths_TerminatesOnCycleAndRecordsOneStepRevisit(t *testing.T) {
	// A→B, B→A: the revisiting arrival back at A is recorded but never
	// expanded, so enumeration terminates.
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{
		"A": {{To: "B", W: 1}},
		"B": {{To: "A", W: 1}},
	})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)

	require.Len(t, all["A"], 1)
	revisit := all["A"][0]
	assert.Equal(t, 2, revisit.Len())
	assert.Equal(t, int64(2), revisit.Total())
}

func TestAllPaths_NoPathExpandsPastItsOwnVisitedSet(t *testing.T) {
	// Dense cyclic graph; every recorded path has at most one revisit
	// (node-set size never smaller than its edge count), proving no branch
	// expanded past a node already in its visited set.
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{
		"A": {{To: "B", W: 1}, {To: "C", W: 1}},
		"B": {{To: "C", W: 1}, {To: "A", W: 1}},
		"C": {{To: "A", W: 1}, {To: "B", W: 1}},
	})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for key, paths := range all {
		for _, sp := range paths {
			nodes := len(sp.Edges()) + 1
			visited := countVisited(sp)
			assert.GreaterOrEqual(t, visited, nodes-1,
				"path recorded at %s expanded past its visited set", key)
		}
	}
}

func TestAllPaths_NodeSetRoundTrip(t *testing.T) {
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{
		"A": {{To: "B", W: 1}},
		"B": {{To: "C", W: 1}},
		"C": nil,
	})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)

	for _, paths := range all {
		for _, sp := range paths {
			edges := sp.Edges()
			want := map[string]struct{}{edges[0].From: {}}
			for _, e := range edges {
				want[e.To] = struct{}{}
			}
			assert.Equal(t, len(want), countVisited(sp))
			for k := range want {
				assert.True(t, sp.Visited(k))
			}
		}
	}
}

func TestAllPaths_MinimumMatchesBestFirst(t *testing.T) {
	// Cross-check: on a small non-negative graph, the cheapest enumerated
	// arrival at the target equals the best-first search result.
	g := graphtest.Build(map[string][]graphtest.EdgeSpec{
		"A": {{To: "B", W: 2}, {To: "C", W: 6}, {To: "D", W: 9}},
		"B": {{To: "C", W: 3}, {To: "D", W: 8}},
		"C": {{To: "D", W: 1}},
		"D": nil,
	})

	all, err := allpaths.AllPaths(g, "A")
	require.NoError(t, err)
	require.NotEmpty(t, all["D"])

	min := all["D"][0].Total()
	for _, sp := range all["D"][1:] {
		if sp.Total() < min {
			min = sp.Total()
		}
	}

	results, err := bestfirst.Search(g, "A", "D")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, min, results[0].Total())
	assert.Equal(t, int64(6), results[0].Total()) // A→B→C→D
}

// countVisited sizes the visited-node set through the public API.
func countVisited(sp core.SharedPath[string, int64]) int {
	seen := map[string]struct{}{}
	edges := sp.Edges()
	if len(edges) > 0 {
		seen[edges[0].From] = struct{}{}
	}
	for _, e := range edges {
		if sp.Visited(e.To) {
			seen[e.To] = struct{}{}
		}
	}

	return len(seen)
}
