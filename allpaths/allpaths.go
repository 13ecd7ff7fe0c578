package allpaths

import (
	"errors"

	"github.com/katalvlaran/wayfind/core"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("allpaths: graph is nil")

// AllPaths explores all simple paths from source and returns, per node key,
// the distinct paths that terminate at or pass through that key.
//
// A source with no outgoing edges (or absent from the graph) yields an
// empty, non-nil map.
//
// Complexity: exponential in the number of simple paths; intended for
// small, bounded graphs only.
func AllPaths[K comparable, V core.Connector[K, V, W], W core.Weight](g *core.Graph[K, V, W], source K) (map[K][]core.SharedPath[K, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Seed the open stack with one single-edge path per outgoing edge.
	open := make([]core.SharedPath[K, W], 0, 16)
	for _, e := range g.GenerateEdges(source) {
		open = append(open, core.NewSharedPath(core.PathFromEdge(e)))
	}

	all := make(map[K][]core.SharedPath[K, W])
	for len(open) > 0 {
		// 2) Pop (LIFO) the most recently opened path.
		sp := open[len(open)-1]
		open = open[:len(open)-1]
		last, ok := sp.Last()
		if !ok {
			continue
		}

		edges := g.GenerateEdges(last.To)
		if len(edges) == 0 {
			// 3) Dead end: the path is complete here. Extensions were already
			//    recorded when created, so only seed paths arrive unrecorded.
			if sp.Len() == 1 {
				all[last.To] = append(all[last.To], sp)
			}

			continue
		}

		// 4) Record every one-edge extension under its new frontier node,
		//    even a revisiting arrival, but keep expanding only along
		//    extensions whose frontier node is new to the path.
		for _, e := range edges {
			ext := sp.Extend(e)
			all[e.To] = append(all[e.To], ext)
			if !sp.Visited(e.To) {
				open = append(open, ext)
			}
		}
	}

	return all, nil
}
