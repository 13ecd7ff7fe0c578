// Package bellmanford defines the result and error types shared by the
// Bellman-Ford variants.
package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("bellmanford: graph is nil")

// Route is one entry of the BellmanFord result: the minimum cost found for a
// destination together with the ordered edge sequence reconstructing the
// path from the source.
type Route[K comparable, W core.Weight] struct {
	// Total is the accumulated cost of the route.
	Total W

	// Edges is the route from source to destination, in travel order.
	Edges []core.Edge[K, W]
}

// NegativeCycleError reports a negative cycle reachable from the source.
// It is the one true failure outcome of BellmanFord: the computation aborts
// and no partial result map is returned.
//
// Cycle holds the cycle's edges as a closed walk in travel order: each
// edge's To equals the next edge's From, and the last edge's To equals the
// first edge's From.
type NegativeCycleError[K comparable, W core.Weight] struct {
	Cycle []core.Edge[K, W]
}

func (e *NegativeCycleError[K, W]) Error() string {
	var total W
	for _, c := range e.Cycle {
		total += c.Weight
	}

	return fmt.Sprintf("bellmanford: negative cycle of %d edges, total weight %v", len(e.Cycle), total)
}
