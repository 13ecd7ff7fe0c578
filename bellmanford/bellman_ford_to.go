package bellmanford

import "github.com/katalvlaran/wayfind/core"

// BellmanFordTo finds the best simple path from source to target.
//
// Unlike BellmanFord, this variant accumulates whole paths rather than
// predecessor pointers: the source is seeded with a zero-cost empty path,
// and every relaxation round skips any edge whose destination is already in
// the current path's visited-node set. No path can therefore repeat a node,
// which guarantees termination and simple paths even when the graph contains
// zero- or negative-weight cycles, at the cost of true shortest-path
// optimality in such graphs. No negative-cycle detection is performed.
//
// The second result is false when target was never reached; that is not an
// error. When source equals target the zero-length seed path is returned.
//
// Complexity: O(V · E · L) time, where L is the mean retained path length
// (each relaxation copies the path it extends); O(V · L) space.
func BellmanFordTo[K comparable, V core.Connector[K, V, W], W core.Weight](g *core.Graph[K, V, W], source, target K) (core.SharedPath[K, W], bool, error) {
	var none core.SharedPath[K, W]
	if g == nil {
		return none, false, ErrNilGraph
	}

	// 1) Seed the source with the zero-cost empty path.
	best := make(map[K]core.SharedPath[K, W], g.Order())
	best[source] = core.NewSharedPath(core.EmptyPath[K, W](source))

	// 2) Relax for up to |V|-1 rounds over the keys known at round start.
	n := g.Order()
	var updated bool
	for round := 0; round < n-1; round++ {
		updated = false
		keys := make([]K, 0, len(best))
		for k := range best {
			keys = append(keys, k)
		}

		for _, k := range keys {
			cur := best[k]
			for _, e := range g.GenerateEdges(k) {
				// Cycle guard: never extend a path back into itself.
				if cur.Visited(e.To) {
					continue
				}
				newTotal := cur.Total() + e.Weight
				if existing, ok := best[e.To]; ok && newTotal >= existing.Total() {
					continue
				}
				best[e.To] = cur.Extend(e)
				updated = true
			}
		}

		// 3) Stable round: best paths cannot improve further.
		if !updated {
			break
		}
	}

	sp, ok := best[target]

	return sp, ok, nil
}
