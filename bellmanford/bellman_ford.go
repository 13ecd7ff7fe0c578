package bellmanford

import (
	"maps"
	"slices"

	"github.com/katalvlaran/wayfind/core"
)

// BellmanFord computes shortest paths from source to every reachable node of
// g, tolerating negative edge weights.
//
// Seeding uses the source's immediate neighbors: one predecessor entry per
// outgoing edge (the cheapest parallel edge wins). Up to |V|-1 relaxation
// rounds follow; each round regenerates the outgoing edges of every node in
// the working map and relaxes cost[u]+w(u,v) < cost[v]. A round with no
// update terminates the loop early. One extra detection round then checks
// whether any edge can still be relaxed; if so, a negative cycle reachable
// from the source exists and is returned via *NegativeCycleError instead of
// a result map.
//
// The result maps every reached node key to its Route: the minimum total
// cost and the ordered edge sequence from source, rebuilt by following
// predecessor pointers and reversing.
//
// A source with no outgoing edges (or absent from the graph) yields an
// empty, non-nil map.
//
// Complexity: O(V · E) time, O(V) predecessor state.
func BellmanFord[K comparable, V core.Connector[K, V, W], W core.Weight](g *core.Graph[K, V, W], source K) (map[K]Route[K, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	r := &relaxer[K, V, W]{
		g:      g,
		source: source,
		paths:  make(map[K]pred[K, W]),
	}

	// 1) Seed predecessor state with the source's immediate neighbors.
	r.seed()

	// 2) Relax for up to |V|-1 rounds, stopping early once stable.
	r.run()

	// 3) One more round: any remaining relaxable edge proves a negative cycle.
	if cycle := r.detect(); cycle != nil {
		return nil, &NegativeCycleError[K, W]{Cycle: cycle}
	}

	// 4) Rebuild full routes from the predecessor pointers.
	return r.routes(), nil
}

// pred records the best-known arrival at a node: its accumulated cost from
// the source and the edge used to enter it.
type pred[K comparable, W core.Weight] struct {
	cost W
	edge core.Edge[K, W]
}

// relaxer holds the mutable state of one BellmanFord execution.
type relaxer[K comparable, V core.Connector[K, V, W], W core.Weight] struct {
	g      *core.Graph[K, V, W]
	source K
	paths  map[K]pred[K, W] // node key → best-known (cost, entering edge)
}

// seed installs one predecessor entry per outgoing edge of the source,
// keeping the cheapest entry when parallel edges share a destination.
func (r *relaxer[K, V, W]) seed() {
	for _, e := range r.g.GenerateEdges(r.source) {
		if cur, ok := r.paths[e.To]; ok && cur.cost <= e.Weight {
			continue
		}
		r.paths[e.To] = pred[K, W]{cost: e.Weight, edge: e}
	}
}

// run performs the bounded relaxation rounds. Each round walks a snapshot of
// the working map so that relaxations within the round do not feed on each
// other, exactly one edge layer per round.
func (r *relaxer[K, V, W]) run() {
	n := r.g.Order()
	var updated bool
	for round := 0; round < n-1; round++ {
		updated = false
		for v, p := range maps.Clone(r.paths) {
			for _, e := range r.g.GenerateEdges(v) {
				newCost := p.cost + e.Weight
				cur, ok := r.paths[e.To]
				if ok && newCost >= cur.cost {
					continue
				}
				r.paths[e.To] = pred[K, W]{cost: newCost, edge: e}
				updated = true
			}
		}
		if !updated {
			break
		}
	}
}

// detect runs the extra detection round. It returns a negative cycle as an
// ordered closed walk, or nil when the relaxation has genuinely converged.
func (r *relaxer[K, V, W]) detect() []core.Edge[K, W] {
	for v, p := range maps.Clone(r.paths) {
		for _, e := range r.g.GenerateEdges(v) {
			cur, ok := r.paths[e.To]
			if !ok {
				continue
			}
			if p.cost+e.Weight < cur.cost {
				// Install the still-relaxable edge first: only then is the
				// |V|-step predecessor walk from e.To guaranteed to land
				// inside the cycle. The destination's previous chain may run
				// straight back to the source and never touch it.
				r.paths[e.To] = pred[K, W]{cost: p.cost + e.Weight, edge: e}

				return r.cycleFrom(e.To)
			}
		}
	}

	return nil
}

// cycleFrom reconstructs the negative cycle responsible for a still-relaxable
// edge ending at from. The caller must have installed that edge as from's
// predecessor; the chain from from then contains the cycle, so following
// predecessor pointers |V| times lands inside it. They are then followed
// again collecting edges until the landing node recurs, and the collected
// edges are reversed into travel order before returning.
func (r *relaxer[K, V, W]) cycleFrom(from K) []core.Edge[K, W] {
	n := r.g.Order()

	// 1) Walk |V| predecessor steps to land inside the cycle.
	cur := from
	for i := 0; i < n; i++ {
		p, ok := r.paths[cur]
		if !ok {
			break
		}
		cur = p.edge.From
	}

	// 2) Collect predecessor edges until the landing node recurs.
	start := cur
	var cycle []core.Edge[K, W]
	for i := 0; i <= n; i++ {
		p, ok := r.paths[cur]
		if !ok {
			break
		}
		cycle = append(cycle, p.edge)
		cur = p.edge.From
		if cur == start {
			break
		}
	}

	// 3) The walk followed predecessors backwards; reverse into travel order.
	slices.Reverse(cycle)

	return cycle
}

// routes turns the converged predecessor state into full Route values, one
// per reached node, by walking predecessor pointers back to the source and
// reversing the collected edges.
func (r *relaxer[K, V, W]) routes() map[K]Route[K, W] {
	n := r.g.Order()
	out := make(map[K]Route[K, W], len(r.paths))
	for v, p := range r.paths {
		edges := make([]core.Edge[K, W], 0, 4)
		cur := p.edge
		for i := 0; i <= n; i++ {
			edges = append(edges, cur)
			if cur.From == r.source {
				break
			}
			prev, ok := r.paths[cur.From]
			if !ok {
				break
			}
			cur = prev.edge
		}
		slices.Reverse(edges)
		out[v] = Route[K, W]{Total: p.cost, Edges: edges}
	}

	return out
}
