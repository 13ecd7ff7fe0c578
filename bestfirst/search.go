package bestfirst

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/wayfind/core"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("bestfirst: graph is nil")

// Search finds a minimum-cost path from source to target, assuming all edge
// weights are non-negative (not validated; see the package documentation).
//
// The frontier is seeded with one single-edge path per outgoing edge of
// source. Each iteration pops the cheapest open path; if its frontier node
// is already closed the entry is stale and discarded, otherwise the node is
// closed. Closing the target records the popped path as the result and ends
// the search. Any other closure expands the path along every outgoing edge
// of its frontier node.
//
// The result collection holds at most one path; it is empty when target is
// unreachable or source has no outgoing edges. An unknown source behaves
// like a source with no outgoing edges.
//
// Complexity: O(E log E) heap traffic plus path-copy costs on expansion.
func Search[K comparable, V core.Connector[K, V, W], W core.Weight](g *core.Graph[K, V, W], source, target K) ([]core.SharedPath[K, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1) Seed the frontier: one single-edge path per outgoing edge.
	open := make(frontier[K, W], 0, 16)
	for _, e := range g.GenerateEdges(source) {
		open = append(open, core.NewSharedPath(core.PathFromEdge(e)))
	}
	heap.Init(&open)

	closed := make(map[K]struct{}, g.Order())
	var results []core.SharedPath[K, W]

	// 2) Expand cheapest-first until the target closes or the frontier drains.
	for open.Len() > 0 {
		sp := heap.Pop(&open).(core.SharedPath[K, W])
		last, ok := sp.Last()
		if !ok {
			continue
		}

		// Stale entry: a cheaper path already closed this node.
		if _, done := closed[last.To]; done {
			continue
		}
		closed[last.To] = struct{}{}

		// First closure of the target is the minimum-cost path.
		if last.To == target {
			results = append(results, sp)

			break
		}

		// 3) Extend along every outgoing edge of the frontier node.
		for _, next := range g.PropagatePath(sp) {
			heap.Push(&open, next)
		}
	}

	return results, nil
}

// frontier is the priority queue of open paths. It is a max-heap over the
// reversed total-cost ordering of SharedPath, so Pop yields the path with
// the smallest accumulated total. Less deliberately ranks the
// Compare-greatest element first; do not rewrite it as a natural min-heap.
type frontier[K comparable, W core.Weight] []core.SharedPath[K, W]

func (f frontier[K, W]) Len() int { return len(f) }

func (f frontier[K, W]) Less(i, j int) bool { return f[i].Compare(f[j]) > 0 }

func (f frontier[K, W]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[K, W]) Push(x interface{}) { *f = append(*f, x.(core.SharedPath[K, W])) }

func (f *frontier[K, W]) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
