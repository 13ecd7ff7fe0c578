package core

import "cmp"

// Path is an accumulated sequence of edges with its running total cost and
// the set of node keys it has visited.
//
// Invariants:
//
//   - Nodes is exactly the set of destination keys reached by following
//     Edges from the start, plus the start key itself.
//   - Total equals the sum of all edge weights in Edges.
//   - Edges is empty only for the zero-length path representing "already at
//     source" (Total is the Weight zero value), used to seed BellmanFordTo.
//
// A Path is treated as immutable once built: extension always produces a new
// Path rather than mutating an existing one, so shared handles need no
// synchronization.
type Path[K comparable, W Weight] struct {
	// Total is the accumulated cost of every edge in the path.
	Total W

	// Edges is the ordered edge sequence from source to frontier.
	Edges []Edge[K, W]

	// Nodes is the set of keys visited by the path, start included.
	Nodes map[K]struct{}
}

// EmptyPath returns the zero-length path rooted at start: no edges, zero
// total, and a node set containing only start.
func EmptyPath[K comparable, W Weight](start K) Path[K, W] {
	return Path[K, W]{
		Nodes: map[K]struct{}{start: {}},
	}
}

// PathFromEdge returns the single-edge path traversing e, with both of the
// edge's endpoints in the visited set.
func PathFromEdge[K comparable, W Weight](e Edge[K, W]) Path[K, W] {
	return Path[K, W]{
		Total: e.Weight,
		Edges: []Edge[K, W]{e},
		Nodes: map[K]struct{}{e.From: {}, e.To: {}},
	}
}

// Visited reports whether key is in the path's visited-node set.
func (p *Path[K, W]) Visited(key K) bool {
	_, ok := p.Nodes[key]

	return ok
}

// Last returns the final edge of the path, or false if the path is empty.
func (p *Path[K, W]) Last() (Edge[K, W], bool) {
	if len(p.Edges) == 0 {
		var zero Edge[K, W]

		return zero, false
	}

	return p.Edges[len(p.Edges)-1], true
}

// Compare orders paths by Total, REVERSED: the path with the larger total
// compares as less. A max-heap over this ordering pops the cheapest path
// first, which is exactly how the best-first frontier consumes it. Do not
// "fix" this to a natural ordering; consumers may rely on the tie-break
// behavior it produces.
func (p *Path[K, W]) Compare(other *Path[K, W]) int {
	return cmp.Compare(other.Total, p.Total)
}

// Equal reports whether two paths have the same total and the same edge
// sequence by (From, To, Weight) content. Edge IDs are ignored, since they
// are only stable within one GenerateEdges call.
func (p *Path[K, W]) Equal(other *Path[K, W]) bool {
	if p.Total != other.Total || len(p.Edges) != len(other.Edges) {
		return false
	}
	for i, e := range p.Edges {
		o := other.Edges[i]
		if e.From != o.From || e.To != o.To || e.Weight != o.Weight {
			return false
		}
	}

	return true
}

// SharedPath is a read-only handle to a Path. Copies of a SharedPath alias
// the same underlying Path, which lets thousands of frontier branches and
// result collections hold common prefixes without duplicating them; the
// garbage collector reclaims a Path once the last handle drops it.
//
// Equality and ordering delegate to the pointed-to Path.
type SharedPath[K comparable, W Weight] struct {
	path *Path[K, W]
}

// NewSharedPath wraps p in a SharedPath handle.
func NewSharedPath[K comparable, W Weight](p Path[K, W]) SharedPath[K, W] {
	return SharedPath[K, W]{path: &p}
}

// Valid reports whether the handle points at a Path. The zero SharedPath is
// not valid.
func (sp SharedPath[K, W]) Valid() bool {
	return sp.path != nil
}

// Total returns the accumulated cost of the underlying path.
func (sp SharedPath[K, W]) Total() W {
	return sp.path.Total
}

// Edges returns the underlying edge sequence. Callers must not modify it.
func (sp SharedPath[K, W]) Edges() []Edge[K, W] {
	return sp.path.Edges
}

// Len returns the number of edges in the underlying path.
func (sp SharedPath[K, W]) Len() int {
	return len(sp.path.Edges)
}

// Last returns the final edge of the underlying path, or false if empty.
func (sp SharedPath[K, W]) Last() (Edge[K, W], bool) {
	return sp.path.Last()
}

// Visited reports whether key is in the underlying path's visited set.
func (sp SharedPath[K, W]) Visited(key K) bool {
	return sp.path.Visited(key)
}

// Compare delegates to Path.Compare: the reversed total-cost ordering.
func (sp SharedPath[K, W]) Compare(other SharedPath[K, W]) int {
	return sp.path.Compare(other.path)
}

// Equal delegates to Path.Equal.
func (sp SharedPath[K, W]) Equal(other SharedPath[K, W]) bool {
	return sp.path.Equal(other.path)
}

// Extend returns a new SharedPath whose Path appends e: the edge list and
// node set are copied, e.To joins the visited set, and e.Weight joins the
// total. The receiver's Path is left untouched.
//
// Complexity: O(L) in the current path length.
func (sp SharedPath[K, W]) Extend(e Edge[K, W]) SharedPath[K, W] {
	edges := make([]Edge[K, W], len(sp.path.Edges), len(sp.path.Edges)+1)
	copy(edges, sp.path.Edges)
	edges = append(edges, e)

	nodes := make(map[K]struct{}, len(sp.path.Nodes)+1)
	for k := range sp.path.Nodes {
		nodes[k] = struct{}{}
	}
	nodes[e.To] = struct{}{}

	return NewSharedPath(Path[K, W]{
		Total: sp.path.Total + e.Weight,
		Edges: edges,
		Nodes: nodes,
	})
}
