package core

import "sync"

// Node wraps a node value behind a reader/writer lock so multiple in-flight
// searches may read it concurrently. Traversal code only ever takes the read
// lock; Store exists for setup before any search begins.
type Node[V any] struct {
	mu    sync.RWMutex
	value V
}

// NewNode wraps value in a lock-guarded Node.
func NewNode[V any](value V) *Node[V] {
	return &Node[V]{value: value}
}

// Load returns a copy of the node value under the read lock.
// Complexity: O(1) plus the cost of copying V.
func (n *Node[V]) Load() V {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.value
}

// Store replaces the node value under the write lock.
// Must not be called while any search is running; graph contents are
// read-only during traversal by contract.
func (n *Node[V]) Store(value V) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.value = value
}

// Graph associates each node key with its lock-guarded node value and
// produces edges on demand through the Connector contract.
//
// K is the node key type, V the node value type (which must implement
// Connector for its own key/weight types), W the edge weight type.
//
// A Graph exclusively owns its node storage. Insertion via AddNode is the
// only external mutation and must complete before any search begins.
type Graph[K comparable, V Connector[K, V, W], W Weight] struct {
	nodes map[K]*Node[V]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[K comparable, V Connector[K, V, W], W Weight]() *Graph[K, V, W] {
	return &Graph[K, V, W]{nodes: make(map[K]*Node[V])}
}

// AddNode inserts (or replaces) the node value stored under key.
// Keys are unique; adding an existing key overwrites the previous value.
// Complexity: O(1).
func (g *Graph[K, V, W]) AddNode(key K, node *Node[V]) {
	g.nodes[key] = node
}

// AddValue is a convenience wrapper that wraps value in a fresh Node
// before insertion.
func (g *Graph[K, V, W]) AddValue(key K, value V) {
	g.nodes[key] = NewNode(value)
}

// Has reports whether key is present in the graph.
// Complexity: O(1).
func (g *Graph[K, V, W]) Has(key K) bool {
	_, ok := g.nodes[key]

	return ok
}

// Order returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph[K, V, W]) Order() int {
	return len(g.nodes)
}

// Keys returns the node keys in unspecified order.
// Complexity: O(V).
func (g *Graph[K, V, W]) Keys() []K {
	keys := make([]K, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}

	return keys
}

// View returns a read-only accessor over the node map, suitable for handing
// to Connector implementations so they can filter neighbor candidates.
// Complexity: O(1).
func (g *Graph[K, V, W]) View() View[K, V, W] {
	return View[K, V, W]{nodes: g.nodes}
}

// GenerateEdges materializes the outgoing edges of the node stored under key.
//
// The node value is copied out under its read lock, then asked for its
// connections; each connection is finalized into an Edge with a sequential
// id starting at 0 for this call. An absent key yields nil; callers must
// treat "no edges" and "unknown node" identically.
//
// No caching: edges are regenerated on every call, so values may encode
// dynamic connectivity without invalidation logic.
//
// Complexity: O(d) where d is the number of connections reported.
func (g *Graph[K, V, W]) GenerateEdges(key K) []Edge[K, W] {
	// 1) Resolve the node; unknown keys are indistinguishable from dead ends.
	n, ok := g.nodes[key]
	if !ok {
		return nil
	}

	// 2) Copy the value out under the read lock, then release it before
	//    calling into domain code. Connections may read other nodes through
	//    the View without lock-nesting concerns.
	value := n.Load()
	conns := value.Connections(g.View())

	// 3) Finalize each connection into an Edge with a fresh sequential id.
	edges := make([]Edge[K, W], 0, len(conns))
	for i, c := range conns {
		edges = append(edges, c.Edge(i))
	}

	return edges
}

// PropagatePath extends a path with every outgoing edge of its last node,
// producing one new SharedPath per edge. The input path is never mutated.
//
// A path with no edges cannot be propagated (its frontier node is unknown)
// and yields nil.
//
// Complexity: O(d · L) where d is the out-degree of the last node and L the
// current path length (each extension copies the edge list and node set).
func (g *Graph[K, V, W]) PropagatePath(from SharedPath[K, W]) []SharedPath[K, W] {
	last, ok := from.Last()
	if !ok {
		return nil
	}

	edges := g.GenerateEdges(last.To)
	next := make([]SharedPath[K, W], 0, len(edges))
	for _, e := range edges {
		next = append(next, from.Extend(e))
	}

	return next
}

// View is a read-only window over a Graph's node map. Connector
// implementations use it to bounds-check or exclude candidate destinations
// before reporting connections.
type View[K comparable, V any, W Weight] struct {
	nodes map[K]*Node[V]
}

// Has reports whether key exists in the underlying graph.
// Complexity: O(1).
func (vw View[K, V, W]) Has(key K) bool {
	_, ok := vw.nodes[key]

	return ok
}

// Value returns a copy of the node value stored under key, taken under the
// node's read lock. The second result is false if key is absent.
func (vw View[K, V, W]) Value(key K) (V, bool) {
	n, ok := vw.nodes[key]
	if !ok {
		var zero V

		return zero, false
	}

	return n.Load(), true
}

// Order returns the number of nodes visible through the view.
func (vw View[K, V, W]) Order() int {
	return len(vw.nodes)
}
