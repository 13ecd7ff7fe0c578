// Package core defines the central Edge type and the Connector/Connection
// capability contracts that domain node values implement.
//
// This file declares the Weight constraint, Edge, Connector, and Connection.
package core

import "cmp"

// Weight constrains edge-cost types: totally ordered, with the type's zero
// value acting as the additive identity (zero cost).
//
// Any ordered basic type qualifies (int64, float64, ...). Algorithms rely on
// the zero value to seed "already at source" paths and on `+` to accumulate
// totals.
type Weight interface {
	cmp.Ordered
}

// Edge represents a directed, weighted connection between two node keys.
//
// ID disambiguates otherwise-identical parallel edges; it is assigned
// sequentially starting at 0 on every GenerateEdges call and carries no
// meaning across calls. Algorithms compare edges by (From, To, Weight)
// semantics, never by ID.
//
// An Edge is never mutated after construction and is cheap to copy.
type Edge[K comparable, W Weight] struct {
	// ID is the per-generation sequential identifier of this edge.
	ID int

	// From is the source node key.
	From K

	// To is the destination node key.
	To K

	// Weight is the cost of traversing this edge.
	Weight W
}

// Connector is the contract a node value implements to describe its own
// outgoing connectivity.
//
// Connections receives a read-only View of the full node map so the value
// can filter candidates (bounds checks, blocked destinations) before
// reporting them. Implementations must be deterministic per call and free of
// side effects: repeated calls for the same key must produce structurally
// equivalent connection sets, in the same order.
type Connector[K comparable, V any, W Weight] interface {
	Connections(nodes View[K, V, W]) []Connection[K, W]
}

// Connection is an intermediate, not-yet-costed description of a potential
// move out of a node. Edge finalizes it with the sequential id assigned by
// the generating Graph.
//
// The two-step indirection exists so a node can describe "directions" or
// "moves" abstractly before costs and ids are attached.
type Connection[K comparable, W Weight] interface {
	Edge(id int) Edge[K, W]
}
