// Package graphtest provides the shared list-graph fixture used by the
// algorithm test suites: a minimal adjacency-list node type implementing
// the Connector contract over string keys and int64 weights, and a builder
// assembling whole graphs from literal adjacency maps.
//
// Determinism contract: ListNode sorts its outgoing arcs by destination
// then weight before reporting them, so repeated Connections calls and
// repeated test runs see identical edge order.
package graphtest

import (
	"sort"

	"github.com/katalvlaran/wayfind/core"
)

// EdgeSpec describes one outgoing arc of a ListNode.
type EdgeSpec struct {
	To string
	W  int64
}

// ListNode reports a fixed outgoing adjacency list.
type ListNode struct {
	ID  string
	Out []EdgeSpec
}

func (n ListNode) Connections(_ core.View[string, ListNode, int64]) []core.Connection[string, int64] {
	specs := make([]EdgeSpec, len(n.Out))
	copy(specs, n.Out)
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].To != specs[j].To {
			return specs[i].To < specs[j].To
		}

		return specs[i].W < specs[j].W
	})

	conns := make([]core.Connection[string, int64], 0, len(specs))
	for _, s := range specs {
		conns = append(conns, ListConn{From: n.ID, To: s.To, W: s.W})
	}

	return conns
}

// ListConn is the intermediate move description produced by ListNode.
type ListConn struct {
	From, To string
	W        int64
}

func (c ListConn) Edge(id int) core.Edge[string, int64] {
	return core.Edge[string, int64]{ID: id, From: c.From, To: c.To, Weight: c.W}
}

// Build constructs a Graph from a map of node ID to outgoing arcs.
func Build(adj map[string][]EdgeSpec) *core.Graph[string, ListNode, int64] {
	g := core.NewGraph[string, ListNode, int64]()
	for id, out := range adj {
		g.AddValue(id, ListNode{ID: id, Out: out})
	}

	return g
}
