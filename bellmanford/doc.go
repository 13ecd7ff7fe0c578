// Package bellmanford implements single-source shortest paths over a
// core.Graph with tolerance for negative edge weights.
//
// Two distinct operations are provided and deliberately kept separate:
//
//   - BellmanFord: the classic all-destinations relaxation. Seeds the
//     source's immediate neighbors, runs up to |V|-1 relaxation rounds with
//     an early exit when a round produces no update, then performs one extra
//     detection round. If any edge can still be relaxed, a negative cycle
//     exists; the cycle is reconstructed by walking predecessor pointers and
//     returned through *NegativeCycleError instead of a result map.
//   - BellmanFordTo: a single-target variant that seeds the source with a
//     zero-cost empty path and never relaxes into a node already on the
//     accumulated path. This guarantees termination and simple paths even in
//     graphs with zero- or negative-weight cycles, at the price of true
//     shortest-path optimality in such graphs. It performs no negative-cycle
//     detection.
//
// Complexity:
//
//   - Time:  O(V · E) worst case for both variants (V-1 rounds, each round
//     regenerating and relaxing every known node's out-edges).
//   - Space: O(V) predecessor state for BellmanFord; O(V · L) for
//     BellmanFordTo, where L is the mean retained path length.
//
// Errors:
//
//   - ErrNilGraph: a nil graph was supplied.
//   - *NegativeCycleError: BellmanFord found a negative cycle reachable from
//     the source; the error carries the cycle's edges as a closed walk.
//
// An unreachable destination is never an error: it is simply absent from the
// BellmanFord result map, and BellmanFordTo reports it with a false second
// result.
package bellmanford
