// Package bestfirst implements single-source-to-target best-first search
// over a core.Graph, ordered purely by accumulated path cost.
//
// The search keeps a priority frontier of SharedPath values, a closed set of
// finalized node keys, and stops at the first closure of the target: with a
// cost-ordered frontier and non-negative weights, that closure is the
// minimum-cost path. No heuristic or estimate term is consulted; this is
// uniform-cost (Dijkstra-style) expansion, and callers
// needing heuristic-guided search must layer it on top.
//
// The frontier is a max-heap over the REVERSED total-cost ordering of
// core.Path (larger total compares as less), which makes it pop the cheapest
// path first. The inversion is part of the observable contract (it fixes
// tie-break behavior) and must not be normalized away.
//
// Precondition: all edge weights must be non-negative. The search does not
// validate this; with negative weights it silently returns suboptimal
// results.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations plus O(L) per expansion to copy the
//     extended path.
//   - Space: O(E) frontier entries worst case (stale entries are discarded
//     lazily when popped).
//
// Errors:
//
//   - ErrNilGraph: a nil graph was supplied.
//
// An unreachable target is not an error: the result collection is empty.
package bestfirst
