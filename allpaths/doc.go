// Package allpaths enumerates every simple path leaving a source node,
// recording each arrival it makes along the way.
//
// The exploration keeps an explicit LIFO stack of open SharedPaths, seeded
// with one single-edge path per outgoing edge of the source. Popping a path
// whose frontier node has no outgoing edges records it as complete there.
// Otherwise every one-edge extension is built: each extension is recorded
// under its new frontier node (including extensions that revisit a node,
// capturing the one-step arrival), but only extensions reaching a
// not-yet-visited node go back on the stack for further expansion. Open
// paths are therefore always simple, which is what guarantees termination
// on cyclic graphs.
//
// The result maps each node key to the distinct SharedPaths that terminate
// at or pass through it. Each path is recorded exactly once.
//
// This enumeration is exponential in the worst case. It exists for small,
// bounded graphs such as demo grids and cross-checks in tests, not for
// production-scale inputs.
//
// Errors:
//
//   - ErrNilGraph: a nil graph was supplied.
package allpaths
