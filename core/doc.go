// Package core provides the generic graph primitives shared by every
// wayfind algorithm: edges, paths, shared path handles, and the Graph
// container with its edge-generation contract.
//
// What:
//
//   - Edge[K, W]: an immutable, directed, weighted arc between two node keys,
//     carrying a per-generation sequential ID.
//   - Path[K, W] / SharedPath[K, W]: an accumulated edge sequence with running
//     total cost and visited-node set; SharedPath is a cheap, read-only handle
//     so many open search branches can reference one Path without copying it.
//   - Graph[K, V, W]: a map from node key to a lock-guarded node value; edges
//     are produced on demand by asking each value for its outgoing
//     connections via the Connector contract.
//   - Connector / Connection: the two-step capability contract a domain type
//     implements to plug into the engine. A Connector describes abstract
//     moves first; each Connection is then finalized into a costed Edge.
//
// Why:
//
//   - The same algorithms serve tile grids, state graphs, or any domain that
//     can describe its own outgoing connections, without an adapter layer.
//   - Regenerating edges on every call (no caching) lets node values encode
//     context-dependent connectivity, such as filtering blocked neighbors,
//     with no invalidation logic.
//
// Ordering:
//
//   - Path.Compare and SharedPath.Compare return the INVERTED total-cost
//     ordering: a larger total compares as less. A max-heap built on this
//     comparator therefore behaves as a min-heap over cost. Frontier
//     implementations must preserve this inversion; see bestfirst.
//
// Concurrency:
//
//   - Node values sit behind a sync.RWMutex and are only read during
//     traversal. All node insertion must complete before any search begins;
//     inserting concurrently with a search is undefined behavior by contract.
//   - Searches hold no locks across calls into Connector implementations;
//     the node value is copied out under a read lock first.
//
// There is no cancellation or timeout mechanism in this package; callers
// needing bounded search time must impose an external budget.
package core
