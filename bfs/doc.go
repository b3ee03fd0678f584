// Package bfs provides a generic breadth-first search over an implicit graph,
// returning visit order, unweighted distances and parent links.
//
// What
//
//   - BFS[V comparable](starts, next, opts...) explores every vertex reachable
//     from any start, expanding vertex x through next(x).
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the nearest start
//   - Parent: map from vertex → its predecessor in the BFS forest
//   - Supports an OnVisit hook (may abort with an error), neighbor filtering
//     and a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - konig uses it to compute alternating-path reachability: vertices are
//     side-tagged bipartite.Vertex values and next follows non-matching edges
//     from the left side and matching edges from the right side.
//
// Determinism
//
//	Starts are enqueued in the given order and neighbors in the order next
//	returns them, so the visit sequence is fully reproducible.
//
// Complexity (V = reached vertices, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(starts, next,
//	    bfs.WithContext[bipartite.Vertex](ctx),
//	    bfs.WithMaxDepth[bipartite.Vertex](3),
//	)
//
// Errors
//
//   - ErrNeighborsNil     if next is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
