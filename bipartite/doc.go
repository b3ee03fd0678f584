// Package bipartite defines the data model shared by the matching and cover
// packages: tagged vertex identifiers for the two sides, the Graph adjacency,
// the Matching between sides, and ordered vertex sets.
//
// What
//
//   - Left and Right are distinct integer newtypes. The same number may appear
//     on both sides and names two different vertices; the compiler keeps the
//     two ID spaces apart.
//   - Vertex is the tagged union {Side, ID} used wherever both sides mix
//     (reachability sets, covers).
//   - Graph maps each Left vertex to the ordered sequence of its Right
//     neighbors. Enumeration order is first-seen insertion order.
//   - Matching maps Right → Left together with the reverse index.
//
// Determinism
//
//	Lefts(), Rights() and Neighbors(u) return vertices in insertion order,
//	so every algorithm that walks them is reproducible for a fixed input.
//	SortedLefts() / SortedRights() give an order independent of input layout.
//
// Concurrency
//
//	Graph guards its storage with a sync.RWMutex. Algorithms only read the
//	graph, so one graph may be solved from several goroutines at once.
//
// Errors
//
//   - ErrGraphNil        if a nil *Graph is passed where one is required.
//   - ErrUnknownEdge     if a matched pair is not an edge of the graph.
//   - ErrLeftMatchedTwice if one Left vertex is matched to two Right vertices.
package bipartite
