// Package flow implements maximum-flow algorithms on a compact integer
// capacity network. Inside konig it serves as an independent oracle: the
// maximum matching of a bipartite graph equals the maximum flow of its unit
// network (source → every Left, Left → Right per edge, every Right → sink).
//
// The algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(E · √V) on unit-capacity bipartite networks.
//
// # Network
//
// Nodes are dense integers 0..n-1. AddArc(u, v, c) stores a forward arc
// and a zero-capacity reverse twin; both algorithms update capacities in
// place, so after a run the Network is the residual network. Use Clone to
// keep the input.
//
// # API
//
//	func Dinic(nw *Network, source, sink int, opts FlowOptions) (int64, error)
//	func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (int64, error)
//
// # Errors
//
//	ErrSourceNotFound - source outside the network.
//	ErrSinkNotFound   - sink outside the network.
//	ErrNodeRange      - AddArc endpoint outside the network.
//	EdgeError         - AddArc with negative capacity.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is done.
package flow
