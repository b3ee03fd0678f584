// Package konig computes minimum vertex covers of bipartite graphs.
//
// Solve runs the full pipeline on a bipartite.Graph:
//
//  1. matching.HopcroftKarp finds a maximum matching together with the Left
//     vertices of its final layering (A) and the unlayered Right vertices (B).
//  2. cover.Derive walks alternating paths from A and builds the cover
//     (Left − T) ∪ (Right ∩ T), which by König's theorem has exactly as many
//     vertices as the matching.
//
// Subpackages:
//
//	bipartite/ — tagged Left/Right IDs, Graph, Matching, VertexSet
//	matching/  — Hopcroft–Karp and the unit-network flow cross-check
//	cover/     — N map, reachability set T, cover, Verify
//	bfs/       — generic breadth-first traversal
//	flow/      — Dinic and Edmonds–Karp max-flow over dense int networks
//	builder/   — deterministic and random bipartite graph constructors
//	edgelist/  — the "m, then m lines of S L" text format
//
// The konig command (cmd/konig) reads an edge list and prints the matching,
// N, T and the cover.
//
// Quick example:
//
//	g := bipartite.FromEdges([]bipartite.Edge{{From: 1, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}})
//	sol, err := konig.Solve(ctx, g, konig.WithVerify())
//	// sol.Cover.Sorted() == [L1 L2]
package konig
