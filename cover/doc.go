// Package cover derives a minimum vertex cover of a bipartite graph from a
// maximum matching, following König's constructive proof.
//
// What
//
//   - NonMatchingNeighbors(g, m) returns N: every Left vertex mapped to the
//     neighbors it reaches through an edge that is not its matching edge.
//   - Derive(ctx, g, m, seeds) returns a Result holding:
//   - Neighbors: the N map (Left vertices with no such edge are omitted).
//   - Reachable: T, every vertex reachable from seeds by alternating paths
//     (Left→Right over N, matched Right→Left over the matching).
//   - Order: T in traversal order.
//   - Cover: (Left − T) ∪ (Right ∩ T).
//   - Verify(g, m, c) checks that c covers every edge and |c| == |m|.
//
// Seeds
//
//	The seeds must contain every free Left vertex of m. The
//	IndependentLeft set returned by matching.HopcroftKarp is exactly the
//	alternating closure of the free Left vertices, so passing it yields the
//	same T as seeding with the free vertices alone.
//
// Guarantee
//
//	When m is a maximum matching, |Cover| == |m| and every edge of g has an
//	endpoint in Cover; no smaller vertex set covers g.
//
// Complexity (V = |Left|+|Right|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrGraphNil / ErrMatchingNil for nil inputs.
//   - ErrUncoveredEdge, ErrSizeMismatch from Verify.
//   - ctx.Err() when the context is cancelled during the traversal.
package cover
