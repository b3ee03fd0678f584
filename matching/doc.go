// Package matching computes maximum-cardinality matchings of bipartite graphs
// with the Hopcroft–Karp algorithm.
//
// What
//
//   - HopcroftKarp(g, opts...) returns a Result holding:
//   - Matching: the maximum matching, Right → Left.
//   - IndependentLeft: Left vertices present in the final layering (every
//     free Left vertex plus every Left vertex reached from one by an
//     alternating path).
//   - IndependentRight: Right vertices with at least one edge that the final
//     layering never reached.
//     Together the two sets form a maximum independent set (König).
//   - FlowSize(ctx, g) recomputes the maximum matching size through a unit
//     capacity network and flow.Dinic; use it as an independent cross-check.
//
// Algorithm
//
//  1. Greedy seed: each Left vertex, in the configured order, takes its first
//     still-unmatched neighbor.
//  2. Phase loop:
//     a. Layering: BFS from all free Left vertices over non-matching edges
//     (Left→Right) and matching edges (Right→Left). preds[v] collects every
//     Left predecessor of Right vertex v in its layer; pred[u] is Free for
//     first-layer vertices or From(v) for the Right vertex that led to u.
//     Expansion stops at the first layer holding a free Right vertex, or
//     when a layer adds nothing.
//     b. No free Right vertex reached → the matching is maximum.
//     c. Otherwise, from every free Right vertex found, walk backwards
//     through preds/pred with an explicit stack. Entries are deleted as
//     they are consumed, so every vertex is searched at most once per
//     phase and the augmenting paths found in one phase are disjoint.
//
// Determinism
//
//	OrderFirstSeen (default) walks vertices and neighbors in graph insertion
//	order. OrderSorted walks both in ascending ID order, so the result does
//	not depend on how the input was laid out.
//
// Complexity (V = |Left|+|Right|, E = |edges|)
//
//   - Time:   O(E·√V)   (O(√V) phases, each O(E))
//   - Memory: O(V + E)  (adjacency snapshot, layering maps)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked per phase and per search root.
//   - WithGreedySeed(b):  enable/disable the greedy seed (default on).
//   - WithOrder(o):       OrderFirstSeen or OrderSorted.
//   - WithOnPhase(fn):    called after every augmenting phase.
//
// Errors
//
//   - ErrGraphNil        if g is nil.
//   - ErrOptionViolation for an unknown Order.
//   - ctx.Err()          when the context is cancelled.
package matching
