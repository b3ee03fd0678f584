// Package builder provides deterministic and seeded-random constructors for
// bipartite graphs. They feed tests, benchmarks and the `konig generate`
// command with reproducible inputs.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): creates a bipartite.Graph, resolves
//     the builder configuration and applies constructors in order.
//   - Constructors:
//     – CompleteBipartite(n1, n2): every Left i is joined to every Right j.
//     – Perfect(n):                Left i ↔ Right i only.
//     – Path(n):                   zig-zag L0–R0–L1–R1–…, worst case for greedy.
//     – RandomSparse(n1, n2, p):   each pair independently with probability p.
//   - Options:
//     – WithSeed(seed) / WithRand(r): RNG for stochastic constructors.
//     – WithIDBase(left, right):      first ID on each side (default 0, 0).
//
// Guarantees:
//
//   - Deterministic emission order: Left index ascending, then Right index.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors wrap sentinels (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) with the constructor name.
package builder
