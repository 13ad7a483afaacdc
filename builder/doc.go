// SPDX-License-Identifier: MIT
// Package: sccrank/builder
//
// Package builder constructs deterministic synthetic digraphs for tests,
// benchmarks, and experiments: paths, rings, disjoint ring families,
// complete digraphs, and seeded Erdős–Rényi random digraphs.
//
// Design contract (strict):
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic at runtime.
//   - Every vertex 0..n-1 is registered as a top-level key, so component
//     analyses always cover the full vertex range (tails of paths become
//     sink keys by construction).
//   - Determinism: the same parameters (and seed, where one exists) yield
//     the identical graph; stochastic constructors draw from a private
//     math/rand source in a fixed trial order.
//   - No self-loops are ever emitted; edge sets deduplicate repeats.
//
// Errors:
//
//   - ErrTooFewVertices     a size parameter is below the constructor minimum
//   - ErrInvalidProbability an edge probability lies outside [0,1]
//
// Complexity: O(n) for Path/Cycle/DisjointCycles, O(n²) for Complete and
// RandomSparse (one Bernoulli trial per ordered pair).
package builder
