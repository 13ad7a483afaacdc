// SPDX-License-Identifier: MIT
// Package: sccrank/builder
//
// builder.go — digraph constructors.
//
// Contract (all constructors):
//   - Vertices are the integers 0..n-1, each registered as a top-level key.
//   - Edges are emitted in a fixed order for a given parameter set, so two
//     calls with equal arguments produce equal graphs.
//   - Validation failures return sentinel errors wrapped with the method
//     tag; no partial graph is returned alongside an error.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/velkarin/sccrank/digraph"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodPath           = "Path"
	methodCycle          = "Cycle"
	methodDisjointCycles = "DisjointCycles"
	methodComplete       = "Complete"
	methodRandomSparse   = "RandomSparse"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCycleCount    = 1
	minCompleteNodes = 1
	minRandomNodes   = 1
	probMin          = 0.0
	probMax          = 1.0
)

// Path returns the directed chain 0→1→…→n-1.
// The tail n-1 is a key with an empty neighbor set (a sink key).
// n ≥ 1; smaller values yield ErrTooFewVertices.
func Path(n int) (digraph.Digraph[int], error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}

	g := make(digraph.Digraph[int], n)
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}

	return g, nil
}

// Cycle returns the directed ring 0→1→…→n-1→0, a single strongly
// connected component. n ≥ 3; smaller values yield ErrTooFewVertices.
func Cycle(n int) (digraph.Digraph[int], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	g := make(digraph.Digraph[int], n)
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g, nil
}

// DisjointCycles returns count vertex-disjoint directed rings of the given
// size, over the vertices 0..count*size-1 in ring-major order: exactly
// count strongly connected components of equal size.
// count ≥ 1 and size ≥ 3; violations yield ErrTooFewVertices.
func DisjointCycles(count, size int) (digraph.Digraph[int], error) {
	if count < minCycleCount {
		return nil, fmt.Errorf("%s: count=%d < min=%d: %w", methodDisjointCycles, count, minCycleCount, ErrTooFewVertices)
	}
	if size < minCycleNodes {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", methodDisjointCycles, size, minCycleNodes, ErrTooFewVertices)
	}

	g := make(digraph.Digraph[int], count*size)
	for c := 0; c < count; c++ {
		lo := c * size
		for i := 0; i < size; i++ {
			g.AddNode(lo + i)
		}
		for i := 0; i < size; i++ {
			g.AddEdge(lo+i, lo+(i+1)%size)
		}
	}

	return g, nil
}

// Complete returns the complete digraph K_n: every ordered pair (u,v) with
// u≠v is an edge; the whole graph is one strongly connected component.
// n ≥ 1; smaller values yield ErrTooFewVertices.
func Complete(n int) (digraph.Digraph[int], error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	g := make(digraph.Digraph[int], n)
	for u := 0; u < n; u++ {
		g.AddNode(u)
		for v := 0; v < n; v++ {
			if v == u {
				continue
			}
			g.AddEdge(u, v)
		}
	}

	return g, nil
}

// RandomSparse samples an Erdős–Rényi digraph over n vertices: each
// ordered pair (u,v), u≠v, becomes an edge independently with probability
// p, drawn from a source seeded with seed. Trials run in ascending (u,v)
// order, so a fixed (n, p, seed) triple always yields the same graph.
// n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
func RandomSparse(n int, p float64, seed int64) (digraph.Digraph[int], error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	g := make(digraph.Digraph[int], n)
	for u := 0; u < n; u++ {
		g.AddNode(u)
		for v := 0; v < n; v++ {
			if v == u {
				continue
			}
			if rng.Float64() < p {
				g.AddEdge(u, v)
			}
		}
	}

	return g, nil
}
