// Package sccrank finds the strongly connected components of a directed
// graph and ranks them by size, using Kosaraju's two-pass algorithm.
//
// Everything happens in memory on a plain map-based graph model — no file
// formats, no I/O, no global state. Node keys are generic over any
// comparable type, so integer IDs, string labels, or small structs all work.
//
// The module is organized under three subpackages:
//
//	digraph/ — the graph model: Digraph[K], neighbor Sets, and the
//	           edge-transpose (Reverse) primitive
//	scc/     — the algorithms: finish-order computation, component
//	           extraction, size ranking, and weakly connected components
//	builder/ — deterministic synthetic digraphs (paths, cycles, random
//	           sparse) for tests, benchmarks, and experiments
//
// Quick taste:
//
//	g := digraph.Digraph[int]{
//	    1: digraph.NewSet(2), 2: digraph.NewSet(3), 3: digraph.NewSet(1),
//	    4: digraph.NewSet(5), 5: digraph.NewSet(6), 6: digraph.NewSet(4),
//	}
//	sizes, _ := scc.TopSizes(g) // → [3 3]
//
// Both depth-first passes run on explicit heap stacks, so arbitrarily deep
// graphs never hit a call-stack limit. All traversals accept a
// context.Context for cooperative cancellation.
//
//	go get github.com/velkarin/sccrank
package sccrank
