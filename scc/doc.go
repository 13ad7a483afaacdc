// Package scc computes the strongly connected components of a directed
// graph with Kosaraju's two-pass depth-first algorithm, and ranks the
// component sizes in descending order.
//
// What
//
//   - FinishOrder: DFS postorder of a digraph, computed on an explicit
//     heap stack (no recursion, no depth limit).
//   - Components: the SCC partition — finish order of the transpose,
//     consumed in reverse against the original graph, one plain DFS
//     extraction per unclaimed seed, plus a sweep for fully isolated keys.
//   - TopSizes: component sizes with sink augmentation (one extra unit
//     entry per key without outgoing edges), sorted descending and
//     truncated to DefaultLimit entries (tunable via WithLimit).
//   - WeakComponents: the islands of the undirected view, via BFS.
//
// Why
//
//   - Measure how strongly a dependency or call graph is entangled: the
//     largest mutually-reachable clusters are exactly the structures that
//     resist decomposition, incremental processing, or dead-code removal.
//   - Provide the canonical building block for condensation graphs and
//     cycle-aware scheduling.
//
// Determinism
//
//	Map iteration order drives root selection and tie-breaks, so finish
//	orders and component orderings vary between runs. The partition itself,
//	and every size TopSizes reports, are invariant.
//
// Semantics worth knowing
//
//   - Unknown neighbor keys behave as nodes with no outgoing edges;
//     lookups never fail (digraph.Digraph contract).
//   - Self-loops, cycles, disconnected nodes, and the empty graph are all
//     legal inputs; the empty graph yields empty results, not errors.
//   - TopSizes double-counts bare sink keys by construction: such a node
//     appears both as its singleton component and as a sink entry.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - FinishOrder:    Time O(V+E), Memory O(V)
//   - Components:     Time O(V+E), Memory O(V) + one transpose
//   - TopSizes:       Components + O(S log S) for the sort (S = #sizes)
//   - WeakComponents: Time O(V+E), Memory O(V+E)
//
// Errors
//
//   - ErrOptionViolation  invalid functional option (e.g. WithLimit(0))
//   - context errors      traversal canceled via WithContext
//
// Correct operation raises no other errors: every algorithm is total over
// well-formed digraphs.
//
// Usage
//
//	g := digraph.Digraph[int]{
//	    1: digraph.NewSet(2), 2: digraph.NewSet(3), 3: digraph.NewSet(1),
//	    4: digraph.NewSet(5), 5: digraph.NewSet(6), 6: digraph.NewSet(4),
//	}
//	sizes, err := scc.TopSizes(g)            // [3 3]
//	comps, err := scc.Components(g)          // two components of three keys
//	order, err := scc.FinishOrder(g.Reverse())
package scc
