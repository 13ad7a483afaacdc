// Package digraph defines the minimal directed-graph model shared by the
// sccrank algorithms: a mapping from node key to its set of outgoing
// neighbors, generic over any comparable key type.
//
// What
//
//   - Set[K]: an unordered collection of node keys (map-backed).
//   - Digraph[K]: map from node key → Set of outgoing neighbor keys.
//     Parallel edges are deduplicated by the set; self-loops are legal.
//   - Neighbors(k): lookup-with-default — a key absent from the map behaves
//     as a node with no outgoing edges, never as an error.
//   - Nodes(): every distinct key that appears as a source or as a neighbor.
//   - Reverse(): the transpose graph — for every edge u→v the result holds
//     v→u, and only such edges.
//
// Why
//
//   - Kosaraju's algorithm needs exactly two graph views: the input and its
//     transpose. A plain map-of-sets keeps both cheap to build and free of
//     hidden state, and lets callers construct graphs as literals.
//
// Determinism
//
//	Map iteration order is unspecified; algorithms built on this model must
//	not depend on it. Reverse and Nodes are pure and allocate fresh values.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - AddNode / AddEdge / Neighbors:  O(1) amortized
//   - Nodes / EdgeCount / Reverse:    O(V + E)
//
// Errors
//
//	None. Every operation is total over well-formed inputs; edge uniqueness
//	and key hashability are guaranteed by the map/set representation itself.
package digraph
