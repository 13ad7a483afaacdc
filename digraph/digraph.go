// Package digraph provides the map-based directed-graph model used by the
// sccrank algorithms, together with the edge-transpose primitive.
package digraph

// Set is an unordered collection of node keys.
// A nil Set behaves as empty for reads; Add requires a non-nil Set.
type Set[K comparable] map[K]struct{}

// NewSet returns a Set containing the given items.
func NewSet[K comparable](items ...K) Set[K] {
	s := make(Set[K], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts k into the set. Duplicate inserts are no-ops.
func (s Set[K]) Add(k K) {
	s[k] = struct{}{}
}

// Contains reports whether k is a member of the set.
func (s Set[K]) Contains(k K) bool {
	_, ok := s[k]

	return ok
}

// Len returns the number of members in the set.
func (s Set[K]) Len() int {
	return len(s)
}

// Digraph maps each node key to the set of its outgoing neighbor keys.
// A key may appear as a neighbor without appearing as a top-level key;
// such nodes are treated as present with no outgoing edges (see Neighbors).
// Graphs may be built via New/AddNode/AddEdge or directly as map literals.
type Digraph[K comparable] map[K]Set[K]

// New returns an empty Digraph.
func New[K comparable]() Digraph[K] {
	return make(Digraph[K])
}

// AddNode ensures k exists as a top-level key, with an empty neighbor set
// if it was absent. Existing neighbor sets are left untouched.
func (g Digraph[K]) AddNode(k K) {
	if _, ok := g[k]; !ok {
		g[k] = make(Set[K])
	}
}

// AddEdge inserts the directed edge from→to, allocating the neighbor set
// on first use. Re-adding an existing edge is a no-op (set semantics).
func (g Digraph[K]) AddEdge(from, to K) {
	nbrs, ok := g[from]
	if !ok {
		nbrs = make(Set[K])
		g[from] = nbrs
	}
	nbrs.Add(to)
}

// Neighbors returns the outgoing neighbor set of k.
// A key absent from the graph yields a nil Set, which reads as empty:
// unknown nodes behave as nodes with no outgoing edges, never as a failure.
func (g Digraph[K]) Neighbors(k K) Set[K] {
	return g[k]
}

// Nodes returns the set of every distinct node key in the graph — keys and
// neighbors alike, so neighbor-only nodes are counted exactly once.
func (g Digraph[K]) Nodes() Set[K] {
	nodes := make(Set[K], len(g))
	for node, nbrs := range g {
		nodes.Add(node)
		for nbr := range nbrs {
			nodes.Add(nbr)
		}
	}

	return nodes
}

// EdgeCount returns the total number of directed edges in the graph.
func (g Digraph[K]) EdgeCount() int {
	var total int
	for _, nbrs := range g {
		total += len(nbrs)
	}

	return total
}

// Reverse returns the transpose of g: for every edge u→v in g the result
// contains v→u, and only such edges. Keys of g with no outgoing edges
// contribute no sources to the result (they may still appear as neighbors).
// The result is freshly allocated; g is never mutated.
func (g Digraph[K]) Reverse() Digraph[K] {
	rev := make(Digraph[K], len(g))
	for node, nbrs := range g {
		for nbr := range nbrs {
			rev.AddEdge(nbr, node)
		}
	}

	return rev
}
