package scc

import (
	"github.com/velkarin/sccrank/digraph"
)

// WeakComponents returns the weakly connected components of g: the islands
// that remain when every edge is treated as bidirectional. One slice of
// node keys per island, covering keys and neighbors alike; fully isolated
// keys form their own singleton island. Order is unspecified.
//
// Useful as a coarse pre-partition before the strongly connected pass — a
// strongly connected component never spans two islands.
//
// Complexity: O(V+E) time, O(V+E) memory for the undirected view.
func WeakComponents[K comparable](g digraph.Digraph[K], opts ...Option) ([][]K, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 1. Build the undirected view: every edge in both directions, and
	//    every top-level key kept even when it has no edges at all.
	und := make(digraph.Digraph[K], len(g))
	for node, nbrs := range g {
		und.AddNode(node)
		for nbr := range nbrs {
			und.AddEdge(node, nbr)
			und.AddEdge(nbr, node)
		}
	}

	// 2. BFS from every unseen node; each scan drains one island.
	seen := make(digraph.Set[K], len(und))
	var comps [][]K
	for root := range und {
		if seen.Contains(root) {
			continue
		}
		queue := []K{root}
		seen.Add(root)
		var comp []K

		for qi := 0; qi < len(queue); qi++ {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			node := queue[qi]
			comp = append(comp, node)
			for nbr := range und.Neighbors(node) {
				if seen.Contains(nbr) {
					continue
				}
				seen.Add(nbr)
				queue = append(queue, nbr)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
