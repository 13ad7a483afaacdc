// Package scc implements Kosaraju's two-pass algorithm over a
// digraph.Digraph: a depth-first finish order of the transpose, followed by
// component extraction on the original graph in reverse finish order.
//
// Both passes run on explicit heap-allocated stacks, so arbitrarily deep
// graphs never exhaust the call stack.
package scc

import (
	"sort"

	"github.com/velkarin/sccrank/digraph"
)

// FinishOrder returns the node keys of g in depth-first finish order
// (postorder): each node appears exactly once, in the order its exploration
// completed. The traversal restarts from every unvisited top-level key, so
// the result covers every node reachable as a key or as a neighbor.
//
// The stack discipline is lazy: the node on top is marked explored on first
// inspection, then re-inspected once per iteration, each time pushing one
// not-yet-explored neighbor, and is popped (and recorded) only when none
// remain. Self-loops and already-explored neighbors are skipped without
// re-pushing, which bounds the total work by O(V+E).
//
// Map iteration order decides tie-breaks between siblings, so the exact
// sequence varies between runs; the finish-order property does not.
func FinishOrder[K comparable](g digraph.Digraph[K], opts ...Option) ([]K, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return finishOrder(g, o)
}

// finishOrder is the option-resolved core of FinishOrder.
func finishOrder[K comparable](g digraph.Digraph[K], o Options) ([]K, error) {
	explored := make(digraph.Set[K], len(g))
	order := make([]K, 0, len(g)) // lower bound; neighbor-only nodes extend it
	stack := make([]K, 0, len(g))

	// Restart from every top-level key; one DFS tree per unvisited root.
	for root := range g {
		if explored.Contains(root) {
			continue
		}
		stack = append(stack, root) // stack is empty here

		for len(stack) > 0 {
			// Cancellation check, once per stack inspection.
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			// 1. Inspect (do not pop) the node on top of the stack.
			node := stack[len(stack)-1]
			// 2. Mark it explored on first inspection, before its
			//    descendants finish, so it is never re-pushed.
			explored.Add(node)

			// 3. Push one not-yet-explored neighbor, if any remains.
			pushed := false
			for nbr := range g.Neighbors(node) {
				if explored.Contains(nbr) {
					continue
				}
				stack = append(stack, nbr)
				pushed = true

				break
			}

			// 4. No unexplored neighbor left: true finish time — pop and record.
			if !pushed {
				stack = stack[:len(stack)-1]
				order = append(order, node)
			}
		}
	}

	return order, nil
}

// partitioner holds the state of the extraction pass: the original graph,
// the explored set shared across all extractions, and the components
// claimed so far.
type partitioner[K comparable] struct {
	graph    digraph.Digraph[K]
	opts     Options
	explored digraph.Set[K]
	comps    [][]K
}

// Components returns the strongly connected components of g, one slice of
// node keys per component, covering every node that appears as a key or as
// a neighbor. Component order and the order of keys within a component are
// unspecified.
//
// Kosaraju's scheme: compute the finish order of the transpose, then walk
// that order in reverse against the original graph, claiming one component
// per still-unclaimed seed. Correctness rests on the seed order and on the
// explored set accumulating across extractions — once a node is claimed, no
// later extraction may claim it again.
//
// Complexity: O(V+E) time, O(V) extra memory, plus one transpose allocation.
func Components[K comparable](g digraph.Digraph[K], opts ...Option) ([][]K, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 1. First pass: finish order of the reversed graph.
	order, err := finishOrder(g.Reverse(), o)
	if err != nil {
		return nil, err
	}

	// 2. Second pass owns a fresh explored set.
	p := &partitioner[K]{
		graph:    g,
		opts:     o,
		explored: make(digraph.Set[K], len(order)),
	}

	// 3. Claim components in reverse finish order.
	for i := len(order) - 1; i >= 0; i-- {
		if err = p.claim(order[i]); err != nil {
			return nil, err
		}
	}

	// 4. Fully isolated keys carry no edges, so the transpose — and with it
	//    the finish order — never mentions them. Sweep them as singletons.
	for node := range g {
		if err = p.claim(node); err != nil {
			return nil, err
		}
	}

	return p.comps, nil
}

// claim extracts the component seeded at seed unless some earlier
// extraction already claimed it.
func (p *partitioner[K]) claim(seed K) error {
	if p.explored.Contains(seed) {
		return nil
	}
	comp, err := p.extract(seed)
	if err != nil {
		return err
	}
	p.comps = append(p.comps, comp)

	return nil
}

// extract runs a plain iterative DFS from seed over the original graph,
// collecting every reachable node not yet claimed by a prior extraction.
// It deliberately does not stop at component boundaries; the seed order
// established by Components is what makes each result a genuine SCC.
func (p *partitioner[K]) extract(seed K) ([]K, error) {
	stack := []K{seed}
	var comp []K

	for len(stack) > 0 {
		select {
		case <-p.opts.Ctx.Done():
			return nil, p.opts.Ctx.Err()
		default:
		}

		// Pop; a node may sit on the stack more than once, so re-check.
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.explored.Contains(node) {
			continue
		}

		// Push all not-yet-claimed neighbors, then claim the node itself.
		for nbr := range p.graph.Neighbors(node) {
			if p.explored.Contains(nbr) {
				continue
			}
			stack = append(stack, nbr)
		}
		p.explored.Add(node)
		comp = append(comp, node)
	}

	return comp, nil
}

// TopSizes returns the sizes of the largest strongly connected components
// of g in descending order, truncated to the configured limit
// (DefaultLimit entries unless WithLimit overrides it). An empty graph
// yields an empty, non-nil slice.
//
// Sink augmentation: every top-level key with an empty neighbor set
// contributes one extra unit-size entry on top of the component that
// already contains it. A bare sink key therefore counts twice — once as
// its singleton component and once as a sink. Callers that want the plain
// partition sizes should use Components and measure the slices directly.
func TopSizes[K comparable](g digraph.Digraph[K], opts ...Option) ([]int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	// 1. Genuine component sizes.
	comps, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, 0, len(comps))
	for _, comp := range comps {
		sizes = append(sizes, len(comp))
	}

	// 2. Sink augmentation: one unit entry per key without outgoing edges.
	for _, nbrs := range g {
		if nbrs.Len() == 0 {
			sizes = append(sizes, 1)
		}
	}

	// 3. Rank descending and keep the leading entries.
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	if len(sizes) > o.Limit {
		sizes = sizes[:o.Limit]
	}

	return sizes, nil
}
