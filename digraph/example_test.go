package digraph_test

import (
	"fmt"

	"github.com/velkarin/sccrank/digraph"
)

// ExampleDigraph_Reverse transposes a small triangle with a pendant edge.
func ExampleDigraph_Reverse() {
	g := digraph.Digraph[string]{
		"a": digraph.NewSet("b"),
		"b": digraph.NewSet("c"),
		"c": digraph.NewSet("a", "d"),
	}

	rev := g.Reverse()
	fmt.Println(rev.Neighbors("d").Contains("c")) // c→d became d→c
	fmt.Println(rev.Neighbors("a").Contains("c")) // c→a became a→c
	fmt.Println(rev.EdgeCount())
	// Output:
	// true
	// true
	// 4
}

// ExampleDigraph_Neighbors shows the lookup-with-default contract:
// keys absent from the graph read as nodes without outgoing edges.
func ExampleDigraph_Neighbors() {
	g := digraph.New[int]()
	g.AddEdge(1, 2)

	fmt.Println(g.Neighbors(1).Len())
	fmt.Println(g.Neighbors(99).Len())
	// Output:
	// 1
	// 0
}
