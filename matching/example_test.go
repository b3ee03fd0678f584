package matching_test

import (
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/matching"
)

// ExampleHopcroftKarp matches Left {1,2} with Right {1,2}; Left 2 can only take Right 1.
func ExampleHopcroftKarp() {
	g := bipartite.NewGraph()
	g.AddEdge(1, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	res, err := matching.HopcroftKarp(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Matching.Pairs() {
		fmt.Println(e)
	}
	fmt.Println("size:", res.Size())
	// Output:
	// L2→R1
	// L1→R2
	// size: 2
}
