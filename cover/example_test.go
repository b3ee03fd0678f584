package cover_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/cover"
	"github.com/katalvlaran/konig/matching"
)

// ExampleDerive derives a cover where three Left vertices share one Right vertex.
func ExampleDerive() {
	g := bipartite.FromEdges([]bipartite.Edge{
		{From: 1, To: 1}, {From: 2, To: 1}, {From: 3, To: 1}, {From: 3, To: 2},
	})
	mr, err := matching.HopcroftKarp(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := cover.Derive(context.Background(), g, mr.Matching, mr.IndependentLeft)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("matching:", mr.Size())
	fmt.Println("cover:", res.Cover.Sorted())
	// Output:
	// matching: 2
	// cover: [L3 R1]
}
