package konig_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/konig"
	"github.com/katalvlaran/konig/bipartite"
)

// ExampleSolve covers a graph whose two sides share vertex IDs.
func ExampleSolve() {
	g := bipartite.FromEdges([]bipartite.Edge{
		{From: 1, To: 1}, {From: 1, To: 2}, {From: 2, To: 1},
	})
	sol, err := konig.Solve(context.Background(), g, konig.WithVerify())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("matching:", sol.Matching.Pairs())
	fmt.Println("cover:", sol.Cover.Sorted())
	// Output:
	// matching: [L2→R1 L1→R2]
	// cover: [L1 L2]
}
