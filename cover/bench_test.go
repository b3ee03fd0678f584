package cover_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/konig/builder"
	"github.com/katalvlaran/konig/cover"
	"github.com/katalvlaran/konig/matching"
)

// BenchmarkDerive_RandomSparse measures derivation alone on a 2000×2000 graph.
func BenchmarkDerive_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(2000, 2000, 0.002))
	if err != nil {
		b.Fatal(err)
	}
	mr, err := matching.HopcroftKarp(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cover.Derive(context.Background(), g, mr.Matching, mr.IndependentLeft); err != nil {
			b.Fatal(err)
		}
	}
}
