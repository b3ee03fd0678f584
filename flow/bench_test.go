package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/konig/flow"
)

// buildRandomNetwork constructs a network with V nodes and roughly p
// probability of an arc between any ordered pair u→v.
func buildRandomNetwork(V int, p float64, maxCap int, seed int64) *flow.Network {
	r := rand.New(rand.NewSource(seed))
	nw := flow.NewNetwork(V)
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u != v && r.Float64() < p {
				_ = nw.AddArc(u, v, int64(r.Intn(maxCap)+1))
			}
		}
	}

	return nw
}

// BenchmarkFlowAlgorithms measures Edmonds–Karp and Dinic on random networks.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		seed     int64
	}{
		{"Small", 200, 0.05, 42},
		{"Medium", 500, 0.02, 4242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			base := buildRandomNetwork(tc.vertices, tc.edgeProb, 20, tc.seed)
			b.Run("EdmondsKarp", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = flow.EdmondsKarp(base.Clone(), 0, tc.vertices-1, flow.DefaultOptions())
				}
			})
			b.Run("Dinic", func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = flow.Dinic(base.Clone(), 0, tc.vertices-1, flow.DefaultOptions())
				}
			})
		})
	}
}
