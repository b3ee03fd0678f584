package konig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konig"
	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/builder"
	"github.com/katalvlaran/konig/matching"
)

func TestSolve_Errors(t *testing.T) {
	_, err := konig.Solve(context.Background(), nil)
	assert.True(t, errors.Is(err, konig.ErrGraphNil))

	_, err = konig.Solve(context.Background(), bipartite.NewGraph(), konig.WithOrder(matching.Order(7)))
	assert.True(t, errors.Is(err, matching.ErrOptionViolation))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = konig.Solve(ctx, bipartite.FromEdges([]bipartite.Edge{{From: 1, To: 1}}))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolve_Empty(t *testing.T) {
	sol, err := konig.Solve(context.Background(), bipartite.NewGraph(), konig.WithVerify())
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Matching.Size())
	assert.Equal(t, 0, sol.Size())
	assert.True(t, sol.Verified)
}

func TestSolve_SharedIDs(t *testing.T) {
	g := bipartite.FromEdges([]bipartite.Edge{{From: 1, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}})
	sol, err := konig.Solve(context.Background(), g, konig.WithVerify())
	require.NoError(t, err)

	assert.Equal(t, map[bipartite.Right]bipartite.Left{1: 2, 2: 1}, sol.Matching.Map())
	assert.Equal(t, []bipartite.Vertex{bipartite.L(1), bipartite.L(2)}, sol.Cover.Sorted())
	assert.Equal(t, 1, sol.Seeded)
	assert.Equal(t, 1, sol.Augmentations)
}

func TestSolve_IsolatedLeft(t *testing.T) {
	g := bipartite.FromEdges([]bipartite.Edge{{From: 1, To: 1}, {From: 2, To: 1}})
	g.AddLeft(9)
	sol, err := konig.Solve(context.Background(), g, konig.WithVerify())
	require.NoError(t, err)

	assert.False(t, sol.Matching.IsMatchedLeft(9))
	assert.False(t, sol.Cover.Has(bipartite.L(9)))
	assert.Equal(t, 1, sol.Size())
}

// TestSolve_Idempotent runs twice with both orders and compares sizes.
func TestSolve_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(21)}, builder.RandomSparse(40, 35, 0.08))
	require.NoError(t, err)

	first, err := konig.Solve(context.Background(), g)
	require.NoError(t, err)
	second, err := konig.Solve(context.Background(), g)
	require.NoError(t, err)
	sorted, err := konig.Solve(context.Background(), g, konig.WithOrder(matching.OrderSorted), konig.WithGreedySeed(false))
	require.NoError(t, err)

	assert.Equal(t, first.Matching.Map(), second.Matching.Map())
	assert.Equal(t, first.Cover, second.Cover)
	assert.Equal(t, first.Size(), sorted.Size())
}

// TestSolve_VerifyRandom exercises every verification step on random graphs.
func TestSolve_VerifyRandom(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(15, 12, 0.15))
		require.NoError(t, err)

		sol, err := konig.Solve(context.Background(), g, konig.WithVerify())
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, sol.Matching.Size(), sol.Size())
		assert.Equal(t, g.LeftCount()+g.RightCount()-sol.Size(),
			len(sol.IndependentLeft)+len(sol.IndependentRight), "seed %d", seed)
	}
}

// TestSolve_LogsPhases checks debug entries reach the supplied logger.
func TestSolve_LogsPhases(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := builder.BuildGraph(nil, nil, builder.Path(6))
	require.NoError(t, err)
	_, err = konig.Solve(context.Background(), g, konig.WithLogger(logger), konig.WithVerify())
	require.NoError(t, err)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "augmenting phase")
	assert.Contains(t, msgs, "maximum matching found")
	assert.Contains(t, msgs, "cover derived")
	assert.Equal(t, "solution verified", hook.LastEntry().Message)
	assert.Equal(t, 11, hook.LastEntry().Data["edges"])
}
