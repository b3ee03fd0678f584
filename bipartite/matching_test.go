package bipartite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/konig/bipartite"
)

// TestMatching_SetKeepsBijection flips an augmenting path and checks both indexes.
func TestMatching_SetKeepsBijection(t *testing.T) {
	m := bipartite.NewMatching()
	m.Set(1, 10) // R1-L10
	// augment: R1 moves to L11, R2 takes L10
	m.Set(1, 11)
	m.Set(2, 10)

	require.Equal(t, 2, m.Size())
	u, ok := m.LeftOf(1)
	require.True(t, ok)
	assert.Equal(t, bipartite.Left(11), u)
	v, ok := m.RightOf(10)
	require.True(t, ok)
	assert.Equal(t, bipartite.Right(2), v)
	assert.True(t, m.Contains(10, 2))
	assert.False(t, m.Contains(10, 1))
}

// TestMatching_SetStealsPartner verifies that reusing a Left vertex drops its old pair.
func TestMatching_SetStealsPartner(t *testing.T) {
	m := bipartite.NewMatching()
	m.Set(1, 5)
	m.Set(2, 5)

	assert.Equal(t, 1, m.Size())
	assert.False(t, m.IsMatchedRight(1))
	assert.True(t, m.IsMatchedRight(2))
	assert.True(t, m.IsMatchedLeft(5))
}

// TestMatching_FromMap rejects a Left vertex matched twice.
func TestMatching_FromMap(t *testing.T) {
	_, err := bipartite.MatchingFromMap(map[bipartite.Right]bipartite.Left{1: 1, 2: 1})
	assert.True(t, errors.Is(err, bipartite.ErrLeftMatchedTwice))

	m, err := bipartite.MatchingFromMap(map[bipartite.Right]bipartite.Left{2: 1, 1: 2})
	require.NoError(t, err)
	assert.Equal(t, []bipartite.Edge{{From: 2, To: 1}, {From: 1, To: 2}}, m.Pairs())
}

// TestMatching_Validate covers nil graph, unknown edges and a valid matching.
func TestMatching_Validate(t *testing.T) {
	g := bipartite.FromEdges([]bipartite.Edge{{1, 1}, {1, 2}, {2, 1}})

	m, err := bipartite.MatchingFromMap(map[bipartite.Right]bipartite.Left{2: 1, 1: 2})
	require.NoError(t, err)
	require.NoError(t, m.Validate(g))
	require.ErrorIs(t, m.Validate(nil), bipartite.ErrGraphNil)

	bad, err := bipartite.MatchingFromMap(map[bipartite.Right]bipartite.Left{2: 2})
	require.NoError(t, err)
	require.ErrorIs(t, bad.Validate(g), bipartite.ErrUnknownEdge)
}

// TestMatching_CloneIsIndependent mutates a clone and checks the original.
func TestMatching_CloneIsIndependent(t *testing.T) {
	m := bipartite.NewMatching()
	m.Set(1, 1)
	c := m.Clone()
	c.Set(2, 2)

	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, map[bipartite.Right]bipartite.Left{1: 1}, m.Map())
}

// TestVertexSet_Sorted orders left before right and by ID.
func TestVertexSet_Sorted(t *testing.T) {
	s := bipartite.NewVertexSet(bipartite.R(1), bipartite.L(3), bipartite.L(1), bipartite.R(0))
	assert.False(t, s.Add(bipartite.L(1)))
	assert.True(t, s.Has(bipartite.R(0)))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []bipartite.Vertex{bipartite.L(1), bipartite.L(3), bipartite.R(0), bipartite.R(1)}, s.Sorted())
	assert.Equal(t, []bipartite.Left{1, 3}, s.Lefts())
	assert.Equal(t, []bipartite.Right{0, 1}, s.Rights())
}
