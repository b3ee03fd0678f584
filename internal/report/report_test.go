package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/konig"
	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/internal/report"
)

func solveEdges(t *testing.T, edges ...bipartite.Edge) *konig.Solution {
	t.Helper()
	sol, err := konig.Solve(context.Background(), bipartite.FromEdges(edges))
	require.NoError(t, err)

	return sol
}

func TestRender_Text(t *testing.T) {
	sol := solveEdges(t,
		bipartite.Edge{From: 1, To: 1}, bipartite.Edge{From: 2, To: 1},
		bipartite.Edge{From: 3, To: 1}, bipartite.Edge{From: 3, To: 2},
	)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatText, sol))
	want := "{1:1 2:3}\n" +
		"{2:[1] 3:[1]}\n" +
		"{L1 L2 R1}\n" +
		"2\n" +
		"3\n" +
		"1\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_TextEmpty(t *testing.T) {
	sol := solveEdges(t)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, "", sol))
	assert.Equal(t, "{}\n{}\n{}\n0\n", buf.String())
}

func TestRender_YAML(t *testing.T) {
	sol := solveEdges(t, bipartite.Edge{From: 1, To: 1}, bipartite.Edge{From: 1, To: 2}, bipartite.Edge{From: 2, To: 1})

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatYAML, sol))

	var got report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []report.Pair{{Right: 1, Left: 2}, {Right: 2, Left: 1}}, got.Matching)
	assert.Equal(t, []report.NeighborList{{Left: 1, Rights: []int{1}}}, got.Neighbors)
	assert.Equal(t, 2, got.Cover.Size)
	assert.Equal(t, []int{1, 2}, got.Cover.Left)
	assert.Equal(t, 2, got.Stats.Phases)
}

func TestRender_JSON(t *testing.T) {
	sol := solveEdges(t, bipartite.Edge{From: 1, To: 1}, bipartite.Edge{From: 2, To: 1})

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatJSON, sol))

	var got report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"L1", "L2", "R1"}, got.Reachable)
	assert.Equal(t, []int{}, got.Cover.Left)
	assert.Equal(t, []int{1}, got.Cover.Right)
}

func TestRender_UnknownFormat(t *testing.T) {
	sol := solveEdges(t)
	assert.Error(t, report.Render(&bytes.Buffer{}, "csv", sol))
}
