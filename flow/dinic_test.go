package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/konig/flow"
)

// DinicSuite exercises the Dinic implementation under various scenarios.
type DinicSuite struct {
	suite.Suite
}

// TestSingleArc verifies that a single arc yields max flow equal to its capacity.
func (s *DinicSuite) TestSingleArc() {
	nw := flow.NewNetwork(2)
	require.NoError(s.T(), nw.AddArc(0, 1, 7))

	mf, err := flow.Dinic(nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
	require.Equal(s.T(), int64(0), nw.Residual(0, 1), "forward arc should be saturated")
	require.Equal(s.T(), int64(7), nw.Residual(1, 0), "reverse arc should carry the flow")
}

// TestMultiPath verifies max flow on two paths sharing the sink.
func (s *DinicSuite) TestMultiPath() {
	// 0→1 (5), 0→2 (4), 2→1 (3)
	nw := flow.NewNetwork(3)
	require.NoError(s.T(), nw.AddArc(0, 1, 5))
	require.NoError(s.T(), nw.AddArc(0, 2, 4))
	require.NoError(s.T(), nw.AddArc(2, 1, 3))

	mf, err := flow.Dinic(nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), mf) // 5 + 3
}

// TestLogger checks that every blocking-flow push is logged at debug level.
func (s *DinicSuite) TestLogger() {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	nw := flow.NewNetwork(3)
	require.NoError(s.T(), nw.AddArc(0, 1, 5))
	require.NoError(s.T(), nw.AddArc(0, 2, 4))
	require.NoError(s.T(), nw.AddArc(2, 1, 3))

	opts := flow.DefaultOptions()
	opts.Logger = logger
	_, err := flow.Dinic(nw, 0, 1, opts)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), hook.AllEntries())
	for _, e := range hook.AllEntries() {
		require.Equal(s.T(), logrus.DebugLevel, e.Level)
	}
	require.Contains(s.T(), hook.LastEntry().Message, "total 8")
}

// TestParallelArcs checks that parallel arcs add up.
func (s *DinicSuite) TestParallelArcs() {
	nw := flow.NewNetwork(2)
	require.NoError(s.T(), nw.AddArc(0, 1, 2))
	require.NoError(s.T(), nw.AddArc(0, 1, 5))

	mf, err := flow.Dinic(nw, 0, 1, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), mf)
}

// TestLevelRebuildInterval ensures forced rebuilds do not change the result.
func (s *DinicSuite) TestLevelRebuildInterval() {
	// S=0, A=1, B=2, C=3, T=4: S→A(2), S→B(1), A→C(1), B→C(1), C→T(2)
	build := func() *flow.Network {
		nw := flow.NewNetwork(5)
		_ = nw.AddArc(0, 1, 2)
		_ = nw.AddArc(0, 2, 1)
		_ = nw.AddArc(1, 3, 1)
		_ = nw.AddArc(2, 3, 1)
		_ = nw.AddArc(3, 4, 2)

		return nw
	}

	opts := flow.DefaultOptions()
	opts.LevelRebuildInterval = 1
	mf1, err := flow.Dinic(build(), 0, 4, opts)
	require.NoError(s.T(), err)

	mf2, err := flow.Dinic(build(), 0, 4, flow.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), int64(2), mf1)
	require.Equal(s.T(), mf1, mf2)
}

// TestCancelled ensures a cancelled context aborts the run.
func (s *DinicSuite) TestCancelled() {
	nw := flow.NewNetwork(2)
	_ = nw.AddArc(0, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts := flow.DefaultOptions()
	opts.Ctx = ctx

	_, err := flow.Dinic(nw, 0, 1, opts)
	require.True(s.T(), errors.Is(err, context.Canceled))
}

// TestTerminals covers missing source or sink and source == sink.
func (s *DinicSuite) TestTerminals() {
	nw := flow.NewNetwork(1)

	_, err := flow.Dinic(nw, 5, 0, flow.DefaultOptions())
	require.True(s.T(), errors.Is(err, flow.ErrSourceNotFound))

	_, err = flow.Dinic(nw, 0, -1, flow.DefaultOptions())
	require.True(s.T(), errors.Is(err, flow.ErrSinkNotFound))

	mf, err := flow.Dinic(nw, 0, 0, flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Zero(s.T(), mf)
}

// TestAddArcErrors covers range and negative capacity checks.
func (s *DinicSuite) TestAddArcErrors() {
	nw := flow.NewNetwork(2)
	require.ErrorIs(s.T(), nw.AddArc(0, 2, 1), flow.ErrNodeRange)

	err := nw.AddArc(0, 1, -3)
	var ee flow.EdgeError
	require.True(s.T(), errors.As(err, &ee))
	require.Equal(s.T(), 0, ee.From)
	require.Equal(s.T(), 1, ee.To)
	require.Equal(s.T(), int64(-3), ee.Cap)
}

// TestDinicSuite runs the Dinic suite.
func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}
