package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/konig/builder"
	"github.com/katalvlaran/konig/edgelist"
	"github.com/katalvlaran/konig/internal/logging"
)

type generateOptions struct {
	left     int
	right    int
	p        float64
	seed     int64
	complete bool
	perfect  bool
	path     bool
}

func newGenerateCmd(_ *rootOptions) *cobra.Command {
	gen := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated bipartite graph as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, gen)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&gen.left, "left", 10, "number of Left vertices")
	fs.IntVar(&gen.right, "right", 10, "number of Right vertices")
	fs.Float64Var(&gen.p, "p", 0.3, "edge probability for random graphs")
	fs.Int64Var(&gen.seed, "seed", 1, "random seed")
	fs.BoolVar(&gen.complete, "complete", false, "complete bipartite graph K(left,right)")
	fs.BoolVar(&gen.perfect, "perfect", false, "perfect matching on --left vertices per side")
	fs.BoolVar(&gen.path, "path", false, "zig-zag path with --left vertices per side")
	cmd.MarkFlagsMutuallyExclusive("complete", "perfect", "path")

	return cmd
}

func runGenerate(cmd *cobra.Command, gen *generateOptions) error {
	var cons builder.Constructor
	switch {
	case gen.complete:
		cons = builder.CompleteBipartite(gen.left, gen.right)
	case gen.perfect:
		cons = builder.Perfect(gen.left)
	case gen.path:
		cons = builder.Path(gen.left)
	default:
		cons = builder.RandomSparse(gen.left, gen.right, gen.p)
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(gen.seed)}, cons)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logging.FromContext(cmd.Context()).
		WithField("edges", g.EdgeCount()).
		Debug("graph generated")

	return edgelist.Write(cmd.OutOrStdout(), g)
}
