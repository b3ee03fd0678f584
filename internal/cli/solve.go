package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/konig"
	"github.com/katalvlaran/konig/bipartite"
	"github.com/katalvlaran/konig/edgelist"
	"github.com/katalvlaran/konig/internal/config"
	"github.com/katalvlaran/konig/internal/logging"
	"github.com/katalvlaran/konig/internal/report"
	"github.com/katalvlaran/konig/matching"
)

type solveOptions struct {
	format   string
	order    string
	noGreedy bool
	verify   bool
	dedup    bool
}

func (so *solveOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&so.format, "format", "o", "text", "output format: text|yaml|json (env: KONIG_OUTPUT_FORMAT)")
	fs.StringVar(&so.order, "order", "first-seen", "vertex enumeration order: first-seen|sorted (env: KONIG_ORDER)")
	fs.BoolVar(&so.noGreedy, "no-greedy", false, "skip the greedy initial matching (env: KONIG_GREEDY=false)")
	fs.BoolVar(&so.verify, "verify", false, "verify the cover and cross-check the matching size with max flow (env: KONIG_VERIFY)")
	fs.BoolVar(&so.dedup, "dedup", false, "drop duplicate edges while reading")
}

// merge lets explicitly set flags override cfg.
func (so *solveOptions) merge(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("format") {
		cfg.OutputFormat = so.format
	}
	if fs.Changed("order") {
		cfg.Order = so.order
	}
	if fs.Changed("no-greedy") {
		cfg.Greedy = !so.noGreedy
	}
	if fs.Changed("verify") {
		cfg.Verify = so.verify
	}
}

func newSolveCmd(ro *rootOptions) *cobra.Command {
	so := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Read an edge list and print the matching, N, T and a minimum vertex cover",
		Long: "Read an edge list (first line m, then m lines \"S L\") from file or stdin " +
			"and print the maximum matching, the non-matching neighbor map N, the " +
			"reachability set T, the cover size and one cover vertex per line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so.merge(cmd.Flags(), ro.cfg)

			return runSolve(cmd, args, ro.cfg, so.dedup)
		},
	}
	so.addFlags(cmd.Flags())

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, cfg *config.Config, dedup bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := config.ValidateOutputFormat(cfg.OutputFormat); err != nil {
		return err
	}
	order, err := matching.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	in, name, closeFn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeFn()

	var gopts []bipartite.GraphOption
	if dedup {
		gopts = append(gopts, bipartite.WithDedup())
	}
	g, err := edgelist.Parse(in, gopts...)
	if err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	log.WithField("input", name).Debugf("read %d edges", g.EdgeCount())

	opts := []konig.Option{
		konig.WithOrder(order),
		konig.WithGreedySeed(cfg.Greedy),
		konig.WithLogger(log),
	}
	if cfg.Verify {
		opts = append(opts, konig.WithVerify())
	}
	sol, err := konig.Solve(ctx, g, opts...)
	if err != nil {
		return err
	}
	log.WithField("size", sol.Size()).Info("minimum vertex cover found")

	return report.Render(cmd.OutOrStdout(), cfg.OutputFormat, sol)
}

// openInput returns the file named by args[0], or stdin for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, errors.WithStack(err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}
