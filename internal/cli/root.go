// Package cli wires the konig cobra commands.
package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/konig/internal/config"
	"github.com/katalvlaran/konig/internal/logging"
)

// rootOptions holds the state shared by every subcommand.
type rootOptions struct {
	envFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger logrus.FieldLogger
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, ro := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger := ro.logger
		if logger == nil {
			logger = fallbackLogger(stderr)
		}
		logger.WithError(err).Error("konig failed")

		return 1
	}

	return 0
}

// NewRootCmd builds the konig command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()

	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "konig",
		Short:         "Minimum vertex cover of bipartite graphs via Hopcroft–Karp and König's theorem",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ro.setup(cmd)
		},
	}
	cmd.SetVersionTemplate("konig version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&ro.envFile, "env-file", "", "dotenv file with KONIG_* settings")
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", "", "log format: text|json (env: KONIG_LOG_FORMAT)")

	cmd.AddCommand(newSolveCmd(ro))
	cmd.AddCommand(newGenerateCmd(ro))
	cmd.AddCommand(newVersionCmd())

	return cmd, ro
}

// setup loads configuration and installs the logger in the command context.
func (ro *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(ro.envFile)
	if err != nil {
		return err
	}
	if ro.verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	if ro.logFormat != "" {
		cfg.LogFormat = ro.logFormat
	}
	ro.cfg = cfg

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	ro.logger = logger
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))

	return nil
}

func fallbackLogger(w io.Writer) logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(w)

	return logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the konig version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("konig version " + config.Version + "\n"))

			return err
		},
	}
}
