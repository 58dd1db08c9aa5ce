// Package cli provides the gridpath command tree.
package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	verbose bool
	color   bool
	logger  *zap.Logger
}

// NewRootCmd builds the gridpath command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Grid A* pathfinding and PID control toolkit",
		Long: `gridpath finds shortest paths on 4-connected grids with A* and
drives a discrete PID controller against a simple plant.

Maps are plain text, one row per line:
  .  free cell      #  blocked cell
  S  start          G  goal`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return errors.Wrap(err, "building logger")
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log search details to stderr")
	cmd.PersistentFlags().BoolVar(&a.color, "color", false, "colorize rendered maps")

	cmd.AddCommand(
		newFindCmd(a),
		newStepCmd(a),
		newBatchCmd(a),
		newPIDCmd(a),
	)
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
