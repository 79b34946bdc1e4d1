// Package cli implements the sampledata command line: listing the catalog,
// writing sample CSV files without running the server, and serving the API.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sampledata/internal/config"
	"sampledata/internal/logging"
	"sampledata/internal/metrics"
	"sampledata/internal/server"
	"sampledata/internal/services"
)

// app carries what every subcommand needs once the root has loaded it.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *services.SampleService
	seed    int64
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sampledata",
		Short:         "Generate fake sample rows for a fixed table catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed (0 uses SEED from the environment, or the clock)")

	root.AddCommand(
		newTablesCommand(a),
		newGenerateCommand(a),
		newServeCommand(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.service = server.NewSampleService(cfg, metrics.Nop{}, logger)
	return nil
}

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return server.Run(a.cfg, a.logger)
		},
	}
}
