package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/config"
	"github.com/ledgerlens/ledgerlens/internal/ingest"
	"github.com/ledgerlens/ledgerlens/internal/logger"
	"github.com/ledgerlens/ledgerlens/internal/query"
)

type session struct {
	cfg  *config.Config
	data *ingest.Dataset
	log  zerolog.Logger
}

// loadSession reads the environment and config, then ingests every source.
// Diagnostics go to the command's stderr.
func loadSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	if err := config.LoadEnv(opts.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cmd.ErrOrStderr(), logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}

	data, err := ingest.Load(cmd.Context(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("loading ledgers: %w", err)
	}
	return &session{cfg: cfg, data: data, log: log}, nil
}

func addFilterFlags(cmd *cobra.Command, p *query.Params) {
	cmd.Flags().StringVar(&p.From, "from", "", "earliest transaction date, inclusive")
	cmd.Flags().StringVar(&p.To, "to", "", "latest transaction date, inclusive")
	cmd.Flags().StringVar(&p.Category, "category", "", "only this category")
	cmd.Flags().StringVar(&p.Year, "year", "", "only this year")
	cmd.Flags().StringVar(&p.Month, "month", "", "only this month (name or number)")
}
