// Package cli holds the dashkit command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dashkit/internal/config"
)

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "dashkit",
		Short: "Admin dashboard API",
		Long: `dashkit serves the admin dashboard JSON API: collections with search,
filters, sorting and paging, per-user navigation preferences, document
attachments and PDF export.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.Path(), "YAML config file")
	cmd.AddCommand(newServeCmd(opts), newQueryCmd(opts), newUsersCmd(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the config and sets up logging. Commands that print results
// pass their stderr so log lines stay out of the output.
func (o *rootOptions) load(quiet io.Writer) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if quiet != nil {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		log.Logger = zerolog.New(quiet).With().Timestamp().Logger()
		return cfg, nil
	}
	if err := config.SetupLogger(cfg.Log); err != nil {
		return config.Config{}, fmt.Errorf("setup logger: %w", err)
	}
	return cfg, nil
}
