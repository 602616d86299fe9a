package main

import (
	"fmt"
	"log/slog"

	"github.com/nvandessel/gamett/internal/config"
	"github.com/nvandessel/gamett/internal/logging"
	"github.com/spf13/cobra"
)

// loadSettings resolves the configuration for a command.
// Order: config file -> environment -> flags that were set explicitly.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("iterations") {
		cfg.Tournament.Iterations, _ = flags.GetInt("iterations")
	}
	if f := flags.Lookup("self-play"); f != nil && f.Changed {
		cfg.Tournament.SelfPlay, _ = flags.GetBool("self-play")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}
