// Package config provides unified configuration loading for gamett.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/nvandessel/gamett/internal/constants"
	"github.com/nvandessel/gamett/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config contains all gamett configuration settings.
type Config struct {
	// Tournament contains settings for the round-robin.
	Tournament TournamentConfig `json:"tournament" yaml:"tournament"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// TournamentConfig configures how matches are played.
type TournamentConfig struct {
	// Iterations is the number of rounds per match. Must be non-negative.
	Iterations int `json:"iterations" yaml:"iterations" env:"GAMETT_ITERATIONS"`

	// SelfPlay includes matches of each strategy against itself.
	SelfPlay bool `json:"self_play" yaml:"self_play" env:"GAMETT_SELF_PLAY"`
}

// LoggingConfig configures gamett's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" logs every match, "trace" additionally logs every round.
	Level string `json:"level" yaml:"level" env:"GAMETT_LOG_LEVEL"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Tournament: TournamentConfig{
			Iterations: constants.DefaultIterations,
			SelfPlay:   constants.DefaultSelfPlay,
		},
		Logging: LoggingConfig{
			Level: constants.DefaultLogLevel,
		},
	}
}

// DefaultPath returns ~/.gamett/config.yaml, or "" if the home directory
// cannot be determined.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".gamett", "config.yaml")
}

// Load builds the configuration.
// Order: defaults -> config file -> environment variables.
// If path is empty the default path is used when it exists; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		if p := DefaultPath(); p != "" {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			} else if !errors.Is(statErr, fs.ErrNotExist) {
				return nil, fmt.Errorf("checking config file: %w", statErr)
			}
		}
	}

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
// Keys missing from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Tournament.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Tournament.Iterations)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies GAMETT_* environment variables to the config.
// Unset variables leave the current value alone.
func applyEnvOverrides(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
