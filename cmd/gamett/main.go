package main

import (
	"fmt"
	"os"

	"github.com/nvandessel/gamett/internal/constants"
	"github.com/spf13/cobra"
)

// Set by the release build via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamett",
		Short: "Iterated Prisoner's Dilemma tournament",
		Long: `gamett runs a round-robin tournament of iterated Prisoner's Dilemma
strategies and prints the total points of each strategy, best first.

Every strategy plays every other strategy (and, by default, itself) for
a fixed number of simultaneous-move rounds. Press Ctrl-C to stop early;
the ranking of the matches played so far is still printed.

Examples:
  gamett                      # 200 rounds per match
  gamett -i 1000 -v           # longer matches with a progress bar
  gamett --self-play=false    # skip mirror matches
  gamett battle TitForTat AlwaysDefect -i 10`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          runTournament,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.gamett/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")
	rootCmd.PersistentFlags().IntP("iterations", "i", constants.DefaultIterations, "Rounds per match")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show progress on stderr")

	rootCmd.Flags().Bool("self-play", constants.DefaultSelfPlay, "Let each strategy battle itself")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBattleCmd(),
		newStrategiesCmd(),
	)

	return rootCmd
}
