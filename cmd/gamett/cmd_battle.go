package main

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/nvandessel/gamett/internal/strategy"
	"github.com/nvandessel/gamett/internal/tournament"
	"github.com/spf13/cobra"
)

func newBattleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battle <strategy> <strategy>",
		Short: "Play a single match between two strategies",
		Long: `Play one match and print the points each side scored.

Strategy names are the identifiers listed by "gamett strategies",
matched case-insensitively.

Examples:
  gamett battle TitFor2Tats AlwaysDefect -i 3
  gamett battle holdsgrudge titfortat --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strategy.ParseID(args[0])
			if err != nil {
				return err
			}
			b, err := strategy.ParseID(args[1])
			if err != nil {
				return err
			}

			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			var cancel atomic.Bool
			stop := watchSignals(&cancel)
			defer stop()

			log.Debug("Executing battle", "a", a, "b", b, "iterations", cfg.Tournament.Iterations)
			res, err := tournament.Battle(a, b, cfg.Tournament.Iterations, &cancel)
			if err != nil {
				return err
			}
			if res.Canceled {
				log.Warn("Battle interrupted", "rounds", res.Rounds)
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n%d\t%s\n", res.ScoreA, res.A, res.ScoreB, res.B)
			return nil
		},
	}
}
