package main

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/nvandessel/gamett/internal/scoreboard"
	"github.com/nvandessel/gamett/internal/tournament"
	"github.com/spf13/cobra"
)

// tournamentOutput is the --json shape of a tournament run.
type tournamentOutput struct {
	Ranking []scoreboard.Entry `json:"ranking"`
	Summary tournament.Summary `json:"summary"`
}

func runTournament(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	jsonOut, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var cancel atomic.Bool
	stop := watchSignals(&cancel)
	defer stop()

	var bar *progressBar
	if verbose {
		bar = newProgressBar(cmd.ErrOrStderr())
	}

	log.Info("Starting tournament",
		"iterations", cfg.Tournament.Iterations,
		"self_play", cfg.Tournament.SelfPlay)

	board, summary, err := tournament.Run(tournament.Options{
		Iterations: cfg.Tournament.Iterations,
		SelfPlay:   cfg.Tournament.SelfPlay,
		Cancel:     &cancel,
		Logger:     log,
		OnMatch:    bar.Update,
	})
	if err != nil {
		return fmt.Errorf("running tournament: %w", err)
	}
	bar.Finish(summary)

	if summary.Canceled {
		log.Warn("Tournament interrupted",
			"matches_played", summary.Played,
			"matches_planned", summary.Planned)
	} else {
		log.Info("Tournament finished",
			"matches", summary.Played,
			"rounds", summary.Rounds)
	}

	if jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(tournamentOutput{
			Ranking: board.Ranked(),
			Summary: summary,
		})
	}

	_, err = board.WriteTo(cmd.OutOrStdout())
	return err
}
