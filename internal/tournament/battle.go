// Package tournament runs Prisoner's Dilemma matches between strategies and
// folds the results of a round-robin into a scoreboard.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/nvandessel/gamett/internal/game"
	"github.com/nvandessel/gamett/internal/logging"
	"github.com/nvandessel/gamett/internal/strategy"
)

// ErrNegativeIterations is returned when a match or tournament is asked to
// play a negative number of rounds.
var ErrNegativeIterations = errors.New("iterations must be non-negative")

// Result is the outcome of one match.
type Result struct {
	A      strategy.ID `json:"a"`
	B      strategy.ID `json:"b"`
	ScoreA game.Score  `json:"score_a"`
	ScoreB game.Score  `json:"score_b"`

	// Rounds is the number of rounds actually played.
	Rounds int `json:"rounds"`

	// Canceled is true if the match stopped before all rounds were played.
	Canceled bool `json:"canceled,omitempty"`
}

// Battle plays a match of the given number of rounds between fresh
// instances of a and b. If cancel is non-nil it is checked before every
// round; once set, the match stops and the points scored so far are
// returned without an error.
func Battle(a, b strategy.ID, iterations int, cancel *atomic.Bool) (Result, error) {
	return battle(a, b, iterations, cancel, discardLogger)
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func battle(a, b strategy.ID, iterations int, cancel *atomic.Bool, log *slog.Logger) (Result, error) {
	if iterations < 0 {
		return Result{}, fmt.Errorf("battle %s vs %s: %w (got %d)", a, b, ErrNegativeIterations, iterations)
	}
	if !a.Valid() || !b.Valid() {
		return Result{}, fmt.Errorf("battle: unknown strategy in pair (%d, %d)", a, b)
	}

	res := Result{A: a, B: b}
	sa, sb := strategy.New(a), strategy.New(b)
	traceOn := log.Enabled(context.Background(), logging.LevelTrace)

	for round := 1; round <= iterations; round++ {
		if cancel != nil && cancel.Load() {
			res.Canceled = true
			break
		}

		// Both moves are fixed before either side learns the other's.
		actA, actB := sa.Decide(), sb.Decide()
		sa.Observe(actB)
		sb.Observe(actA)

		pa, pb := game.Payoff(actA, actB)
		res.ScoreA += pa
		res.ScoreB += pb
		res.Rounds++

		if traceOn {
			log.Log(context.Background(), logging.LevelTrace, "round",
				"round", round, "a", a, "b", b,
				"action_a", actA, "action_b", actB,
				"points_a", pa, "points_b", pb)
		}
	}

	return res, nil
}
