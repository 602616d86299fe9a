package tournament

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/nvandessel/gamett/internal/scoreboard"
	"github.com/nvandessel/gamett/internal/strategy"
)

// Options configures a tournament run.
type Options struct {
	// Iterations is the number of rounds in every match.
	Iterations int

	// SelfPlay includes matches of a strategy against its own copy.
	SelfPlay bool

	// Roster lists the competing strategies. Empty means strategy.All().
	Roster []strategy.ID

	// Cancel, when non-nil and set, stops the tournament at the next
	// round or match boundary.
	Cancel *atomic.Bool

	// Logger receives match-level debug and round-level trace output.
	// Nil discards it.
	Logger *slog.Logger

	// OnMatch is called after every completed or interrupted match.
	OnMatch func(Progress)
}

// Progress reports how far a tournament has advanced.
type Progress struct {
	Result  Result
	Played  int
	Planned int
}

// Summary describes a finished or interrupted tournament.
type Summary struct {
	Planned  int  `json:"matches_planned"`
	Played   int  `json:"matches_played"`
	Rounds   int  `json:"rounds_played"`
	Canceled bool `json:"canceled"`
}

// Pairings returns every ordered pair of the roster in enumeration order.
// Pairs of a strategy with itself are included only when selfPlay is set.
func Pairings(roster []strategy.ID, selfPlay bool) [][2]strategy.ID {
	pairs := make([][2]strategy.ID, 0, len(roster)*len(roster))
	for _, i := range roster {
		for _, j := range roster {
			if i == j && !selfPlay {
				continue
			}
			pairs = append(pairs, [2]strategy.ID{i, j})
		}
	}
	return pairs
}

// Run plays the round-robin and returns the scoreboard. Cancellation is not
// an error: the scoreboard then holds the points of every round played.
func Run(opts Options) (*scoreboard.Scoreboard, Summary, error) {
	if opts.Iterations < 0 {
		return nil, Summary{}, fmt.Errorf("tournament: %w (got %d)", ErrNegativeIterations, opts.Iterations)
	}

	roster := opts.Roster
	if len(roster) == 0 {
		roster = strategy.All()
	}
	for _, id := range roster {
		if !id.Valid() {
			return nil, Summary{}, fmt.Errorf("tournament: unknown strategy id %d in roster", id)
		}
	}

	log := opts.Logger
	if log == nil {
		log = discardLogger
	}

	pairs := Pairings(roster, opts.SelfPlay)
	board := scoreboard.New()
	summary := Summary{Planned: len(pairs)}

	for _, pair := range pairs {
		if opts.Cancel != nil && opts.Cancel.Load() {
			summary.Canceled = true
			break
		}

		log.Debug("executing battle", "a", pair[0], "b", pair[1])
		res, err := battle(pair[0], pair[1], opts.Iterations, opts.Cancel, log)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("tournament: %w", err)
		}

		board.Add(res.A, res.ScoreA)
		board.Add(res.B, res.ScoreB)
		summary.Played++
		summary.Rounds += res.Rounds
		log.Debug("battle finished",
			"a", res.A, "b", res.B,
			"score_a", res.ScoreA, "score_b", res.ScoreB,
			"rounds", res.Rounds)

		if opts.OnMatch != nil {
			opts.OnMatch(Progress{Result: res, Played: summary.Played, Planned: summary.Planned})
		}

		if res.Canceled {
			summary.Canceled = true
			break
		}
	}

	return board, summary, nil
}
