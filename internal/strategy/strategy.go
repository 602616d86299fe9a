// Package strategy implements the decision processes that compete in the
// tournament and the closed registry that enumerates and constructs them.
package strategy

import "github.com/nvandessel/gamett/internal/game"

// Strategy is a stateful decision process. Decide is called once per round
// before Observe receives the opponent's move for that same round.
type Strategy interface {
	// ID identifies the strategy variant.
	ID() ID

	// Decide returns this round's move. It does not change state.
	Decide() game.Action

	// Observe records the opponent's most recent move.
	Observe(opponent game.Action)

	// Reset returns the strategy to its initial state.
	Reset()
}

// AlwaysCooperate cooperates every round.
type AlwaysCooperate struct{}

func (*AlwaysCooperate) ID() ID { return IDAlwaysCooperate }
func (*AlwaysCooperate) Decide() game.Action { return game.Cooperate }
func (*AlwaysCooperate) Observe(_ game.Action) {}
func (*AlwaysCooperate) Reset() {}

// AlwaysDefect defects every round.
type AlwaysDefect struct{}

func (*AlwaysDefect) ID() ID { return IDAlwaysDefect }
func (*AlwaysDefect) Decide() game.Action { return game.Defect }
func (*AlwaysDefect) Observe(_ game.Action) {}
func (*AlwaysDefect) Reset() {}
