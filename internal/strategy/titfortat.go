package strategy

import (
	"github.com/nvandessel/gamett/internal/constants"
	"github.com/nvandessel/gamett/internal/game"
)

// TitForTat cooperates first, then copies the opponent's previous move.
type TitForTat struct {
	retaliate bool
}

func (*TitForTat) ID() ID { return IDTitForTat }

func (s *TitForTat) Decide() game.Action {
	if s.retaliate {
		return game.Defect
	}
	return game.Cooperate
}

func (s *TitForTat) Observe(opponent game.Action) {
	s.retaliate = opponent == game.Defect
}

func (s *TitForTat) Reset() { s.retaliate = false }

// TitFor2Tats retaliates only after two consecutive opponent defections.
// A single cooperation restores its patience.
type TitFor2Tats struct {
	patience int
}

// NewTitFor2Tats returns a Tit for 2 Tats with full patience.
func NewTitFor2Tats() *TitFor2Tats {
	return &TitFor2Tats{patience: constants.TitFor2TatsPatience}
}

func (*TitFor2Tats) ID() ID { return IDTitFor2Tats }

func (s *TitFor2Tats) Decide() game.Action {
	if s.patience <= 0 {
		return game.Defect
	}
	return game.Cooperate
}

func (s *TitFor2Tats) Observe(opponent game.Action) {
	switch opponent {
	case game.Defect:
		s.patience--
	case game.Cooperate:
		s.patience = constants.TitFor2TatsPatience
	}
}

func (s *TitFor2Tats) Reset() { s.patience = constants.TitFor2TatsPatience }
