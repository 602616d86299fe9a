package strategy

import "github.com/nvandessel/gamett/internal/game"

// HoldsGrudge cooperates until the opponent defects once, then defects for
// the rest of the match.
type HoldsGrudge struct {
	grudge bool
}

func (*HoldsGrudge) ID() ID { return IDHoldsGrudge }

func (s *HoldsGrudge) Decide() game.Action {
	if s.grudge {
		return game.Defect
	}
	return game.Cooperate
}

// Observe never clears a grudge once it is held.
func (s *HoldsGrudge) Observe(opponent game.Action) {
	if opponent == game.Defect {
		s.grudge = true
	}
}

func (s *HoldsGrudge) Reset() { s.grudge = false }
