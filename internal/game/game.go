// Package game defines the moves of the Prisoner's Dilemma and the payoff
// matrix that converts a pair of simultaneous moves into points.
package game

import "github.com/nvandessel/gamett/internal/constants"

// Action is a single round's move.
type Action uint8

const (
	Cooperate Action = iota
	Defect
)

// String returns the name of the action.
func (a Action) String() string {
	switch a {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	}
	return "Action(?)"
}

// Score is a point total. Every reachable total is non-negative.
type Score int64

// Payoff scores one round. action is the first player's move and reaction
// the second player's move, chosen simultaneously.
//
//   - Both cooperate: 3 points each.
//   - Both defect: 1 point each.
//   - One defects against a cooperator: the defector scores 5, the cooperator 0.
func Payoff(action, reaction Action) (Score, Score) {
	switch {
	case action == Cooperate && reaction == Cooperate:
		return constants.RewardPoints, constants.RewardPoints
	case action == Defect && reaction == Defect:
		return constants.PunishmentPoints, constants.PunishmentPoints
	case action == Cooperate && reaction == Defect:
		return constants.SuckerPoints, constants.TemptationPoints
	default:
		return constants.TemptationPoints, constants.SuckerPoints
	}
}
