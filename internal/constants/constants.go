// Package constants provides named constants used throughout the gamett codebase.
// This centralizes magic numbers for better maintainability and documentation.
package constants

// Tournament defaults
const (
	// DefaultIterations is the number of rounds played in every match
	// when neither the config file nor the command line overrides it.
	DefaultIterations = 200

	// DefaultSelfPlay controls whether a strategy battles a copy of itself.
	DefaultSelfPlay = true

	// DefaultLogLevel is the operational log level used when nothing is configured.
	DefaultLogLevel = "info"
)

// Payoff matrix values. Each round awards points to both players based on
// the pair of simultaneous moves.
const (
	// RewardPoints is awarded to each player when both cooperate.
	RewardPoints = 3

	// PunishmentPoints is awarded to each player when both defect.
	PunishmentPoints = 1

	// TemptationPoints is awarded to a defector whose opponent cooperated.
	TemptationPoints = 5

	// SuckerPoints is awarded to a cooperator whose opponent defected.
	SuckerPoints = 0
)

// TitFor2TatsPatience is the number of consecutive opponent defections
// Tit for 2 Tats tolerates before it retaliates.
const TitFor2TatsPatience = 2
