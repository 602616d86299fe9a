package constants

import "testing"

func TestPayoffOrdering(t *testing.T) {
	// The dilemma only exists when T > R > P > S and 2R > T + S.
	if !(TemptationPoints > RewardPoints && RewardPoints > PunishmentPoints && PunishmentPoints > SuckerPoints) {
		t.Errorf("payoff values must satisfy T > R > P > S, got T=%d R=%d P=%d S=%d",
			TemptationPoints, RewardPoints, PunishmentPoints, SuckerPoints)
	}
	if 2*RewardPoints <= TemptationPoints+SuckerPoints {
		t.Errorf("mutual cooperation (%d) must beat alternating exploitation (%d)",
			2*RewardPoints, TemptationPoints+SuckerPoints)
	}
}

func TestDefaults(t *testing.T) {
	if DefaultIterations != 200 {
		t.Errorf("DefaultIterations = %d, want 200", DefaultIterations)
	}
	if !DefaultSelfPlay {
		t.Error("expected self-play to be enabled by default")
	}
	if DefaultLogLevel != "info" {
		t.Errorf("DefaultLogLevel = %q, want %q", DefaultLogLevel, "info")
	}
}
