package strategy

import (
	"testing"

	"github.com/nvandessel/gamett/internal/game"
)

// play feeds the opponent moves one round at a time and records the
// strategy's decision for each round, mirroring the battle protocol.
func play(s Strategy, opponent []game.Action) []game.Action {
	out := make([]game.Action, 0, len(opponent))
	for _, o := range opponent {
		out = append(out, s.Decide())
		s.Observe(o)
	}
	return out
}

const (
	C = game.Cooperate
	D = game.Defect
)

func TestStrategies_Decisions(t *testing.T) {
	tests := []struct {
		name     string
		id       ID
		opponent []game.Action
		want     []game.Action
	}{
		{"always cooperate ignores defection", IDAlwaysCooperate, []game.Action{D, D, D}, []game.Action{C, C, C}},
		{"always defect ignores cooperation", IDAlwaysDefect, []game.Action{C, C, C}, []game.Action{D, D, D}},
		{"grudge cooperates with cooperator", IDHoldsGrudge, []game.Action{C, C, C}, []game.Action{C, C, C}},
		{"grudge never forgives", IDHoldsGrudge, []game.Action{C, D, C, C, C}, []game.Action{C, C, D, D, D}},
		{"tit for tat mirrors", IDTitForTat, []game.Action{D, C, D, D, C}, []game.Action{C, D, C, D, D}},
		{"tit for 2 tats tolerates one defection", IDTitFor2Tats, []game.Action{D, C, D, C}, []game.Action{C, C, C, C}},
		{"tit for 2 tats retaliates after two", IDTitFor2Tats, []game.Action{D, D, D, C, C}, []game.Action{C, C, D, D, C}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := play(New(tt.id), tt.opponent)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("round %d: got %v, want %v (all: %v)", i+1, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestStrategies_FirstMove(t *testing.T) {
	for _, id := range All() {
		want := C
		if id == IDAlwaysDefect {
			want = D
		}
		if got := New(id).Decide(); got != want {
			t.Errorf("%s first move = %v, want %v", id, got, want)
		}
	}
}

func TestStrategies_DecideDoesNotConsumeState(t *testing.T) {
	for _, id := range All() {
		s := New(id)
		s.Observe(D)
		s.Observe(D)
		first := s.Decide()
		for i := 0; i < 3; i++ {
			if got := s.Decide(); got != first {
				t.Errorf("%s: Decide changed from %v to %v without Observe", id, first, got)
			}
		}
	}
}

func TestHoldsGrudge_Monotonic(t *testing.T) {
	s := &HoldsGrudge{}
	s.Observe(D)
	for i := 0; i < 50; i++ {
		if got := s.Decide(); got != D {
			t.Fatalf("round %d after grudge: got %v, want Defect", i, got)
		}
		s.Observe(C)
	}
}

func TestStrategies_Reset(t *testing.T) {
	for _, id := range All() {
		t.Run(id.String(), func(t *testing.T) {
			fresh := New(id)
			used := New(id)
			for i := 0; i < 5; i++ {
				used.Observe(D)
			}
			used.Reset()

			opponent := []game.Action{C, D, D, C, D, D, D, C}
			want := play(fresh, opponent)
			got := play(used, opponent)
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("round %d after Reset: got %v, want %v", i+1, got[i], want[i])
				}
			}
		})
	}
}

func TestStrategies_ID(t *testing.T) {
	for _, id := range All() {
		if got := New(id).ID(); got != id {
			t.Errorf("New(%s).ID() = %s", id, got)
		}
	}
}
