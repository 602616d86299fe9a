package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewBattleCmd(t *testing.T) {
	cmd := newBattleCmd()
	if !strings.HasPrefix(cmd.Use, "battle") {
		t.Errorf("Use = %q, want battle prefix", cmd.Use)
	}
}

func TestBattle(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"one round", []string{"battle", "TitFor2Tats", "AlwaysDefect", "-i", "1"}, "0\tTitFor2Tats\n5\tAlwaysDefect\n"},
		{"two rounds", []string{"battle", "TitFor2Tats", "AlwaysDefect", "-i", "2"}, "0\tTitFor2Tats\n10\tAlwaysDefect\n"},
		{"three rounds", []string{"battle", "TitFor2Tats", "AlwaysDefect", "-i", "3"}, "1\tTitFor2Tats\n11\tAlwaysDefect\n"},
		{"case insensitive", []string{"battle", "titfortat", "TITFOR2TATS", "-i", "10"}, "30\tTitForTat\n30\tTitFor2Tats\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestBattle_JSON(t *testing.T) {
	stdout, _, err := execute(t, "battle", "HoldsGrudge", "AlwaysDefect", "-i", "3", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var res struct {
		A      string `json:"a"`
		B      string `json:"b"`
		ScoreA int    `json:"score_a"`
		ScoreB int    `json:"score_b"`
		Rounds int    `json:"rounds"`
	}
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if res.A != "HoldsGrudge" || res.B != "AlwaysDefect" || res.ScoreA != 2 || res.ScoreB != 7 || res.Rounds != 3 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestBattle_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown strategy", []string{"battle", "Random", "AlwaysDefect"}},
		{"missing argument", []string{"battle", "TitForTat"}},
		{"negative iterations", []string{"battle", "TitForTat", "AlwaysDefect", "-i", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
