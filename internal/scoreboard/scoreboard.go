// Package scoreboard accumulates tournament points per strategy and ranks them.
package scoreboard

import (
	"fmt"
	"io"
	"sort"

	"github.com/nvandessel/gamett/internal/game"
	"github.com/nvandessel/gamett/internal/strategy"
)

// Entry is one line of the ranking.
type Entry struct {
	Strategy strategy.ID `json:"strategy"`
	Score    game.Score  `json:"score"`
}

// Scoreboard maps strategies to their accumulated points. A strategy
// appears once it has been awarded points, even zero points.
// It is not safe for concurrent use.
type Scoreboard struct {
	scores map[strategy.ID]game.Score
}

// New returns an empty scoreboard.
func New() *Scoreboard {
	return &Scoreboard{scores: make(map[strategy.ID]game.Score)}
}

// Add credits delta points to the strategy.
func (s *Scoreboard) Add(id strategy.ID, delta game.Score) {
	s.scores[id] += delta
}

// Get returns the strategy's total and whether it has been recorded.
func (s *Scoreboard) Get(id strategy.ID) (game.Score, bool) {
	score, ok := s.scores[id]
	return score, ok
}

// Len returns the number of strategies recorded.
func (s *Scoreboard) Len() int {
	return len(s.scores)
}

// Total returns the sum of every recorded score.
func (s *Scoreboard) Total() game.Score {
	var total game.Score
	for _, score := range s.scores {
		total += score
	}
	return total
}

// Ranked returns the recorded strategies sorted by descending score.
// Ties are ordered by strategy enumeration order.
func (s *Scoreboard) Ranked() []Entry {
	entries := make([]Entry, 0, len(s.scores))
	for id, score := range s.scores {
		entries = append(entries, Entry{Strategy: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Strategy.Order() < entries[j].Strategy.Order()
	})
	return entries
}

// WriteTo prints the ranking as "<score>\t<strategy>" lines.
func (s *Scoreboard) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, e := range s.Ranked() {
		n, err := fmt.Fprintf(w, "%d\t%s\n", e.Score, e.Strategy)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing scoreboard: %w", err)
		}
	}
	return written, nil
}
