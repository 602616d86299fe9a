package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nvandessel/gamett/internal/tournament"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const progressWidth = 30

var (
	filledStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#138a0fff", Dark: "#1ddd37ff"}).Render
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	labelStyle  = lipgloss.NewStyle().Bold(true).Render
)

// progressBar renders tournament progress on a single terminal line.
// A nil progressBar is safe to use; all methods are no-ops on nil receiver.
type progressBar struct {
	w       io.Writer
	printer *message.Printer
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{w: w, printer: message.NewPrinter(language.English)}
}

// Update redraws the bar after a match. Safe to call on nil receiver.
func (p *progressBar) Update(pr tournament.Progress) {
	if p == nil {
		return
	}
	fmt.Fprintf(p.w, "\r%s %s %d/%d %s vs %s\033[K",
		labelStyle("Battles"), renderBar(pr.Played, pr.Planned),
		pr.Played, pr.Planned, pr.Result.A, pr.Result.B)
}

// Finish ends the progress line and prints a summary. Safe to call on nil receiver.
func (p *progressBar) Finish(s tournament.Summary) {
	if p == nil {
		return
	}
	if s.Played > 0 {
		fmt.Fprintln(p.w)
	}
	p.printer.Fprintf(p.w, "%d of %d matches, %d rounds played\n", s.Played, s.Planned, s.Rounds)
}

func renderBar(done, total int) string {
	filled := progressWidth
	if total > 0 {
		filled = progressWidth * done / total
	}
	return filledStyle(strings.Repeat("█", filled)) + emptyStyle(strings.Repeat("░", progressWidth-filled))
}
