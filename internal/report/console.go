package report

import (
	"fmt"
	"io"

	"github.com/veylence/rpsbots/internal/tournament"
)

// Console streams tournament events to w as plain text. Percent marks are
// appended to a single progress line as play advances, and the final
// standings are printed as a table.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) TournamentStarted(entrants, rounds, games, totalGames int) {
	fmt.Fprintf(c.w, "Playing tournament with:\n")
	fmt.Fprintf(c.w, "\t%d round long games\n", rounds)
	fmt.Fprintf(c.w, "\t%d game long matches\n", games)
	fmt.Fprintf(c.w, "\t%d competitors\n\n", entrants)
	fmt.Fprint(c.w, "Tournament Progress: 0%")
}

func (c *Console) Progress(percent int) {
	fmt.Fprintf(c.w, " %d%%", percent)
}

func (c *Console) Rankings(standings []tournament.Standing) {
	fmt.Fprint(c.w, "\n\n")
	fmt.Fprintln(c.w, Table(standings))
}
