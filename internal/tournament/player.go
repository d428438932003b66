package tournament

import (
	"fmt"

	"github.com/veylence/rpsbots/internal/rating"
)

// player is the engine's bookkeeping for one registered entrant.
type player struct {
	name    string
	factory Factory
	rounds  Record
	games   Record
	rating  *rating.Rating
	nemesis nemesis
}

// resetRecords zeroes the per-run statistics. The rating is deliberately
// left alone; it persists across runs of the same engine.
func (p *player) resetRecords() {
	p.rounds = Record{}
	p.games = Record{}
	p.nemesis = nemesis{}
}

// nemesis tracks the opponent that has won the most rounds against a
// player within any single game.
type nemesis struct {
	name string
	won  int // rounds that opponent won in the game
	of   int // rounds the game had
}

// update keeps the running maximum. Ties keep the first-seen opponent.
func (n *nemesis) update(opponent string, won, of int) {
	if won > n.won {
		*n = nemesis{name: opponent, won: won, of: of}
	}
}

// String renders "name (won/of)", or "-" while no opponent has won a round.
func (n nemesis) String() string {
	if n.name == "" {
		return "-"
	}
	return fmt.Sprintf("%s (%d/%d)", n.name, n.won, n.of)
}
