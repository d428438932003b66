package strategy

import (
	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/tournament"
)

// MarkovCounts is the Markov strategy's training state: Counts[a][b] is how
// often the opponent followed move a with move b. It is a plain value, so
// the engine's training store hands each game an independent copy.
type MarkovCounts struct {
	Counts [3][3]int
}

func (c *MarkovCounts) observe(from, to game.Move) {
	c.Counts[from][to]++
}

// predict returns the most likely follow-up to last, assuming a repeat when
// the model has no data for that row. Ties go to the earliest move in cycle
// order.
func (c *MarkovCounts) predict(last game.Move) game.Move {
	row := c.Counts[last]
	best, pick := 0, last
	for i, count := range row {
		if count > best {
			best, pick = count, game.Move(i)
		}
	}
	return pick
}

// Markov predicts the opponent's next move with a first-order transition
// model and counters the prediction. The model accumulates within a game
// from the opponent's history; in training mode it also carries over
// between games through the training hooks.
type Markov struct {
	counts MarkovCounts
	folded int // opponent transitions already folded into counts
}

func (m *Markov) MakeMove(opponent []game.Move) (game.Move, error) {
	for ; m.folded+1 < len(opponent); m.folded++ {
		m.counts.observe(opponent[m.folded], opponent[m.folded+1])
	}
	if len(opponent) == 0 {
		return game.Random(), nil
	}
	last := opponent[len(opponent)-1]
	return m.counts.predict(last).Counter(), nil
}

func (m *Markov) TrainingInit(prior any) any {
	if counts, ok := prior.(MarkovCounts); ok {
		m.counts = counts
	}
	return m.counts
}

func (m *Markov) TrainingEnd(tournament.Record) any {
	return m.counts
}
