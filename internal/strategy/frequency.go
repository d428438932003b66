package strategy

import (
	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/tournament"
)

// Frequency counters the opponent's historically most common move. Ties go
// to the earliest move in cycle order, making the choice deterministic.
type Frequency struct {
	tournament.NoTraining
}

func (Frequency) MakeMove(opponent []game.Move) (game.Move, error) {
	if len(opponent) == 0 {
		return game.Random(), nil
	}

	counts := make(map[game.Move]int, 3)
	for _, mv := range opponent {
		counts[mv]++
	}

	best := game.Rock
	for _, mv := range game.Moves() {
		if counts[mv] > counts[best] {
			best = mv
		}
	}
	return best.Counter(), nil
}
