package strategy

import (
	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/tournament"
)

// Random plays a uniformly random move every round.
type Random struct {
	tournament.NoTraining
}

func (Random) MakeMove([]game.Move) (game.Move, error) {
	return game.Random(), nil
}

// Dummy also plays randomly. It exists as a throwaway sparring partner so
// training rosters have an opponent nothing can learn from.
type Dummy struct {
	tournament.NoTraining
}

func (Dummy) MakeMove([]game.Move) (game.Move, error) {
	return game.Random(), nil
}
