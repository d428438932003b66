package strategy

import (
	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/tournament"
)

// Rock always throws rock.
type Rock struct {
	tournament.NoTraining
}

func (Rock) MakeMove([]game.Move) (game.Move, error) {
	return game.Rock, nil
}

// Cycle walks the move cycle one step per round. The opponent's history
// length doubles as the round counter, so no instance state is needed.
type Cycle struct {
	tournament.NoTraining
}

func (Cycle) MakeMove(opponent []game.Move) (game.Move, error) {
	return game.Rock.Shift(len(opponent)), nil
}

// Mirror repeats the opponent's previous move, opening at random.
type Mirror struct {
	tournament.NoTraining
}

func (Mirror) MakeMove(opponent []game.Move) (game.Move, error) {
	if len(opponent) == 0 {
		return game.Random(), nil
	}
	return opponent[len(opponent)-1], nil
}

// Counter beats the opponent's previous move, opening at random.
type Counter struct {
	tournament.NoTraining
}

func (Counter) MakeMove(opponent []game.Move) (game.Move, error) {
	if len(opponent) == 0 {
		return game.Random(), nil
	}
	return opponent[len(opponent)-1].Counter(), nil
}
