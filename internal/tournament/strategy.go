package tournament

import "github.com/veylence/rpsbots/internal/game"

// Strategy is implemented by tournament entrants. A fresh instance is
// created for every game, so no state survives a game except whatever the
// training hooks persist through the engine.
type Strategy interface {
	// MakeMove returns the strategy's throw for the current round, given
	// every move the opponent has made so far this game, oldest first.
	// Returning an error, an out-of-range move, or panicking forfeits the
	// game.
	MakeMove(opponent []game.Move) (game.Move, error)

	// TrainingInit runs before each training-mode game with the value the
	// strategy's identity last persisted, or nil. The return value is
	// stored immediately, before any round is played.
	TrainingInit(prior any) any

	// TrainingEnd runs after each completed training-mode game with a copy
	// of the entrant's cumulative round record. The return value replaces
	// the stored training state. Forfeited games skip this hook.
	TrainingEnd(rounds Record) any
}

// NoTraining is embedded by strategies that keep no state between games.
// Both hooks leave the training slot empty.
type NoTraining struct{}

func (NoTraining) TrainingInit(any) any   { return nil }
func (NoTraining) TrainingEnd(Record) any { return nil }

// Factory produces a fresh Strategy for a single game. An error counts as
// a failed instantiation and forfeits that game.
type Factory func() (Strategy, error)
