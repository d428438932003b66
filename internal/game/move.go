// Package game defines the rock-paper-scissors move engine: the legal moves,
// the dominance relation between them, and the cyclic helpers strategies use
// to reason about counters.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Move is a single throw in a round of rock-paper-scissors.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// count is the number of distinct moves. Rock beats the move one step
// behind it in the cycle and loses to the move one step ahead.
const count = 3

// Moves returns every legal move in cycle order.
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// Valid reports whether m is one of the declared moves.
func (m Move) Valid() bool {
	return m >= Rock && m < count
}

// Shift returns the move amount places ahead of m in the cycle. Negative
// amounts step backwards.
func (m Move) Shift(amount int) Move {
	return Move(((int(m)+amount)%count + count) % count)
}

// Counter returns the move that beats m.
func (m Move) Counter() Move {
	return m.Shift(1)
}

// Defeated returns the move that m beats.
func (m Move) Defeated() Move {
	return m.Shift(-1)
}

// Versus scores m against other: 1 if m wins the round, -1 if other wins,
// 0 on a draw.
func (m Move) Versus(other Move) int {
	switch other {
	case m:
		return 0
	case m.Defeated():
		return 1
	default:
		return -1
	}
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return m.Versus(other) > 0
}

// Random returns a uniformly chosen move.
func Random() Move {
	return Move(rand.IntN(count))
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("invalid(%d)", int(m))
	}
}

// Parse maps a move name to its Move, ignoring case and surrounding space.
func Parse(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}
