// Package rating tracks entrant skill with Glicko-2. The tournament manager
// reports game outcomes here and reads the resulting values back for the
// final rankings.
package rating

import (
	glicko "github.com/zelenin/go-glicko2"
)

// Outcome is a game result from one player's perspective. The values are
// the scores Glicko-2 assigns to a loss, a draw and a win.
type Outcome float64

const (
	Loss Outcome = 0
	Draw Outcome = 0.5
	Win  Outcome = 1
)

// Params seeds newly created ratings.
type Params struct {
	Rating     float64 `yaml:"rating"`
	Deviation  float64 `yaml:"deviation"`
	Volatility float64 `yaml:"volatility"`
}

// DefaultParams returns the standard Glicko-2 starting values.
func DefaultParams() Params {
	return Params{Rating: 1500, Deviation: 350, Volatility: 0.06}
}

// System creates ratings and updates them from game outcomes.
type System struct {
	params Params
}

func NewSystem(params Params) *System {
	return &System{params: params}
}

// Rating is one entrant's skill estimate, mutated in place by Update.
type Rating struct {
	player *glicko.Player
}

// NewRating returns a rating at the system's starting values.
func (s *System) NewRating() *Rating {
	return &Rating{
		player: glicko.NewPlayer(glicko.NewRating(s.params.Rating, s.params.Deviation, s.params.Volatility)),
	}
}

// Value returns the current rating on the familiar 1500 scale.
func (r *Rating) Value() float64 {
	return r.player.Rating().R()
}

// Deviation returns the current rating deviation.
func (r *Rating) Deviation() float64 {
	return r.player.Rating().Rd()
}

// Update applies a single game between a and b. Outcomes are normally
// complementary (win/loss or draw/draw). A double forfeit scores win/win,
// which no single match can express; each player is then scored against a
// frozen copy of the opponent instead.
func (s *System) Update(a, b *Rating, outcomeA, outcomeB Outcome) {
	period := glicko.NewRatingPeriod()
	if outcomeA+outcomeB == Win {
		period.AddMatch(a.player, b.player, matchResult(outcomeA))
	} else {
		period.AddMatch(a.player, frozen(b), matchResult(outcomeA))
		period.AddMatch(b.player, frozen(a), matchResult(outcomeB))
	}
	period.Calculate()
}

// frozen returns a throwaway player pinned at r's current values.
func frozen(r *Rating) *glicko.Player {
	cur := r.player.Rating()
	return glicko.NewPlayer(glicko.NewRating(cur.R(), cur.Rd(), cur.Sigma()))
}

func matchResult(o Outcome) glicko.MatchResult {
	switch o {
	case Win:
		return glicko.MATCH_RESULT_WIN
	case Draw:
		return glicko.MATCH_RESULT_DRAW
	default:
		return glicko.MATCH_RESULT_LOSS
	}
}
