package tournament

import "fmt"

// Record tallies wins, losses and draws at a single granularity. Each
// entrant carries one Record for rounds and one for games. The zero value
// is an empty record.
type Record struct {
	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`
	Draws  int `yaml:"draws"`
}

func (r *Record) AddWin()  { r.Wins++ }
func (r *Record) AddLoss() { r.Losses++ }
func (r *Record) AddDraw() { r.Draws++ }

// Total returns the number of results recorded.
func (r Record) Total() int {
	return r.Wins + r.Losses + r.Draws
}

// WinFraction returns wins over total, or 0 for an empty record.
func (r Record) WinFraction() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Total())
}

// WinPercentage returns the win fraction scaled to 0-100.
func (r Record) WinPercentage() float64 {
	return r.WinFraction() * 100
}

// String renders the record as "wins/total".
func (r Record) String() string {
	return fmt.Sprintf("%d/%d", r.Wins, r.Total())
}
