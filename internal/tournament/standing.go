package tournament

import (
	"fmt"
	"strconv"
)

// Standing is one row of the final rankings.
type Standing struct {
	Rank    int     `yaml:"rank"`
	Name    string  `yaml:"name"`
	Games   Record  `yaml:"games"`
	Rounds  Record  `yaml:"rounds"`
	Rating  float64 `yaml:"rating"`
	Nemesis string  `yaml:"nemesis,omitempty"`
}

// StatColumns names the ranking table's columns, in display order.
var StatColumns = []string{"Rank", "Name", "Games", "Rounds", "Rating", "Nemesis"}

// StatRow renders the standing's cells in StatColumns order.
func (s Standing) StatRow() []string {
	return []string{
		strconv.Itoa(s.Rank),
		s.Name,
		fmt.Sprintf("%s (%.1f%%)", s.Games, s.Games.WinPercentage()),
		fmt.Sprintf("%s (%.1f%%)", s.Rounds, s.Rounds.WinPercentage()),
		fmt.Sprintf("%.0f", s.Rating),
		s.Nemesis,
	}
}
