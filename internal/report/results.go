package report

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/veylence/rpsbots/internal/tournament"
)

// Results is the YAML document written after a tournament finishes.
type Results struct {
	SavedAt   time.Time             `yaml:"saved_at"`
	Standings []tournament.Standing `yaml:"standings"`
}

// WriteResults saves the final standings to path, creating parent
// directories as needed.
func WriteResults(path string, standings []tournament.Standing) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(Results{
		SavedAt:   time.Now(),
		Standings: standings,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResults loads a results file previously written by WriteResults.
func ReadResults(path string) (*Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Results
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
