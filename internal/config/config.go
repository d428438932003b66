package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/veylence/rpsbots/internal/rating"
)

// Config holds the application configuration.
type Config struct {
	Rounds   int           `yaml:"rounds"`
	Games    int           `yaml:"games"`
	Training bool          `yaml:"training"`
	Parallel bool          `yaml:"parallel"`
	Plain    bool          `yaml:"plain"`
	Players  []string      `yaml:"players"`
	Results  string        `yaml:"results"`
	Rating   rating.Params `yaml:"rating"`

	GeminiAPIKey string `yaml:"-"`
}

// Default returns the built-in configuration: the full offline roster
// playing fifty-round games, ten games per match, with training on.
func Default() *Config {
	return &Config{
		Rounds:   50,
		Games:    10,
		Training: true,
		Players: []string{
			"random", "dummy", "rock", "mirror",
			"counter", "cycle", "frequency", "markov",
		},
		Rating: rating.DefaultParams(),
	}
}

// Load reads the configuration file at path over the defaults. An empty
// path keeps the defaults. The Gemini API key always comes from the
// GEMINI_API_KEY environment variable; it may be empty when no configured
// player needs it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	return cfg, nil
}
