// Package strategy provides the built-in tournament entrants, from trivial
// baselines to pattern trackers and an LLM-backed player. Each entrant is
// registered under a stable identity name that configs, the CLI and the
// engine's training store all key on.
package strategy

import (
	"slices"

	"github.com/veylence/rpsbots/internal/tournament"
)

var builtins = map[string]tournament.Factory{
	"random":    func() (tournament.Strategy, error) { return Random{}, nil },
	"dummy":     func() (tournament.Strategy, error) { return Dummy{}, nil },
	"rock":      func() (tournament.Strategy, error) { return Rock{}, nil },
	"mirror":    func() (tournament.Strategy, error) { return Mirror{}, nil },
	"counter":   func() (tournament.Strategy, error) { return Counter{}, nil },
	"cycle":     func() (tournament.Strategy, error) { return Cycle{}, nil },
	"frequency": func() (tournament.Strategy, error) { return Frequency{}, nil },
	"markov":    func() (tournament.Strategy, error) { return &Markov{}, nil },
	"gemini": func() (tournament.Strategy, error) {
		g, err := NewGemini()
		if err != nil {
			return nil, err
		}
		return g, nil
	},
}

// Lookup returns the factory for a built-in identity.
func Lookup(name string) (tournament.Factory, bool) {
	f, ok := builtins[name]
	return f, ok
}

// Names returns every built-in identity, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
