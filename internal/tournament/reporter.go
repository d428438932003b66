package tournament

// Reporter receives run lifecycle events from the engine, in order:
// TournamentStarted once, Progress at each crossed 10% mark, then Rankings
// once. Calls never overlap; with parallel matches enabled, Progress may
// arrive from a worker goroutine.
type Reporter interface {
	// TournamentStarted announces the run parameters before any play.
	TournamentStarted(entrants, rounds, games, totalGames int)

	// Progress reports a crossed completion mark. Marks arrive in
	// ascending order without duplicates and end at 100.
	Progress(percent int)

	// Rankings delivers the final sorted standings.
	Rankings(standings []Standing)
}

// NopReporter discards all events. It is the default for engines built
// without an explicit reporter.
type NopReporter struct{}

func (NopReporter) TournamentStarted(int, int, int, int) {}
func (NopReporter) Progress(int)                         {}
func (NopReporter) Rankings([]Standing)                  {}
