package strategy

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/rating"
	"github.com/veylence/rpsbots/internal/tournament"
)

func TestNamesAndLookup(t *testing.T) {
	assert.Equal(t, []string{
		"counter", "cycle", "dummy", "frequency", "gemini",
		"markov", "mirror", "random", "rock",
	}, Names())

	for _, name := range Names() {
		f, ok := Lookup(name)
		require.True(t, ok, name)
		require.NotNil(t, f, name)
	}

	_, ok := Lookup("lizard")
	assert.False(t, ok)
}

func TestFactoriesReturnFreshInstances(t *testing.T) {
	factory, ok := Lookup("markov")
	require.True(t, ok)

	first, err := factory()
	require.NoError(t, err)
	second, err := factory()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestRock(t *testing.T) {
	mv, err := Rock{}.MakeMove(nil)
	require.NoError(t, err)
	assert.Equal(t, game.Rock, mv)
}

func TestCycle(t *testing.T) {
	want := []game.Move{game.Rock, game.Paper, game.Scissors, game.Rock}
	history := []game.Move{}
	for round, expected := range want {
		mv, err := Cycle{}.MakeMove(history)
		require.NoError(t, err)
		assert.Equal(t, expected, mv, "round %d", round)
		history = append(history, game.Rock)
	}
}

func TestMirror(t *testing.T) {
	mv, err := Mirror{}.MakeMove(nil)
	require.NoError(t, err)
	assert.True(t, mv.Valid())

	mv, err = Mirror{}.MakeMove([]game.Move{game.Rock, game.Paper})
	require.NoError(t, err)
	assert.Equal(t, game.Paper, mv)
}

func TestCounter(t *testing.T) {
	cases := map[game.Move]game.Move{
		game.Rock:     game.Paper,
		game.Paper:    game.Scissors,
		game.Scissors: game.Rock,
	}
	for last, want := range cases {
		mv, err := Counter{}.MakeMove([]game.Move{last})
		require.NoError(t, err)
		assert.Equal(t, want, mv)
	}
}

func TestFrequency(t *testing.T) {
	mv, err := Frequency{}.MakeMove(nil)
	require.NoError(t, err)
	assert.True(t, mv.Valid())

	mv, err = Frequency{}.MakeMove([]game.Move{game.Rock, game.Rock, game.Paper})
	require.NoError(t, err)
	assert.Equal(t, game.Paper, mv, "counters the most common move")

	mv, err = Frequency{}.MakeMove([]game.Move{game.Scissors, game.Scissors, game.Scissors})
	require.NoError(t, err)
	assert.Equal(t, game.Rock, mv)

	mv, err = Frequency{}.MakeMove([]game.Move{game.Rock, game.Paper})
	require.NoError(t, err)
	assert.Equal(t, game.Paper, mv, "frequency ties resolve to the earliest move in cycle order")
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	if os.Getenv("GEMINI_API_KEY") != "" {
		t.Skip("GEMINI_API_KEY is set in this environment")
	}

	_, err := NewGemini()
	require.Error(t, err)

	factory, ok := Lookup("gemini")
	require.True(t, ok)
	s, err := factory()
	assert.Error(t, err, "the engine records this as an instantiation forfeit")
	assert.Nil(t, s)
}

// The offline built-ins must survive a full training tournament with no
// forfeits: every game of every entrant runs its full round count.
func TestBuiltinsSurviveTournament(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := tournament.New(rating.NewSystem(rating.DefaultParams()), tournament.WithLogger(log))

	roster := []string{"random", "dummy", "rock", "mirror", "counter", "cycle", "frequency", "markov"}
	for _, name := range roster {
		factory, ok := Lookup(name)
		require.True(t, ok, name)
		require.NoError(t, m.Register(name, factory))
	}

	const games, rounds = 2, 10
	require.NoError(t, m.Run(rounds, games, true))

	for _, s := range m.Standings() {
		assert.Equal(t, (len(roster)-1)*games, s.Games.Total(), s.Name)
		assert.Equal(t, (len(roster)-1)*games*rounds, s.Rounds.Total(), "%s forfeited a game", s.Name)
	}
}
