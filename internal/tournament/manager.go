// Package tournament runs round-robin rock-paper-scissors tournaments.
// Every pair of registered entrants plays a fixed number of games per run,
// each game a fixed number of rounds. The engine keeps per-entrant records,
// Glicko-2 ratings, nemesis data and opaque training state, and reports
// progress and final rankings through a Reporter.
package tournament

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/veylence/rpsbots/internal/game"
	"github.com/veylence/rpsbots/internal/rating"
)

var (
	// ErrInsufficientEntrants is returned by Run when fewer than two
	// entrants are registered.
	ErrInsufficientEntrants = errors.New("at least two entrants must be registered")

	// ErrDuplicateEntrant is returned by Register when the name is taken.
	ErrDuplicateEntrant = errors.New("entrant already registered")
)

// Manager owns the roster and all per-entrant state. Records and nemesis
// data are per run; ratings and training state persist for the manager's
// lifetime. Methods are not safe for concurrent use; the parallelism of
// WithParallelMatches is internal to Run.
type Manager struct {
	log      logrus.FieldLogger
	reporter Reporter
	ratings  *rating.System
	parallel bool

	players []*player
	index   map[string]*player

	trainMu  sync.Mutex
	training map[string]any
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes engine logging to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) { m.log = log }
}

// WithReporter delivers run lifecycle events to r.
func WithReporter(r Reporter) Option {
	return func(m *Manager) { m.reporter = r }
}

// WithParallelMatches schedules each run as waves of entrant-disjoint
// matches played concurrently. An entrant still plays at most one game at
// a time, training state stays behind a lock, and progress marks remain
// ordered. Match order differs from sequential play, so training sequences
// and rating trajectories can differ too.
func WithParallelMatches() Option {
	return func(m *Manager) { m.parallel = true }
}

// New returns a Manager with an empty roster that scores games with
// ratings.
func New(ratings *rating.System, opts ...Option) *Manager {
	m := &Manager{
		log:      logrus.StandardLogger(),
		reporter: NopReporter{},
		ratings:  ratings,
		index:    make(map[string]*player),
		training: make(map[string]any),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds an entrant under a unique name with a fresh rating and an
// empty training slot. Registering a taken name fails with
// ErrDuplicateEntrant and clears the existing entrant's training state.
func (m *Manager) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("entrant name must not be empty")
	}
	if factory == nil {
		return fmt.Errorf("entrant %s: nil factory", name)
	}
	if _, ok := m.index[name]; ok {
		m.training[name] = nil
		return fmt.Errorf("%w: %s", ErrDuplicateEntrant, name)
	}

	p := &player{name: name, factory: factory, rating: m.ratings.NewRating()}
	m.players = append(m.players, p)
	m.index[name] = p
	m.training[name] = nil
	return nil
}

// ResetRecords zeroes every entrant's records and nemesis data. Ratings
// are left alone. Run does this before play; it is exported for callers
// that reuse a manager between runs.
func (m *Manager) ResetRecords() {
	for _, p := range m.players {
		p.resetRecords()
	}
}

// Run plays the full round robin: every unordered pair of entrants plays
// games games of rounds rounds each. In training mode each entrant's
// persisted state is threaded through its strategy instances. Records are
// reset at the start; ratings and training state carry over from earlier
// runs.
func (m *Manager) Run(rounds, games int, training bool) error {
	if len(m.players) < 2 {
		return ErrInsufficientEntrants
	}
	if rounds < 1 {
		return fmt.Errorf("rounds per game must be positive, got %d", rounds)
	}
	if games < 1 {
		return fmt.Errorf("games per match must be positive, got %d", games)
	}

	m.ResetRecords()

	total := len(m.players) * (len(m.players) - 1) / 2 * games
	log := m.log.WithFields(logrus.Fields{
		"run":      uuid.NewString(),
		"entrants": len(m.players),
		"rounds":   rounds,
		"games":    games,
		"training": training,
	})
	log.Info("tournament started")

	m.reporter.TournamentStarted(len(m.players), rounds, games, total)
	meter := newProgressMeter(total, m.reporter)

	if m.parallel {
		m.runWaves(log, rounds, games, training, meter)
	} else {
		m.runSequential(log, rounds, games, training, meter)
	}

	m.reporter.Rankings(m.Standings())
	log.Info("tournament finished")
	return nil
}

func (m *Manager) runSequential(log logrus.FieldLogger, rounds, games int, training bool, meter *progressMeter) {
	for i := 0; i < len(m.players); i++ {
		for j := i + 1; j < len(m.players); j++ {
			for g := 0; g < games; g++ {
				m.playGame(log, m.players[i], m.players[j], rounds, training)
				meter.gameDone()
			}
		}
	}
}

func (m *Manager) runWaves(log logrus.FieldLogger, rounds, games int, training bool, meter *progressMeter) {
	for _, wave := range roundRobinWaves(len(m.players)) {
		var eg errgroup.Group
		for _, pair := range wave {
			a, b := m.players[pair[0]], m.players[pair[1]]
			eg.Go(func() error {
				for g := 0; g < games; g++ {
					m.playGame(log, a, b, rounds, training)
					meter.gameDone()
				}
				return nil
			})
		}
		// Workers only signal completion; strategy failures are
		// forfeits, not errors.
		_ = eg.Wait()
	}
}

// playGame plays one game between a and b and folds the result into both
// sides' bookkeeping. A disqualification ends the game immediately: rounds
// already completed keep their round-Record updates, the aborted rounds
// produce none, nemesis tracking is skipped, and TrainingEnd is not called.
func (m *Manager) playGame(log logrus.FieldLogger, a, b *player, rounds int, training bool) {
	sa, errA := instantiate(a.factory)
	sb, errB := instantiate(b.factory)
	if errA != nil || errB != nil {
		if errA != nil {
			log.WithField("entrant", a.name).WithError(errA).Warn("instantiation failed, game forfeited")
		}
		if errB != nil {
			log.WithField("entrant", b.name).WithError(errB).Warn("instantiation failed, game forfeited")
		}
		m.forfeit(a, b, errA == nil, errB == nil)
		return
	}

	if training {
		m.storeTraining(a.name, sa.TrainingInit(m.loadTraining(a.name)))
		m.storeTraining(b.name, sb.TrainingInit(m.loadTraining(b.name)))
	}

	var movesA, movesB []game.Move
	winsA, winsB := 0, 0
	for round := 0; round < rounds; round++ {
		mvA, errA := safeMove(sa, movesB)
		mvB, errB := safeMove(sb, movesA)
		okA := errA == nil && mvA.Valid()
		okB := errB == nil && mvB.Valid()
		if !okA || !okB {
			if !okA {
				log.WithFields(logrus.Fields{"entrant": a.name, "round": round}).
					WithError(moveError(mvA, errA)).Warn("bad move, game forfeited")
			}
			if !okB {
				log.WithFields(logrus.Fields{"entrant": b.name, "round": round}).
					WithError(moveError(mvB, errB)).Warn("bad move, game forfeited")
			}
			m.forfeit(a, b, okA, okB)
			return
		}
		movesA = append(movesA, mvA)
		movesB = append(movesB, mvB)

		switch mvA.Versus(mvB) {
		case 1:
			winsA++
			a.rounds.AddWin()
			b.rounds.AddLoss()
		case -1:
			winsB++
			a.rounds.AddLoss()
			b.rounds.AddWin()
		default:
			a.rounds.AddDraw()
			b.rounds.AddDraw()
		}
	}

	if training {
		// Records are passed by value, so the hooks get copies they
		// cannot use to edit the engine's bookkeeping.
		m.storeTraining(a.name, sa.TrainingEnd(a.rounds))
		m.storeTraining(b.name, sb.TrainingEnd(b.rounds))
	}

	switch {
	case winsA > winsB:
		a.games.AddWin()
		b.games.AddLoss()
		m.ratings.Update(a.rating, b.rating, rating.Win, rating.Loss)
	case winsA < winsB:
		a.games.AddLoss()
		b.games.AddWin()
		m.ratings.Update(a.rating, b.rating, rating.Loss, rating.Win)
	default:
		a.games.AddDraw()
		b.games.AddDraw()
		m.ratings.Update(a.rating, b.rating, rating.Draw, rating.Draw)
	}
	a.nemesis.update(b.name, winsB, rounds)
	b.nemesis.update(a.name, winsA, rounds)

	log.WithFields(logrus.Fields{
		"a":       a.name,
		"b":       b.name,
		"aRounds": winsA,
		"bRounds": winsB,
	}).Debug("game complete")
}

// forfeit settles a disqualified game. aOK and bOK say which sides were
// still standing. The standing side takes the game win; when both sides
// fail, each is credited with the win over the other's forfeit.
func (m *Manager) forfeit(a, b *player, aOK, bOK bool) {
	var outA, outB rating.Outcome
	switch {
	case !aOK && !bOK:
		a.games.AddWin()
		b.games.AddWin()
		outA, outB = rating.Win, rating.Win
	case !aOK:
		a.games.AddLoss()
		b.games.AddWin()
		outA, outB = rating.Loss, rating.Win
	default:
		a.games.AddWin()
		b.games.AddLoss()
		outA, outB = rating.Win, rating.Loss
	}
	m.ratings.Update(a.rating, b.rating, outA, outB)
}

// Standings returns the current rankings: descending game wins, then
// descending round wins, then ascending name. Names are unique, so the
// order is total and deterministic.
func (m *Manager) Standings() []Standing {
	ranked := make([]*player, len(m.players))
	copy(ranked, m.players)
	slices.SortFunc(ranked, func(a, b *player) int {
		if c := cmp.Compare(b.games.Wins, a.games.Wins); c != 0 {
			return c
		}
		if c := cmp.Compare(b.rounds.Wins, a.rounds.Wins); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	standings := make([]Standing, len(ranked))
	for i, p := range ranked {
		standings[i] = Standing{
			Rank:    i + 1,
			Name:    p.name,
			Games:   p.games,
			Rounds:  p.rounds,
			Rating:  p.rating.Value(),
			Nemesis: p.nemesis.String(),
		}
	}
	return standings
}

func (m *Manager) loadTraining(name string) any {
	m.trainMu.Lock()
	defer m.trainMu.Unlock()
	return m.training[name]
}

func (m *Manager) storeTraining(name string, data any) {
	m.trainMu.Lock()
	defer m.trainMu.Unlock()
	m.training[name] = data
}

// instantiate calls factory, converting a panic into an error.
func instantiate(factory Factory) (s Strategy, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()
	s, err = factory()
	if err == nil && s == nil {
		err = errors.New("factory returned no strategy")
	}
	return s, err
}

// safeMove asks s for its next move, converting a panic into an error. The
// history slice is capacity-clamped so a strategy appending to it cannot
// touch the engine's backing array.
func safeMove(s Strategy, opponent []game.Move) (mv game.Move, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panicked: %v", r)
		}
	}()
	return s.MakeMove(opponent[:len(opponent):len(opponent)])
}

// moveError normalizes the two bad-move cases into one loggable error.
func moveError(mv game.Move, err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("invalid move %d", int(mv))
}

// progressMeter folds completed-game counts into 10% progress marks using
// integer arithmetic only: mark k fires once completed·10 ≥ total·k. Marks
// are emitted in order, never repeat, and end at 100.
type progressMeter struct {
	mu        sync.Mutex
	total     int
	completed int
	nextMark  int
	rep       Reporter
}

func newProgressMeter(total int, rep Reporter) *progressMeter {
	return &progressMeter{total: total, nextMark: 1, rep: rep}
}

func (pm *progressMeter) gameDone() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.completed++
	for pm.nextMark <= 10 && pm.completed*10 >= pm.total*pm.nextMark {
		pm.rep.Progress(pm.nextMark * 10)
		pm.nextMark++
	}
}
