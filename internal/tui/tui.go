package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veylence/rpsbots/internal/report"
	"github.com/veylence/rpsbots/internal/tournament"
)

type sessionState int

const (
	stateRunning sessionState = iota
	stateDone
	stateError
)

// eventBuffer holds every event of a run (one start, ten progress marks,
// one rankings) so the engine never blocks on the display.
const eventBuffer = 16

// Feed adapts engine events into bubbletea messages. Build the engine with
// the feed as its reporter, then hand the same feed to Run.
type Feed struct {
	events chan tea.Msg
}

func NewFeed() *Feed {
	return &Feed{events: make(chan tea.Msg, eventBuffer)}
}

func (f *Feed) TournamentStarted(entrants, rounds, games, totalGames int) {
	f.events <- startedMsg{entrants: entrants, totalGames: totalGames}
}

func (f *Feed) Progress(percent int) {
	f.events <- progressMsg{percent: percent}
}

func (f *Feed) Rankings(standings []tournament.Standing) {
	f.events <- rankingsMsg{standings: standings}
}

type model struct {
	state    sessionState
	mgr      *tournament.Manager
	feed     *Feed
	rounds   int
	games    int
	training bool

	bar        progress.Model
	percent    int
	entrants   int
	totalGames int
	standings  []tournament.Standing
	err        error
	width      int
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	paramStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(mgr *tournament.Manager, feed *Feed, rounds, games int, training bool) model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return model{
		state:    stateRunning,
		mgr:      mgr,
		feed:     feed,
		rounds:   rounds,
		games:    games,
		training: training,
		bar:      bar,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.runTournament(), m.waitForEvent())
}

type startedMsg struct {
	entrants   int
	totalGames int
}

type progressMsg struct {
	percent int
}

type rankingsMsg struct {
	standings []tournament.Standing
}

type runDoneMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyRunes:
			if msg.String() == "q" {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}

	case startedMsg:
		m.entrants = msg.entrants
		m.totalGames = msg.totalGames
		return m, m.waitForEvent()

	case progressMsg:
		m.percent = msg.percent
		return m, m.waitForEvent()

	case rankingsMsg:
		m.standings = msg.standings
		m.percent = 100
		m.state = stateDone
		return m, nil

	case runDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateError:
		return m.renderError()
	case stateDone:
		return m.renderStandings()
	default:
		return m.renderRunning()
	}
}

func (m model) renderRunning() string {
	title := titleStyle.Render("Rock Paper Scissors Tournament")
	params := paramStyle.Render(fmt.Sprintf(
		"Playing tournament with:\n\t%d round long games\n\t%d game long matches\n\t%d competitors",
		m.rounds, m.games, m.entrants))
	bar := m.bar.ViewAs(float64(m.percent) / 100)
	help := helpStyle.Render("Press esc to abort.")

	return title + "\n\n" + params + "\n\n" + bar + "\n\n" + help + "\n"
}

func (m model) renderStandings() string {
	title := titleStyle.Render("Final Rankings")
	played := paramStyle.Render(fmt.Sprintf("%d games played by %d competitors", m.totalGames, m.entrants))
	help := helpStyle.Render("Press q to quit.")

	return title + "\n" + played + "\n\n" + report.Table(m.standings) + "\n\n" + help + "\n"
}

func (m model) renderError() string {
	msg := errorStyle.Render(fmt.Sprintf("Tournament failed: %v", m.err))
	help := helpStyle.Render("Press q to quit.")

	return msg + "\n\n" + help + "\n"
}

func (m model) runTournament() tea.Cmd {
	return func() tea.Msg {
		return runDoneMsg{err: m.mgr.Run(m.rounds, m.games, m.training)}
	}
}

func (m model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.feed.events
	}
}

// Run drives a full tournament inside an alternate-screen TUI. The feed
// must be the same reporter the engine was built with. The returned
// standings are nil when the user quits before the run finishes.
func Run(mgr *tournament.Manager, feed *Feed, rounds, games int, training bool) ([]tournament.Standing, error) {
	p := tea.NewProgram(NewModel(mgr, feed, rounds, games, training), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	if m.err != nil {
		return nil, m.err
	}
	return m.standings, nil
}
