package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

const maxScores = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Tab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Tab}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// scoreboardTab selects between the single/AI-play episode table and the
// two-agent comparison-run history.
type scoreboardTab int

const (
	tabEpisodes scoreboardTab = iota
	tabCompareRuns
)

// ScoreboardModel is the Bubble Tea model for the high-score screen: one
// tab of top episodes by score, one tab of recent comparison runs.
type ScoreboardModel struct {
	store *storage.Store
	tab   scoreboardTab

	episodes []storage.Episode
	compare  []storage.CompareRun

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.loadEpisodes()
	m.loadCompareRuns()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *ScoreboardModel) loadEpisodes() {
	if m.store == nil {
		return
	}
	episodes, err := m.store.TopEpisodes("", maxScores)
	if err == nil {
		m.episodes = episodes
	}
}

func (m *ScoreboardModel) loadCompareRuns() {
	if m.store == nil {
		return
	}
	runs, err := m.store.RecentCompareRuns(maxScores)
	if err == nil {
		m.compare = runs
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabEpisodes:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Agent", Width: 14},
			{Title: "Score", Width: 10},
			{Title: "Lines", Width: 8},
			{Title: "Date", Width: 18},
		}
	case tabCompareRuns:
		columns = []table.Column{
			{Title: "Agent1", Width: 14},
			{Title: "Agent2", Width: 14},
			{Title: "Score1", Width: 8},
			{Title: "Score2", Width: 8},
			{Title: "Winner", Width: 10},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) updateTableRows() {
	switch m.tab {
	case tabEpisodes:
		rows := make([]table.Row, len(m.episodes))
		for i, e := range m.episodes {
			agent := e.Agent
			if agent == "" {
				agent = "human"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1), agent,
				fmt.Sprintf("%d", e.Score), fmt.Sprintf("%d", e.Lines),
				e.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		m.table.SetRows(rows)
	case tabCompareRuns:
		rows := make([]table.Row, len(m.compare))
		for i, r := range m.compare {
			rows[i] = table.Row{
				r.Agent1, r.Agent2,
				fmt.Sprintf("%d", r.Score1), fmt.Sprintf("%d", r.Score2),
				r.Winner,
			}
		}
		m.table.SetRows(rows)
	}
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd { return nil }

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			if m.tab == tabEpisodes {
				m.tab = tabCompareRuns
			} else {
				m.tab = tabEpisodes
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	title := "EPISODES"
	if m.tab == tabCompareRuns {
		title = "COMPARISON RUNS"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	empty := (m.tab == tabEpisodes && len(m.episodes) == 0) || (m.tab == tabCompareRuns && len(m.compare) == 0)
	if empty {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}

// RunScoreboard runs the scoreboard screen. Returns true if the user wants
// to go back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
