package tui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-arcade/internal/storage"
	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// Model is the Bubble Tea model for interactive single-player Tetris.
type Model struct {
	env    *tetris.Environment
	config tetris.EngineConfig
	store  *storage.Store
	keys   *KeyMapper

	obs          tetris.Observation
	done         bool
	scoreSaved   bool
	pending      tetris.FrameAction
	hasPending   bool
	quitting     bool
	episodeStart time.Time
}

// NewModel creates a Bubble Tea model for a fresh Tetris episode.
func NewModel(config tetris.EngineConfig, store *storage.Store, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	env := tetris.NewEnvironment(config)
	return Model{
		env:          env,
		config:       config,
		store:        store,
		keys:         NewKeyMapper(),
		obs:          env.Reset(seed),
		episodeStart: time.Now(),
	}
}

// Init starts the gravity tick loop at the engine's simulation rate.
func (m Model) Init() tea.Cmd {
	return tickCmd(tetris.TicksPerSecond)
}

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if action := m.keys.MapKeyToMenuAction(msg); action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.done {
		if m.keys.MapKeyToMenuAction(msg) == MenuActionRestart {
			return m.restart(), tickCmd(tetris.TicksPerSecond)
		}
		return m, nil
	}

	name, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action, ok := tetris.ParseFrameAction(name); ok && action != tetris.ActionNoop {
		m.pending = action
		m.hasPending = true
	}
	return m, nil
}

func (m Model) restart() Model {
	m.env = tetris.NewEnvironment(m.config)
	m.obs = m.env.Reset(time.Now().UnixNano())
	m.done = false
	m.scoreSaved = false
	m.hasPending = false
	m.episodeStart = time.Now()
	return m
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, tickCmd(tetris.TicksPerSecond)
	}

	action := tetris.ActionNoop
	if m.hasPending {
		action = m.pending
		m.hasPending = false
	}

	result := m.env.Step(action)
	m.obs = result.Obs
	if result.Done {
		m.done = true
		m.saveScore()
	}

	return m, tickCmd(tetris.TicksPerSecond)
}

func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	duration := int(time.Since(m.episodeStart).Seconds())
	//nolint:errcheck // best-effort persistence, play continues regardless
	m.store.SaveEpisode(storage.Episode{
		Seed:     m.obs.Episode.Seed,
		Score:    m.obs.Episode.Score,
		Lines:    m.obs.Episode.LinesTotal,
		TopOut:   m.obs.Episode.TopOut,
		Duration: duration,
	})
	m.scoreSaved = true
}

// View renders the playfield, side panel, and any game-over overlay.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(RenderBoard(m.obs))

	side := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(12).
		Render(sidePanel(m.obs))

	view := lipgloss.JoinHorizontal(lipgloss.Top, board, side)
	if m.done {
		view += "\n\ntop out — press r to restart, q to quit\n"
	}
	return view
}

func sidePanel(obs tetris.Observation) string {
	return "hold\n" + RenderHold(obs.Hold) +
		"\n\nnext\n" + RenderNextQueue(obs.NextQueue) +
		"\n\nscore\n" + strconv.Itoa(obs.Episode.Score) +
		"\n\nlines\n" + strconv.Itoa(obs.Episode.LinesTotal)
}

// Run starts the Bubble Tea program for a local interactive Tetris game.
func Run(config tetris.EngineConfig, store *storage.Store, seed int64) error {
	model := NewModel(config, store, seed)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
