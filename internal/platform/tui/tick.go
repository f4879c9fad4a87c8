// Package tui provides the Bubble Tea integration for interactive Tetris
// play: the terminal UI loop, key bindings, and board rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick at the engine's tick rate;
// gravity moves the piece only every GravityTicks of these ticks.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate, in ticks per second.
func tickCmd(ticksPerSecond int) tea.Cmd {
	interval := time.Second / time.Duration(ticksPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
