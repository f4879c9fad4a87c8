package tui

import tea "github.com/charmbracelet/bubbletea"

// KeyMapper translates Bubble Tea key messages into tetris.FrameAction
// names, centralizing key bindings so they stay testable independent of
// the Bubble Tea event loop.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a frame action name (suitable for
// tetris.ParseFrameAction) and whether it was a quit request. An empty
// action string means the key has no gameplay meaning.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action string, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return "", true
	case "left", "a":
		return "LEFT", false
	case "right", "d":
		return "RIGHT", false
	case "up", "x":
		return "CW", false
	case "z":
		return "CCW", false
	case "down", "s":
		return "SOFT", false
	case " ":
		return "HARD", false
	case "c", "shift+tab":
		return "HOLD", false
	}
	return "", false
}

// MenuAction represents a menu-specific action derived from input, used by
// the pause/game-over overlays.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionRestart
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "r":
		return MenuActionRestart
	}
	return MenuActionNone
}
