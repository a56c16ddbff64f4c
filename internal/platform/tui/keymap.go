package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/finsurf/internal/core"
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey translates a key pressed in the game or end view.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "up", "w", "k":
		return core.ActionFlap
	case "enter":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	case "r":
		return core.ActionRestart
	case "tab":
		return core.ActionScoreboard
	}
	return core.ActionNone
}

// MapMenuKey translates a key pressed in the difficulty menu.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	case "tab":
		return core.ActionScoreboard
	}
	return core.ActionNone
}
