package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/letterfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages into input frames.
// Letter keys are gameplay input in letterfall, so they are buffered as
// runes rather than mapped to actions; only ctrl+c quits, because q, r
// and p are all letters the player may need to type.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		frame.Set(core.ActionQuit)
		return true
	case "enter":
		// The game resolves enter by phase: start from idle, restart
		// from a terminal screen.
		frame.Set(core.ActionStart)
		frame.Set(core.ActionConfirm)
		frame.Set(core.ActionRestart)
		return false
	case "esc":
		frame.Set(core.ActionPause)
		return false
	case "up":
		frame.Set(core.ActionUp)
		return false
	case "down":
		frame.Set(core.ActionDown)
		return false
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				frame.AddRune(r)
			}
		}
	}

	return false
}
