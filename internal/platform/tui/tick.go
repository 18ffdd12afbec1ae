// Package tui provides the Bubble Tea integration for letterfall.
// It handles the terminal UI loop, input mapping, rendering, and score
// persistence; the game core stays free of any of this.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. The game itself counts ticks, so
// the wall-clock time carried here is only used for scheduling.
type TickMsg time.Time

// tickCmd schedules the next tick for the given rate in ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
