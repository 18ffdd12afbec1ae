package core

// Action represents a semantic game action, abstracted from physical key presses.
// Letter keys are not actions; they travel as runes in the InputFrame because
// letterfall consumes the typed character itself.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter - begin a run from the idle screen
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // Escape - go back to menu
	ActionRestart        // Enter on a terminal screen - reset for a new run
	ActionQuit           // Ctrl+C - exit game/session
	ActionPause          // Escape - pause/unpause during a run
	ActionUp             // Arrow up - menu navigation
	ActionDown           // Arrow down - menu navigation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input gathered between two simulation ticks.
// The platform buffers key events into a frame and the game applies the whole
// frame atomically at the next tick boundary, so no input lands mid-update.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Runes holds typed letter keys in arrival order.
	Runes []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddRune appends a typed character to this frame.
func (f *InputFrame) AddRune(r rune) {
	f.Runes = append(f.Runes, r)
}

// Clear resets all actions and runes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	return clone
}
