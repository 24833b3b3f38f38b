package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, Enter, left click - the single "action pressed" signal
	ActionRestart        // R key - return to the title after the game ended
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// DefaultHoldTicks is the largest gap, in ticks, between two reported presses
// that still counts as one held key. It covers the keyboard auto-repeat delay
// (250-600 ms on common setups) at 60 Hz.
const DefaultHoldTicks = 36

// EdgeTrigger turns a stream of key presses into discrete press edges.
//
// Terminals never report key release, and a held key arrives as a series of
// auto-repeated presses. A press counts as a fresh edge only if no press was
// seen during the previous HoldTicks ticks.
//
// Every press restarts the window, including presses the game ignores. A
// quick second tap, such as one made mid-air and another right after landing,
// is merged into the first unless HoldTicks idle ticks separate them.
type EdgeTrigger struct {
	HoldTicks int

	pressed bool // press seen since the last Tick
	held    bool // key considered down
	idle    int  // ticks since the last press
}

// NewEdgeTrigger creates a trigger with the given hold window.
func NewEdgeTrigger(holdTicks int) *EdgeTrigger {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &EdgeTrigger{HoldTicks: holdTicks}
}

// Press records a press reported by the input source.
func (e *EdgeTrigger) Press() {
	e.pressed = true
}

// Tick closes the current tick. It returns true exactly once per discrete press.
func (e *EdgeTrigger) Tick() bool {
	if e.pressed {
		e.pressed = false
		e.idle = 0
		if e.held {
			return false
		}
		e.held = true
		return true
	}

	if e.held {
		e.idle++
		if e.idle >= e.HoldTicks {
			e.held = false
		}
	}
	return false
}

// Reset forgets any held key.
func (e *EdgeTrigger) Reset() {
	e.pressed = false
	e.held = false
	e.idle = 0
}
