package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate their own key events into actions so the rules never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionConfirm        // Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a directional action.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// browserKeys maps DOM KeyboardEvent.key values to actions.
var browserKeys = map[string]Action{
	"ArrowUp":    ActionUp,
	"ArrowDown":  ActionDown,
	"ArrowLeft":  ActionLeft,
	"ArrowRight": ActionRight,
	"Enter":      ActionConfirm,
}

// ActionFromKey translates a browser key name to an action.
// Keys that mean nothing to the game return ActionNone.
func ActionFromKey(key string) Action {
	if a, ok := browserKeys[key]; ok {
		return a
	}
	return ActionNone
}
