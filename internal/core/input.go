package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboards, SSH sessions and websocket clients all translate to these.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, H - shift piece left
	ActionRight           // Right arrow, L - shift piece right
	ActionSoftDrop        // Down arrow, J - move piece down one row
	ActionRotate          // Up arrow, Space, K - rotate clockwise
	ActionPause           // P, Esc - pause/resume
	ActionStart           // Enter, N - start or restart the game
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a wire name to an action.
// Unknown names yield ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "down", "drop", "soft_drop":
		return ActionSoftDrop
	case "rotate", "up":
		return ActionRotate
	case "pause":
		return ActionPause
	case "start", "restart":
		return ActionStart
	case "quit":
		return ActionQuit
	default:
		return ActionNone
	}
}
