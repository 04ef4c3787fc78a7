package core

// Action represents a semantic play action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - slide up
	ActionRight          // D, L, Right arrow - slide right
	ActionDown           // S, J, Down arrow - slide down
	ActionLeft           // A, H, Left arrow - slide left
	ActionUndo           // U - take back the last move
	ActionRestart        // R - back to the start cell
	ActionSolve          // Space - toggle solution playback
	ActionBack           // B, Escape - back to map list
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionSolve:
		return "Solve"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four slide directions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionLeft
}
