package core

// Action is a semantic input, decoupled from the physical key or button
// that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move the craft left
	ActionRight          // Move the craft right
	ActionPrimary        // Primary action (the "+1" button)
	ActionConfirm        // Close the welcome-back summary
	ActionRestart        // Start a new flight after game over
	ActionQuit           // Leave the game
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
	case ActionPrimary:
		return "Primary"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
