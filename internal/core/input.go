package core

// Action represents a semantic host action, abstracted from physical key presses.
// The platform maps keys to actions; the simulation never sees raw keys.
type Action int

const (
	ActionNone        Action = iota
	ActionJump               // Space, Up, W - jump, also starts a run from menu/game over
	ActionStart              // Enter - start a run without jumping
	ActionSave               // Enter on the game-over panel - save to leaderboard
	ActionSkip               // Esc on the game-over panel - dismiss without saving
	ActionPause              // P - pause/unpause the frame driver
	ActionLeaderboard        // L, Tab - toggle leaderboard view
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionSave:
		return "Save"
	case ActionSkip:
		return "Skip"
	case ActionPause:
		return "Pause"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
