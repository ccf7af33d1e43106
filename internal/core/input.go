package core

// Action is a semantic input intent, abstracted from physical keys and
// mouse buttons. Directional actions target a cell next to the player.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionUpLeft
	ActionUpRight
	ActionDownLeft
	ActionDownRight
	ActionInteract // the player's own cell
	ActionRestart
	ActionConfirm
	ActionBack
	ActionQuit
	ActionHelp
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
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
	case ActionInteract:
		return "Interact"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Offset returns the (row, col) offset from the player that the action
// targets. ok is false for actions that do not target a cell.
func (a Action) Offset() (dRow, dCol int, ok bool) {
	switch a {
	case ActionUp:
		return -1, 0, true
	case ActionDown:
		return 1, 0, true
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	case ActionUpLeft:
		return -1, -1, true
	case ActionUpRight:
		return -1, 1, true
	case ActionDownLeft:
		return 1, -1, true
	case ActionDownRight:
		return 1, 1, true
	case ActionInteract:
		return 0, 0, true
	default:
		return 0, 0, false
	}
}

// Targets reports whether the action addresses a grid cell.
func (a Action) Targets() bool {
	_, _, ok := a.Offset()
	return ok
}
