package puzzle

// Status is the informational outcome of the last operation.
// Player mistakes are statuses, never errors.
type Status uint8

const (
	StatusNone Status = iota
	StatusReady
	StatusRestarted
	StatusLampOn
	StatusLampOff
	StatusDoorsToggled
	StatusMoved
	StatusBlocked
	StatusDark
	StatusWon
	StatusIgnored     // in reach but neither interactive nor an orthogonal step
	StatusOutOfBounds // target outside the grid
)

// String returns a short machine-friendly name.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusReady:
		return "ready"
	case StatusRestarted:
		return "restarted"
	case StatusLampOn:
		return "lamp_on"
	case StatusLampOff:
		return "lamp_off"
	case StatusDoorsToggled:
		return "doors_toggled"
	case StatusMoved:
		return "moved"
	case StatusBlocked:
		return "blocked"
	case StatusDark:
		return "dark"
	case StatusWon:
		return "won"
	case StatusIgnored:
		return "ignored"
	case StatusOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Key returns the message catalogue key for the status.
func (s Status) Key() string {
	switch s {
	case StatusReady:
		return "STATUS_READY"
	case StatusRestarted:
		return "STATUS_RESTARTED"
	case StatusLampOn:
		return "STATUS_LAMP_ON"
	case StatusLampOff:
		return "STATUS_LAMP_OFF"
	case StatusDoorsToggled:
		return "STATUS_DOORS_TOGGLED"
	case StatusMoved:
		return "STATUS_MOVED"
	case StatusBlocked:
		return "STATUS_BLOCKED"
	case StatusDark:
		return "STATUS_DARK"
	case StatusWon:
		return "STATUS_WON"
	default:
		return ""
	}
}

// Message returns the default English status line.
// Silent statuses return an empty string.
func (s Status) Message() string {
	switch s {
	case StatusReady:
		return "Click a lit neighbor tile to move. Click nearby L/S to interact. Reach E to win."
	case StatusRestarted:
		return "Restarted."
	case StatusLampOn:
		return "Lamp turned ON."
	case StatusLampOff:
		return "Lamp turned OFF."
	case StatusDoorsToggled:
		return "Switch toggled doors."
	case StatusMoved:
		return "Moved."
	case StatusBlocked:
		return "That way is blocked."
	case StatusDark:
		return "That tile is dark. Turn on a lamp to light a path."
	case StatusWon:
		return "Room Complete! You reached the exit."
	default:
		return ""
	}
}

// Silent reports whether the status leaves the visible status line unchanged.
func (s Status) Silent() bool {
	return s.Key() == ""
}
