package puzzle

// EventKind identifies a state change reported to observers.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventLoaded
	EventRestarted
	EventLampToggled
	EventDoorsToggled
	EventMoved
	EventWon
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLoaded:
		return "loaded"
	case EventRestarted:
		return "restarted"
	case EventLampToggled:
		return "lamp_toggled"
	case EventDoorsToggled:
		return "doors_toggled"
	case EventMoved:
		return "moved"
	case EventWon:
		return "won"
	default:
		return "none"
	}
}

// Event describes a completed state change.
type Event struct {
	Kind    EventKind
	LevelID string
	Target  Pos // cell the action targeted
	Player  Pos // player position after the change
	Status  Status
	Moves   int
	Lit     int // number of lit cells after the change
}

// Observer receives events synchronously, after the mutation and the
// lighting recompute have finished.
type Observer func(Event)
