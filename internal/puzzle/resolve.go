package puzzle

// Intent is how a target cell is interpreted relative to the player.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentInteract
	IntentMove
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case IntentInteract:
		return "interact"
	case IntentMove:
		return "move"
	default:
		return "none"
	}
}

// Classify decides what targeting a cell holding tile means for a player at
// player. Interaction is checked strictly before movement:
//
//  1. within Chebyshev distance 1 (self included) and the tile is a lamp or
//     a switch: interact;
//  2. exactly one orthogonal step away: move attempt;
//  3. otherwise nothing.
//
// Self-clicks on non-interactive tiles and diagonal clicks on anything but a
// lamp or switch therefore classify as IntentNone.
func Classify(player, target Pos, tile Tile) Intent {
	if player.Chebyshev(target) <= 1 && tile.Interactive() {
		return IntentInteract
	}
	if player.Manhattan(target) == 1 {
		return IntentMove
	}
	return IntentNone
}

// resolve applies one action at target. The caller guarantees bounds.
func (s *Session) resolve(target Pos) (Status, EventKind) {
	tile := s.grid.At(target)

	switch Classify(s.player, target, tile) {
	case IntentInteract:
		return s.interact(target, tile)
	case IntentMove:
		return s.tryMove(target)
	default:
		return StatusIgnored, EventNone
	}
}

// interact toggles the lamp or switch at target and relights the room.
func (s *Session) interact(target Pos, tile Tile) (Status, EventKind) {
	switch tile {
	case TileLampOff:
		s.grid.Set(target, TileLampOn)
		s.relight()
		return StatusLampOn, EventLampToggled
	case TileLampOn:
		s.grid.Set(target, TileLampOff)
		s.relight()
		return StatusLampOff, EventLampToggled
	case TileSwitch:
		ToggleAllDoors(s.grid)
		// Doors are opaque, so the lit set can both grow and shrink here.
		s.relight()
		return StatusDoorsToggled, EventDoorsToggled
	default:
		return StatusIgnored, EventNone
	}
}

// tryMove validates and performs a single orthogonal step.
// Blocking tiles fail regardless of light; passable tiles must be lit.
func (s *Session) tryMove(target Pos) (Status, EventKind) {
	tile := s.grid.At(target)
	if tile.BlocksMovement() {
		return StatusBlocked, EventNone
	}
	if !s.lit.Lit(target) {
		return StatusDark, EventNone
	}

	s.player = target
	s.moves++

	if tile == TileExit {
		s.won = true
		return StatusWon, EventWon
	}
	return StatusMoved, EventMoved
}
