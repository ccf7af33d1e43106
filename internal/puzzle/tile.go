// Package puzzle implements the state engine for the light-and-doors escape puzzle.
// It owns the grid, the lit mask, the player position and the move bookkeeping,
// and decides for every player action whether it is legal and what it changes.
// The package is UI-agnostic, deterministic and has no I/O.
package puzzle

// Tile is the closed set of cell kinds a grid can hold.
// The player is not a tile; it is position state overlaid on the grid.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileLampOff
	TileLampOn
	TileSwitch
	TileDoorLocked
	TileDoorOpen
	TileExit
)

// Level-format symbols. Used only at the parse/serialize boundary.
const (
	symbolWall       = '#'
	symbolFloor      = '.'
	symbolPlayer     = '@'
	symbolLampOff    = 'L'
	symbolLampOn     = '*'
	symbolSwitch     = 'S'
	symbolDoorLocked = 'D'
	symbolDoorOpen   = '/'
	symbolExit       = 'E'
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileLampOff:
		return "LampOff"
	case TileLampOn:
		return "LampOn"
	case TileSwitch:
		return "Switch"
	case TileDoorLocked:
		return "DoorLocked"
	case TileDoorOpen:
		return "DoorOpen"
	case TileExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Symbol returns the level-format rune for the tile.
func (t Tile) Symbol() rune {
	switch t {
	case TileWall:
		return symbolWall
	case TileFloor:
		return symbolFloor
	case TileLampOff:
		return symbolLampOff
	case TileLampOn:
		return symbolLampOn
	case TileSwitch:
		return symbolSwitch
	case TileDoorLocked:
		return symbolDoorLocked
	case TileDoorOpen:
		return symbolDoorOpen
	case TileExit:
		return symbolExit
	default:
		return '?'
	}
}

// ParseTile converts a level-format rune to a tile.
// The player marker is not a tile and is reported as not ok.
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case symbolWall:
		return TileWall, true
	case symbolFloor:
		return TileFloor, true
	case symbolLampOff:
		return TileLampOff, true
	case symbolLampOn:
		return TileLampOn, true
	case symbolSwitch:
		return TileSwitch, true
	case symbolDoorLocked:
		return TileDoorLocked, true
	case symbolDoorOpen:
		return TileDoorOpen, true
	case symbolExit:
		return TileExit, true
	default:
		return TileWall, false
	}
}

// BlocksMovement reports whether the player can never step onto the tile.
func (t Tile) BlocksMovement() bool {
	return t == TileWall || t == TileDoorLocked
}

// BlocksLight reports whether light stops at the tile.
// A locked door is as opaque as a wall until it opens.
func (t Tile) BlocksLight() bool {
	return t == TileWall || t == TileDoorLocked
}

// IsLamp reports whether the tile is a lamp in either state.
func (t Tile) IsLamp() bool {
	return t == TileLampOff || t == TileLampOn
}

// Interactive reports whether clicking the tile from within reach triggers
// an interaction instead of a move.
func (t Tile) Interactive() bool {
	return t.IsLamp() || t == TileSwitch
}
