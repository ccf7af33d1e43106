package core

// Color is a semantic role for a screen cell. Front ends map roles to
// concrete terminal colors, so the game never picks palette entries itself.
type Color uint8

const (
	ColorDefault Color = iota
	ColorTitle
	ColorText
	ColorHint
	ColorBorder
	ColorDark // unlit cells

	ColorWall
	ColorFloor
	ColorLampOff
	ColorLampOn
	ColorSwitch
	ColorDoorLocked
	ColorDoorOpen
	ColorExit
	ColorPlayer
	ColorWin
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorTitle:
		return "title"
	case ColorText:
		return "text"
	case ColorHint:
		return "hint"
	case ColorBorder:
		return "border"
	case ColorDark:
		return "dark"
	case ColorWall:
		return "wall"
	case ColorFloor:
		return "floor"
	case ColorLampOff:
		return "lamp_off"
	case ColorLampOn:
		return "lamp_on"
	case ColorSwitch:
		return "switch"
	case ColorDoorLocked:
		return "door_locked"
	case ColorDoorOpen:
		return "door_open"
	case ColorExit:
		return "exit"
	case ColorPlayer:
		return "player"
	case ColorWin:
		return "win"
	default:
		return "unknown"
	}
}
