package puzzle

// ToggleAllDoors flips every door on the grid: locked doors open and open
// doors lock. Other tiles are untouched. Returns the number of doors flipped.
//
// The effect is global: any switch drives every door in the level, however
// far away it is.
func ToggleAllDoors(g *Grid) int {
	flipped := 0
	for i, t := range g.cells {
		switch t {
		case TileDoorLocked:
			g.cells[i] = TileDoorOpen
			flipped++
		case TileDoorOpen:
			g.cells[i] = TileDoorLocked
			flipped++
		}
	}
	return flipped
}
