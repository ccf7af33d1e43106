package puzzle

import "fmt"

// Pos is a (row, col) cell address. Row grows downward, Col grows rightward.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the position offset by (dr, dc).
func (p Pos) Add(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Chebyshev returns the chessboard distance to another position.
func (p Pos) Chebyshev(other Pos) int {
	dr := abs(p.Row - other.Row)
	dc := abs(p.Col - other.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// orthogonal lists the four axis-aligned offsets: up, down, left, right.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
