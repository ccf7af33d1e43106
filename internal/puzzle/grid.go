package puzzle

import "strings"

// Grid is the fixed-size rectangular board of tiles.
// Cells are stored in row-major order: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

// NewGrid creates a grid of the given size with every cell set to fill.
func NewGrid(rows, cols int, fill Tile) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the tile at p. Out-of-bounds positions read as walls.
func (g *Grid) At(p Pos) Tile {
	if !g.InBounds(p) {
		return TileWall
	}
	return g.cells[g.index(p)]
}

// Set replaces the tile at p. Out-of-bounds positions are ignored.
func (g *Grid) Set(p Pos, t Tile) {
	if g.InBounds(p) {
		g.cells[g.index(p)] = t
	}
}

// Count returns how many cells hold the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String serializes the grid to level-format rows joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Symbol())
		}
	}
	return sb.String()
}

// LitMask marks which cells are currently illuminated.
// It always has the dimensions of the grid it was computed from.
type LitMask struct {
	rows int
	cols int
	lit  []bool
}

func newLitMask(rows, cols int) LitMask {
	return LitMask{rows: rows, cols: cols, lit: make([]bool, rows*cols)}
}

// Lit reports whether p is illuminated. Out-of-bounds positions are dark.
func (m LitMask) Lit(p Pos) bool {
	if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
		return false
	}
	return m.lit[p.Row*m.cols+p.Col]
}

func (m LitMask) set(p Pos) {
	m.lit[p.Row*m.cols+p.Col] = true
}

// Count returns the number of lit cells.
func (m LitMask) Count() int {
	n := 0
	for _, l := range m.lit {
		if l {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the mask.
func (m LitMask) Clone() LitMask {
	lit := make([]bool, len(m.lit))
	copy(lit, m.lit)
	return LitMask{rows: m.rows, cols: m.cols, lit: lit}
}

// Subset reports whether every cell lit in m is also lit in other.
func (m LitMask) Subset(other LitMask) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, l := range m.lit {
		if l && !other.lit[i] {
			return false
		}
	}
	return true
}

// Equal returns true if both masks light exactly the same cells.
func (m LitMask) Equal(other LitMask) bool {
	return m.Subset(other) && other.Subset(m)
}
