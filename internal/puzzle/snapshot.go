package puzzle

import "strings"

// Cell is the renderer's view of one grid cell.
type Cell struct {
	Tile Tile
	Lit  bool
}

// Snapshot is a read-only copy of the session state taken after an action
// completed. It shares no memory with the session.
type Snapshot struct {
	LevelID string
	Rows    int
	Cols    int
	Player  Pos
	Moves   int
	Won     bool
	Status  Status

	tiles []Tile
	lit   []bool
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	tiles := make([]Tile, len(s.grid.cells))
	copy(tiles, s.grid.cells)
	lit := make([]bool, len(s.lit.lit))
	copy(lit, s.lit.lit)

	return Snapshot{
		LevelID: s.level.ID,
		Rows:    s.grid.rows,
		Cols:    s.grid.cols,
		Player:  s.player,
		Moves:   s.moves,
		Won:     s.won,
		Status:  s.status,
		tiles:   tiles,
		lit:     lit,
	}
}

// InBounds returns true if p addresses a cell of the snapshot.
func (sn Snapshot) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < sn.Rows && p.Col >= 0 && p.Col < sn.Cols
}

// Cell returns the tile and light state at p.
// Out-of-bounds positions read as dark walls.
func (sn Snapshot) Cell(p Pos) Cell {
	if !sn.InBounds(p) {
		return Cell{Tile: TileWall}
	}
	i := p.Row*sn.Cols + p.Col
	return Cell{Tile: sn.tiles[i], Lit: sn.lit[i]}
}

// Tile returns the tile at p.
func (sn Snapshot) Tile(p Pos) Tile {
	return sn.Cell(p).Tile
}

// IsLit reports whether p is illuminated.
func (sn Snapshot) IsLit(p Pos) bool {
	return sn.Cell(p).Lit
}

// LitCount returns the number of lit cells.
func (sn Snapshot) LitCount() int {
	n := 0
	for _, l := range sn.lit {
		if l {
			n++
		}
	}
	return n
}

// GridRows serializes the grid to level-format rows with the player marker
// overlaid at the player's cell.
func (sn Snapshot) GridRows() []string {
	rows := make([]string, sn.Rows)
	for r := 0; r < sn.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < sn.Cols; c++ {
			p := P(r, c)
			if p == sn.Player {
				sb.WriteRune(symbolPlayer)
				continue
			}
			sb.WriteRune(sn.Tile(p).Symbol())
		}
		rows[r] = sb.String()
	}
	return rows
}

// LitRows renders the lit mask as rows of '1' (lit) and '0' (dark).
func (sn Snapshot) LitRows() []string {
	rows := make([]string, sn.Rows)
	for r := 0; r < sn.Rows; r++ {
		b := make([]byte, sn.Cols)
		for c := 0; c < sn.Cols; c++ {
			b[c] = '0'
			if sn.IsLit(P(r, c)) {
				b[c] = '1'
			}
		}
		rows[r] = string(b)
	}
	return rows
}

// String returns GridRows joined by newlines.
func (sn Snapshot) String() string {
	return strings.Join(sn.GridRows(), "\n")
}
