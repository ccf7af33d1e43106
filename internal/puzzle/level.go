package puzzle

// Level is a named level text: equal-length rows in the level format.
//
//	#  wall          .  floor         @  player start (exactly one)
//	L  lamp (off)    *  lamp (on)     S  switch
//	D  locked door   /  open door     E  exit
type Level struct {
	ID   string
	Name string
	Rows []string
}

// ParseLevel builds a grid from level rows and extracts the player start.
// The player's cell becomes floor. Any structural problem is reported as a
// *MalformedLevelError; nothing is guessed.
func ParseLevel(rows []string) (*Grid, Pos, error) {
	if len(rows) == 0 {
		return nil, Pos{}, malformed(CodeEmptyLevel, -1, -1, "level has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, Pos{}, malformed(CodeEmptyLevel, 0, -1, "level has an empty first row")
	}

	g := NewGrid(len(rows), width, TileFloor)
	player := Pos{Row: -1, Col: -1}

	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, Pos{}, malformed(CodeRaggedRows, r, -1,
				"row %d has %d cells, expected %d", r, len(runes), width)
		}

		for c, ch := range runes {
			if ch == symbolPlayer {
				if player.Row >= 0 {
					return nil, Pos{}, malformed(CodeDuplicatePlayer, r, c,
						"second player marker at (%d,%d), first at %s", r, c, player)
				}
				player = P(r, c)
				g.Set(player, TileFloor)
				continue
			}

			t, ok := ParseTile(ch)
			if !ok {
				return nil, Pos{}, malformed(CodeUnknownSymbol, r, c,
					"unknown symbol %q at (%d,%d)", ch, r, c)
			}
			g.Set(P(r, c), t)
		}
	}

	if player.Row < 0 {
		return nil, Pos{}, malformed(CodeNoPlayer, -1, -1, "level has no player marker %q", symbolPlayer)
	}

	return g, player, nil
}
