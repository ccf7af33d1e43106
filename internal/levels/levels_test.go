package levels

import (
	"testing"

	"github.com/vovakirdan/lumen/internal/puzzle"
)

func TestEscapeParses(t *testing.T) {
	s, err := puzzle.NewSession(Escape())
	if err != nil {
		t.Fatalf("built-in level is malformed: %v", err)
	}
	snap := s.Snapshot()

	if snap.Rows != 9 || snap.Cols != 14 {
		t.Errorf("expected 9x14 room, got %dx%d", snap.Rows, snap.Cols)
	}
	if snap.Player != puzzle.P(0, 0) {
		t.Errorf("player starts at %v, want (0,0)", snap.Player)
	}
	if snap.Tile(puzzle.P(4, 13)) != puzzle.TileExit {
		t.Errorf("exit missing at (4,13), found %v", snap.Tile(puzzle.P(4, 13)))
	}
	if got := snap.String(); got != joinRows(Escape().Rows) {
		t.Errorf("fresh snapshot does not round-trip:\n%s", got)
	}
}

func TestEscapeIsSolvable(t *testing.T) {
	s, err := puzzle.NewSession(Escape())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	// Walk down the west corridor, flip the switch at (4,2) diagonally and
	// follow the lit path through the opened doors to the exit.
	route := []puzzle.Pos{
		{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1},
		{Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 2}, {Row: 4, Col: 3},
		{Row: 4, Col: 4}, {Row: 5, Col: 4}, {Row: 5, Col: 5}, {Row: 5, Col: 6},
		{Row: 6, Col: 6}, {Row: 7, Col: 6}, {Row: 7, Col: 7}, {Row: 7, Col: 8},
		{Row: 7, Col: 9}, {Row: 7, Col: 10}, {Row: 6, Col: 10}, {Row: 6, Col: 11},
		{Row: 5, Col: 11}, {Row: 5, Col: 12}, {Row: 4, Col: 12}, {Row: 4, Col: 13},
	}

	var snap puzzle.Snapshot
	var status puzzle.Status
	for i, p := range route {
		snap, status = s.HandleAction(p.Row, p.Col)
		switch status {
		case puzzle.StatusMoved, puzzle.StatusDoorsToggled, puzzle.StatusWon:
		default:
			t.Fatalf("step %d at %v: unexpected status %v\n%s", i, p, status, snap)
		}
	}

	if !snap.Won || status != puzzle.StatusWon {
		t.Fatalf("route did not win: status %v", status)
	}
	if snap.Moves != 23 {
		t.Errorf("moves = %d, want 23", snap.Moves)
	}
}

func TestByID(t *testing.T) {
	if _, ok := ByID(EscapeID); !ok {
		t.Error("ByID(escape) not found")
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID(nope) should fail")
	}
}

func TestSplitRows(t *testing.T) {
	got := splitRows("@.\r\n.E\n\n")
	if len(got) != 2 || got[0] != "@." || got[1] != ".E" {
		t.Errorf("splitRows = %q", got)
	}
}

func joinRows(rows []string) string {
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += "\n"
		}
		out += r
	}
	return out
}
