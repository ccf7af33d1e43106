package puzzle

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	g, player, err := ParseLevel([]string{
		"@.*#",
		"LSD/",
		"#..E",
	})
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("expected 3x4 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if player != P(0, 0) {
		t.Errorf("player = %v, want (0,0)", player)
	}

	tests := []struct {
		pos  Pos
		want Tile
	}{
		{P(0, 0), TileFloor}, // player marker becomes floor
		{P(0, 1), TileFloor},
		{P(0, 2), TileLampOn},
		{P(0, 3), TileWall},
		{P(1, 0), TileLampOff},
		{P(1, 1), TileSwitch},
		{P(1, 2), TileDoorLocked},
		{P(1, 3), TileDoorOpen},
		{P(2, 3), TileExit},
	}
	for _, tc := range tests {
		if got := g.At(tc.pos); got != tc.want {
			t.Errorf("At(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestParseLevelMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		code string
	}{
		{"no rows", nil, CodeEmptyLevel},
		{"empty first row", []string{""}, CodeEmptyLevel},
		{"ragged rows", []string{"@..", ".."}, CodeRaggedRows},
		{"no player", []string{"...", ".E."}, CodeNoPlayer},
		{"two players", []string{"@..", "..@"}, CodeDuplicatePlayer},
		{"unknown symbol", []string{"@.x"}, CodeUnknownSymbol},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseLevel(tc.rows)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedLevel) {
				t.Errorf("errors.Is(err, ErrMalformedLevel) = false for %v", err)
			}
			var mle *MalformedLevelError
			if !errors.As(err, &mle) {
				t.Fatalf("expected *MalformedLevelError, got %T", err)
			}
			if mle.Code != tc.code {
				t.Errorf("code = %s, want %s", mle.Code, tc.code)
			}
		})
	}
}

func TestParseLevelErrorPosition(t *testing.T) {
	_, _, err := ParseLevel([]string{"@..", ".?."})
	var mle *MalformedLevelError
	if !errors.As(err, &mle) {
		t.Fatalf("expected *MalformedLevelError, got %v", err)
	}
	if mle.Row != 1 || mle.Col != 1 {
		t.Errorf("error at (%d,%d), want (1,1)", mle.Row, mle.Col)
	}
}

func TestTileSymbolRoundTrip(t *testing.T) {
	for tile := TileWall; tile <= TileExit; tile++ {
		got, ok := ParseTile(tile.Symbol())
		if !ok || got != tile {
			t.Errorf("ParseTile(%q) = %v, %v; want %v", tile.Symbol(), got, ok, tile)
		}
	}

	if _, ok := ParseTile('@'); ok {
		t.Error("player marker must not parse as a tile")
	}
}

func TestTilePredicates(t *testing.T) {
	tests := []struct {
		tile        Tile
		blocks      bool
		interactive bool
	}{
		{TileWall, true, false},
		{TileFloor, false, false},
		{TileLampOff, false, true},
		{TileLampOn, false, true},
		{TileSwitch, false, true},
		{TileDoorLocked, true, false},
		{TileDoorOpen, false, false},
		{TileExit, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if got := tc.tile.BlocksMovement(); got != tc.blocks {
				t.Errorf("BlocksMovement() = %v, want %v", got, tc.blocks)
			}
			// Opacity and solidity are the same set.
			if got := tc.tile.BlocksLight(); got != tc.blocks {
				t.Errorf("BlocksLight() = %v, want %v", got, tc.blocks)
			}
			if got := tc.tile.Interactive(); got != tc.interactive {
				t.Errorf("Interactive() = %v, want %v", got, tc.interactive)
			}
		})
	}
}
