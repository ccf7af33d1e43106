package puzzle

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, _, err := ParseLevel(rows)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	return g
}

func litRows(m LitMask, rows, cols int) []string {
	out := make([]string, rows)
	for r := 0; r < rows; r++ {
		b := make([]byte, cols)
		for c := 0; c < cols; c++ {
			b[c] = '0'
			if m.Lit(P(r, c)) {
				b[c] = '1'
			}
		}
		out[r] = string(b)
	}
	return out
}

func TestRecomputeLighting(t *testing.T) {
	tests := []struct {
		name  string
		level []string
		want  []string
	}{
		{
			name:  "no lamps on",
			level: []string{"@.L", "..."},
			want:  []string{"000", "000"},
		},
		{
			name:  "floods to walls",
			level: []string{"@.*###", "#...#E"},
			want:  []string{"111000", "011100"},
		},
		{
			name:  "locked door stops light",
			level: []string{"*.D.@"},
			want:  []string{"11000"},
		},
		{
			name:  "open door passes light",
			level: []string{"*./.@"},
			want:  []string{"11111"},
		},
		{
			name:  "no diagonal leaks",
			level: []string{"*#@", "#.."},
			want:  []string{"100", "000"},
		},
		{
			name:  "two lamps merge",
			level: []string{"*.#.*", "..#@."},
			want:  []string{"11011", "11011"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.level...)
			got := litRows(RecomputeLighting(g), g.Rows(), g.Cols())
			for r := range tc.want {
				if got[r] != tc.want[r] {
					t.Errorf("row %d = %s, want %s", r, got[r], tc.want[r])
				}
			}
		})
	}
}

// referenceLit is an independent depth-first oracle for the flood fill.
func referenceLit(g *Grid) mapset.Set[Pos] {
	seen := mapset.New[Pos]()
	var visit func(p Pos)
	visit = func(p Pos) {
		if !g.InBounds(p) || seen.Has(p) || g.At(p).BlocksLight() {
			return
		}
		seen.Put(p)
		for _, d := range orthogonal {
			visit(p.Add(d[0], d[1]))
		}
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(P(r, c)) == TileLampOn {
				visit(P(r, c))
			}
		}
	}
	return seen
}

func randomGrid(rng *rand.Rand, rows, cols int) *Grid {
	weights := []Tile{
		TileFloor, TileFloor, TileFloor, TileFloor,
		TileWall, TileWall, TileLampOff, TileLampOn,
		TileDoorLocked, TileDoorOpen, TileSwitch, TileExit,
	}
	g := NewGrid(rows, cols, TileFloor)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Set(P(r, c), weights[rng.Intn(len(weights))])
		}
	}
	return g
}

func TestLightingMatchesReachability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		g := randomGrid(rng, 1+rng.Intn(9), 1+rng.Intn(12))
		mask := RecomputeLighting(g)
		ref := referenceLit(g)

		if mask.Count() != ref.Size() {
			t.Fatalf("grid %d: lit count %d, reference %d\n%s", i, mask.Count(), ref.Size(), g)
		}
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				p := P(r, c)
				if mask.Lit(p) != ref.Has(p) {
					t.Fatalf("grid %d: cell %v lit=%v, reference %v\n%s", i, p, mask.Lit(p), ref.Has(p), g)
				}
			}
		}
	}
}

func TestLightingMonotonicUnderLampToggle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		g := randomGrid(rng, 2+rng.Intn(6), 2+rng.Intn(8))
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				p := P(r, c)
				if !g.At(p).IsLamp() {
					continue
				}

				before := RecomputeLighting(g)
				wasOn := g.At(p) == TileLampOn
				if wasOn {
					g.Set(p, TileLampOff)
				} else {
					g.Set(p, TileLampOn)
				}
				after := RecomputeLighting(g)

				if wasOn && !after.Subset(before) {
					t.Fatalf("turning lamp %v off lit new cells\n%s", p, g)
				}
				if !wasOn && !before.Subset(after) {
					t.Fatalf("turning lamp %v on darkened cells\n%s", p, g)
				}
			}
		}
	}
}

func TestLightingIsDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(rng, 8, 8)

	first := RecomputeLighting(g)
	for i := 0; i < 5; i++ {
		if !RecomputeLighting(g.Clone()).Equal(first) {
			t.Fatal("recompute on an identical grid gave a different mask")
		}
	}
}

func TestToggleAllDoors(t *testing.T) {
	g := mustGrid(t, "@D/", "D.S")

	if n := ToggleAllDoors(g); n != 3 {
		t.Errorf("flipped %d doors, want 3", n)
	}
	if got := g.String(); got != "./D\n/.S" {
		t.Errorf("after toggle:\n%s", got)
	}

	ToggleAllDoors(g)
	if got := g.String(); got != ".D/\nD.S" {
		t.Errorf("second toggle should restore doors, got:\n%s", got)
	}
}

func TestToggleAllDoorsNoDoors(t *testing.T) {
	g := mustGrid(t, "@.*", "LSE")
	before := g.Clone()

	if n := ToggleAllDoors(g); n != 0 {
		t.Errorf("flipped %d doors, want 0", n)
	}
	if !g.Equal(before) {
		t.Error("grid without doors must not change")
	}
}
