package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{LevelID: "escape", Player: "ada", Moves: 30}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, ok, err := store.BestMoves("escape")
	if err != nil || !ok || best != 30 {
		t.Errorf("BestMoves() = %d, %v, %v; want 30, true, nil", best, ok, err)
	}
}

func TestInMemoryStore(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(Run{LevelID: "escape", Moves: 23}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.BestRuns("escape", 5)
	if err != nil || len(runs) != 1 {
		t.Errorf("BestRuns() = %v, %v", runs, err)
	}
}

func TestBestRunsOrdering(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	runs := []Run{
		{LevelID: "escape", Player: "ada", Moves: 40, CompletedAt: base},
		{LevelID: "escape", Player: "bob", Moves: 23, CompletedAt: base.Add(2 * time.Hour)},
		{LevelID: "escape", Player: "cyd", Moves: 23, CompletedAt: base.Add(time.Hour)},
		{LevelID: "escape", Player: "dee", Moves: 31, CompletedAt: base.Add(3 * time.Hour)},
		{LevelID: "other", Player: "eve", Moves: 5, CompletedAt: base},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	got, err := store.BestRuns("escape", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	want := []string{"cyd", "bob", "dee", "ada"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(got))
	}
	for i, player := range want {
		if got[i].Player != player {
			t.Errorf("rank %d = %s (%d moves), expected %s", i+1, got[i].Player, got[i].Moves, player)
		}
	}
	if !got[0].CompletedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("CompletedAt = %v, expected %v", got[0].CompletedAt, base.Add(time.Hour))
	}

	top, err := store.BestRuns("escape", 2)
	if err != nil || len(top) != 2 {
		t.Errorf("limit 2: got %d runs, err %v", len(top), err)
	}
}

func TestBestMovesEmpty(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.BestMoves("escape")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("BestMoves() on empty log = %d, %v; want 0, false", best, ok)
	}
}

func TestSaveRunValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		run  Run
	}{
		{"missing level", Run{Moves: 10}},
		{"negative moves", Run{LevelID: "escape", Moves: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.SaveRun(tc.run)
			if !errors.Is(err, ErrInvalidRun) {
				t.Errorf("SaveRun() error = %v, want ErrInvalidRun", err)
			}
		})
	}
}

func TestSaveRunDefaultsTime(t *testing.T) {
	store := openTestStore(t)
	before := time.Now().Add(-2 * time.Second)

	if _, err := store.SaveRun(Run{LevelID: "escape", Moves: 23}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.BestRuns("escape", 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("BestRuns() = %v, %v", runs, err)
	}
	if runs[0].CompletedAt.Before(before) {
		t.Errorf("CompletedAt = %v, expected about now", runs[0].CompletedAt)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, r := range []Run{
		{Player: "ada", Moves: 30},
		{Player: "ada", Moves: 24},
		{Player: "bob", Moves: 27},
	} {
		r.LevelID = "escape"
		r.CompletedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.LevelStats("escape")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Players != 2 || stats.BestMoves != 24 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgMoves != 27 {
		t.Errorf("AvgMoves = %v, expected 27", stats.AvgMoves)
	}
	if !stats.LastCompleted.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("LastCompleted = %v", stats.LastCompleted)
	}

	empty, err := store.LevelStats("nothing")
	if err != nil {
		t.Fatalf("LevelStats() on empty level failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastCompleted.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)
	for _, lvl := range []string{"escape", "escape", "other"} {
		if _, err := store.SaveRun(Run{LevelID: lvl, Moves: 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	n, err := store.ClearRuns("escape")
	if err != nil || n != 2 {
		t.Errorf("ClearRuns() = %d, %v; want 2, nil", n, err)
	}
	if _, ok, _ := store.BestMoves("other"); !ok {
		t.Error("clearing one level must keep the others")
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
	}{
		{"time value", want},
		{"text", "2026-03-01 12:30:00"},
		{"rfc3339", "2026-03-01T12:30:00Z"},
		{"bytes", []byte("2026-03-01 12:30:00")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(want) {
				t.Errorf("parseTime(%v) = %v", tc.in, got)
			}
		})
	}
	if !parseTime(nil).IsZero() {
		t.Error("nil should parse to the zero time")
	}
}
