package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(SolveRun{MapID: "lake", MapHash: "abc", Found: true, Moves: 4, Expanded: 5})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	fixed := uuid.NewString()
	got, err := store.SaveRun(SolveRun{ID: fixed, MapID: "lake", MapHash: "abc"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != fixed {
		t.Errorf("SaveRun() id = %q, want %q", got, fixed)
	}

	if _, err := store.SaveRun(SolveRun{ID: fixed, MapID: "lake"}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []SolveRun{
		{MapID: "lake", MapHash: "h1", Found: true, Moves: 4, Expanded: 5, Duration: 1500 * time.Microsecond},
		{MapID: "cave", MapHash: "h2", Found: false, Expanded: 9},
		{MapID: "lake", MapHash: "h1", Found: true, Moves: 4, Expanded: 5, Duration: 20 * time.Microsecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	lake, err := store.RecentRuns("lake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(lake) != 2 {
		t.Fatalf("Expected 2 lake runs, got %d", len(lake))
	}
	// Newest first.
	if lake[0].Duration != 20*time.Microsecond || lake[1].Duration != 1500*time.Microsecond {
		t.Errorf("unexpected order: %v, %v", lake[0].Duration, lake[1].Duration)
	}
	if !lake[0].Found || lake[0].Moves != 4 || lake[0].Expanded != 5 || lake[0].MapHash != "h1" {
		t.Errorf("unexpected run: %+v", lake[0])
	}
	if lake[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs in total, got %d", len(all))
	}

	limited, err := store.RecentRuns("", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run, got %d", len(limited))
	}
}

func TestPlays(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestPlay("lake")
	if err != nil {
		t.Fatalf("BestPlay() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best play, got %+v", best)
	}

	plays := []PlayRecord{
		{MapID: "lake", Player: "ann", Moves: 7, Optimal: 4},
		{MapID: "lake", Player: "bob", Moves: 4, Optimal: 4},
		{MapID: "lake", Player: "cid", Moves: 4, Optimal: 4},
		{MapID: "cave", Player: "ann", Moves: 2, Optimal: 2},
	}
	for _, p := range plays {
		if _, err := store.SavePlay(p); err != nil {
			t.Fatalf("SavePlay() failed: %v", err)
		}
	}

	top, err := store.TopPlays("lake", 10)
	if err != nil {
		t.Fatalf("TopPlays() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 plays, got %d", len(top))
	}
	// Ties keep the earlier record first.
	if top[0].Player != "bob" || top[1].Player != "cid" || top[2].Player != "ann" {
		t.Errorf("unexpected order: %s, %s, %s", top[0].Player, top[1].Player, top[2].Player)
	}
	if !top[0].Perfect() || top[2].Perfect() {
		t.Error("Perfect() mismatch")
	}

	best, err = store.BestPlay("lake")
	if err != nil {
		t.Fatalf("BestPlay() failed: %v", err)
	}
	if best == nil || best.Player != "bob" || best.Moves != 4 {
		t.Errorf("BestPlay() = %+v", best)
	}
}

func TestMapStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.MapStats("nothing")
	if err != nil {
		t.Fatalf("MapStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.Plays != 0 || empty.BestMoves != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(SolveRun{MapID: "lake", MapHash: "h", Found: true, Moves: 4, Expanded: 4})
	store.SaveRun(SolveRun{MapID: "lake", MapHash: "h", Found: false, Expanded: 8})
	store.SavePlay(PlayRecord{MapID: "lake", Player: "ann", Moves: 6, Optimal: 4})
	store.SavePlay(PlayRecord{MapID: "lake", Player: "bob", Moves: 5, Optimal: 4})

	stats, err := store.MapStats("lake")
	if err != nil {
		t.Fatalf("MapStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.Solved != 1 {
		t.Errorf("runs = %d solved = %d, want 2 and 1", stats.Runs, stats.Solved)
	}
	if stats.AvgExpanded != 6 {
		t.Errorf("AvgExpanded = %v, want 6", stats.AvgExpanded)
	}
	if stats.Plays != 2 || stats.BestMoves != 5 {
		t.Errorf("plays = %d best = %d, want 2 and 5", stats.Plays, stats.BestMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store1.SavePlay(PlayRecord{MapID: "lake", Player: "ann", Moves: 9}); err != nil {
		t.Fatalf("SavePlay() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	best, err := store2.BestPlay("lake")
	if err != nil {
		t.Fatalf("BestPlay() failed: %v", err)
	}
	if best == nil || best.Moves != 9 {
		t.Errorf("Expected persisted play with 9 moves, got %+v", best)
	}
}

func TestParseTime(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want time.Time
	}{
		{"time value", ts, ts},
		{"sqlite text", "2024-05-01 12:30:00", ts},
		{"rfc3339", "2024-05-01T12:30:00Z", ts},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); !got.Equal(tt.want) {
				t.Errorf("parseTime(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
