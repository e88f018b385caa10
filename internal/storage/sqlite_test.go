package storage

import (
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
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Mode: ModePlay, Rule: "combo", Score: 100, Passes: 8, Smashes: 2, Duration: 1500 * time.Millisecond, Seed: 7},
		{Mode: ModePlay, Rule: "combo", Score: 50, Passes: 5},
		{Mode: ModePlay, Rule: "plain", Score: 200, Passes: 20, BestStreak: 11},
		{Mode: ModeSimulate, Rule: "combo", Score: 500, Passes: 40},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(ModePlay, 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, expected 3", len(top))
	}

	expected := []int{200, 100, 50}
	for i, r := range top {
		if r.Score != expected[i] {
			t.Errorf("run[%d].Score = %d, expected %d", i, r.Score, expected[i])
		}
		if r.Mode != ModePlay {
			t.Errorf("run[%d].Mode = %q, expected %q", i, r.Mode, ModePlay)
		}
	}

	if top[0].Rule != "plain" || top[0].BestStreak != 11 {
		t.Errorf("top run = %+v, expected plain rule with best streak 11", top[0])
	}
	if top[1].Duration != 1500*time.Millisecond {
		t.Errorf("run[1].Duration = %v, expected 1.5s", top[1].Duration)
	}
	if top[1].Seed != 7 {
		t.Errorf("run[1].Seed = %d, expected 7", top[1].Seed)
	}
	if top[1].CreatedAt.IsZero() {
		t.Error("run[1].CreatedAt is zero")
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns(all) failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("TopRuns(all) = %d runs led by %d, expected 4 led by 500", len(all), all[0].Score)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveRun(RunEntry{Mode: ModeSimulate, Rule: "combo", Score: i * 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(ModeSimulate, 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("TopRuns() returned %d runs, expected 5", len(top))
	}
	if top[0].Score != 150 {
		t.Errorf("top score = %d, expected 150", top[0].Score)
	}

	// Non-positive limits fall back to 10
	top, err = store.TopRuns(ModeSimulate, 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("TopRuns(limit 0) returned %d runs, expected 10", len(top))
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(ModePlay)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() = %d, expected 0 for empty store", best)
	}

	store.SaveRun(RunEntry{Mode: ModePlay, Score: 30})
	store.SaveRun(RunEntry{Mode: ModePlay, Score: 90})
	store.SaveRun(RunEntry{Mode: ModeSimulate, Score: 900})

	best, err = store.BestScore(ModePlay)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 90 {
		t.Errorf("BestScore() = %d, expected 90", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Mode: ModePlay, Score: 100, Passes: 10})
	store.SaveRun(RunEntry{Mode: ModePlay, Score: 200, Passes: 14})
	store.SaveRun(RunEntry{Mode: ModePlay, Score: 300, Passes: 12})

	stats, err := store.Stats(ModePlay)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.MostPasses != 14 {
		t.Errorf("MostPasses = %d, expected 14", stats.MostPasses)
	}

	empty, err := store.Stats(ModeSimulate)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats(empty) = %+v, expected zero counts", empty)
	}
}

func TestStoreRecentAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Mode: ModePlay, Score: 10})
	store.SaveRun(RunEntry{Mode: ModeSimulate, Score: 20})
	store.SaveRun(RunEntry{Mode: ModePlay, Score: 30})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("RecentRuns(2) = %+v, expected scores [30 20]", recent)
	}

	if err := store.ClearRuns(ModePlay); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(ModePlay, 10)
	if len(top) != 0 {
		t.Errorf("TopRuns() after clear returned %d runs, expected 0", len(top))
	}
	top, _ = store.TopRuns(ModeSimulate, 10)
	if len(top) != 1 {
		t.Errorf("simulate runs after clearing play = %d, expected 1", len(top))
	}
}
