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
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

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

	runs := []RunRecord{
		{GameID: "arena", Score: 100, Wave: 2, Kills: 9},
		{GameID: "arena", Score: 50, Wave: 1, Kills: 4},
		{GameID: "arena", Score: 200, Wave: 3, Kills: 17, Duration: 95 * time.Second, Player: "alice", Difficulty: "hard"},
		{GameID: "other", Score: 500, Wave: 5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("arena", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	best := top[0]
	if best.Wave != 3 || best.Kills != 17 {
		t.Errorf("Expected wave 3 with 17 kills, got wave %d with %d kills", best.Wave, best.Kills)
	}
	if best.Duration != 95*time.Second {
		t.Errorf("Expected duration 95s, got %v", best.Duration)
	}
	if best.Player != "alice" || best.Difficulty != "hard" {
		t.Errorf("Labels not preserved: %+v", best)
	}
	if best.RunID == "" {
		t.Error("SaveRun should assign a run ID")
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{GameID: "arena", Score: (i + 1) * 100, Wave: 1})
	}

	// Request only top 3
	runs, err := store.TopRuns("arena", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreTiesPreferDeeperWave(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "arena", Score: 100, Wave: 2})
	store.SaveRun(RunRecord{GameID: "arena", Score: 100, Wave: 4})

	runs, err := store.TopRuns("arena", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Wave != 4 {
		t.Errorf("Expected the wave 4 run first, got %+v", runs)
	}
}

func TestStoreRunSavedOnce(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{RunID: "run-1", GameID: "arena", Score: 42, Wave: 2}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err := store.SaveRun(run)
	if !errors.Is(err, ErrRunExists) {
		t.Fatalf("Expected ErrRunExists on duplicate save, got %v", err)
	}

	runs, err := store.TopRuns("arena", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != "run-1" || runs[0].Score != 42 {
		t.Errorf("Expected the single stored run with score 42, got %+v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(RunRecord{GameID: "arena", Score: 100})
	store.SaveRun(RunRecord{GameID: "arena", Score: 300})
	store.SaveRun(RunRecord{GameID: "arena", Score: 200})

	high, err = store.HighScore("arena")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "arena", Score: 100})
	store.SaveRun(RunRecord{GameID: "arena", Score: 200})
	store.SaveRun(RunRecord{GameID: "other", Score: 300})

	// Clear only arena runs
	if err := store.ClearRuns("arena"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	arenaRuns, _ := store.TopRuns("arena", 10)
	if len(arenaRuns) != 0 {
		t.Errorf("Expected 0 arena runs after clear, got %d", len(arenaRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Errorf("Other game runs should not be affected by clearing arena")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "arena", Score: 100, Wave: 2, Kills: 10, Duration: time.Minute})
	store.SaveRun(RunRecord{GameID: "arena", Score: 300, Wave: 5, Kills: 30, Duration: 2 * time.Minute})

	stats, err := store.GetGameStats("arena")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Expected high 300 avg 200, got high %d avg %v", stats.HighScore, stats.AvgScore)
	}
	if stats.BestWave != 5 || stats.TotalKills != 40 {
		t.Errorf("Expected best wave 5 and 40 kills, got %d and %d", stats.BestWave, stats.TotalKills)
	}
	if stats.PlayTime != 3*time.Minute {
		t.Errorf("Expected 3m play time, got %v", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
