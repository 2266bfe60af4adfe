package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		scene             string
		score, collisions int
	}{
		{"platform", 100, 12},
		{"platform", 50, 7},
		{"platform", 200, 31},
		{"arena", 500, 4},
	} {
		if _, err := store.RecordRun(run.scene, run.score, run.collisions); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("platform", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Collisions != 31 {
		t.Errorf("Expected top run to carry 31 collisions, got %d", runs[0].Collisions)
	}

	arenaRuns, err := store.TopRuns("arena", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(arenaRuns) != 1 {
		t.Errorf("Expected 1 arena run, got %d", len(arenaRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordRun("platform", (i+1)*100, i)
	}

	runs, err := store.TopRuns("platform", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("platform")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty scene, got %d", best)
	}

	store.RecordRun("platform", 120, 3)
	store.RecordRun("platform", 340, 9)
	store.RecordRun("platform", 80, 1)

	best, err = store.BestScore("platform")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 340 {
		t.Errorf("Expected best score 340, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("platform", 100, 2)
	store.RecordRun("arena", 200, 5)

	if err := store.ClearRuns("platform"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.AllRuns("platform")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no platform runs after clear, got %d", len(runs))
	}

	arenaRuns, _ := store.AllRuns("arena")
	if len(arenaRuns) != 1 {
		t.Errorf("Clear should not touch other scenes, got %d arena runs", len(arenaRuns))
	}
}
