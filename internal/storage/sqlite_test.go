package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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

func TestStoreSaveAndRetrieveEpisodes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveEpisode(Episode{Agent: "dellacherie", Seed: 1, Score: 100, Lines: 5, Pieces: 40}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}
	if _, err := store.SaveEpisode(Episode{Agent: "dellacherie", Seed: 2, Score: 500, Lines: 20, Pieces: 120}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}
	if _, err := store.SaveEpisode(Episode{Agent: "random", Seed: 3, Score: 50, Lines: 1, Pieces: 30}); err != nil {
		t.Fatalf("SaveEpisode() failed: %v", err)
	}

	episodes, err := store.TopEpisodes("dellacherie", 10)
	if err != nil {
		t.Fatalf("TopEpisodes() failed: %v", err)
	}
	if len(episodes) != 2 {
		t.Fatalf("expected 2 dellacherie episodes, got %d", len(episodes))
	}
	if episodes[0].Score != 500 {
		t.Errorf("expected top score 500, got %d", episodes[0].Score)
	}

	all, err := store.TopEpisodes("", 10)
	if err != nil {
		t.Fatalf("TopEpisodes(\"\") failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 episodes across all agents, got %d", len(all))
	}
}

func TestStoreSaveAndRetrieveCompareRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveCompareRun(CompareRun{
		Agent1: "dellacherie", Agent2: "random", Seed: 7,
		Score1: 800, Score2: 100, Winner: "agent1", Reason: "score",
	}); err != nil {
		t.Fatalf("SaveCompareRun() failed: %v", err)
	}

	runs, err := store.RecentCompareRuns(10)
	if err != nil {
		t.Fatalf("RecentCompareRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 compare run, got %d", len(runs))
	}
	if runs[0].Winner != "agent1" {
		t.Errorf("expected winner agent1, got %s", runs[0].Winner)
	}
}
