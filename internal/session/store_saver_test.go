package session

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tetris-arcade/internal/storage"
)

func TestStoreSaverPersistsEpisodeAndCompareRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	saver := NewStoreSaver(store)

	if err := saver.SaveEpisode("dellacherie", 1, 1200, 10, 42, true, 30); err != nil {
		t.Fatalf("SaveEpisode: %v", err)
	}
	episodes, err := store.TopEpisodes("dellacherie", 10)
	if err != nil {
		t.Fatalf("TopEpisodes: %v", err)
	}
	if len(episodes) != 1 || episodes[0].Score != 1200 {
		t.Fatalf("expected one persisted episode with score 1200, got %+v", episodes)
	}

	if err := saver.SaveCompareRun("random", "dellacherie", 2, 100, 900, "agent2", "max_pieces_or_topout", 20); err != nil {
		t.Fatalf("SaveCompareRun: %v", err)
	}
	runs, err := store.RecentCompareRuns(10)
	if err != nil {
		t.Fatalf("RecentCompareRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Winner != "agent2" {
		t.Fatalf("expected one persisted compare run won by agent2, got %+v", runs)
	}
}
