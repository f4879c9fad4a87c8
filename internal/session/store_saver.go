package session

import "github.com/vovakirdan/tetris-arcade/internal/storage"

// StoreSaver adapts a *storage.Store to RunResultSaver, the seam between a
// session's finished runs and the SQLite store.
type StoreSaver struct {
	store *storage.Store
}

// NewStoreSaver wraps a storage.Store for use as a Session's RunResultSaver.
func NewStoreSaver(store *storage.Store) *StoreSaver {
	return &StoreSaver{store: store}
}

// SaveEpisode persists one completed single/AI-play run.
func (s *StoreSaver) SaveEpisode(agent string, seed int64, score, lines, pieces int, topOut bool, durationSecs int) error {
	_, err := s.store.SaveEpisode(storage.Episode{
		Agent:    agent,
		Seed:     seed,
		Score:    score,
		Lines:    lines,
		Pieces:   pieces,
		TopOut:   topOut,
		Duration: durationSecs,
	})
	return err
}

// SaveCompareRun persists one completed two-agent comparison run.
func (s *StoreSaver) SaveCompareRun(agent1, agent2 string, seed int64, score1, score2 int, winner, reason string, durationSecs int) error {
	_, err := s.store.SaveCompareRun(storage.CompareRun{
		Agent1:   agent1,
		Agent2:   agent2,
		Seed:     seed,
		Score1:   score1,
		Score2:   score2,
		Winner:   winner,
		Reason:   reason,
		Duration: durationSecs,
	})
	return err
}
