// Package storage provides SQLite-based persistence for episode and
// comparison-run results. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Episode is a single completed single-play or AI-play run.
type Episode struct {
	ID        int64
	Agent     string // empty for human play
	Seed      int64
	Score     int
	Lines     int
	Pieces    int
	TopOut    bool
	Duration  int // seconds
	CreatedAt time.Time
}

// CompareRun is a single completed two-agent comparison run.
type CompareRun struct {
	ID        int64
	Agent1    string
	Agent2    string
	Seed      int64
	Score1    int
	Score2    int
	Winner    string // "agent1", "agent2", or "TIE"
	Reason    string
	Duration  int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path, creating parent
// directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			agent TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL,
			pieces INTEGER NOT NULL,
			top_out INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_agent ON episodes(agent);
		CREATE INDEX IF NOT EXISTS idx_episodes_top ON episodes(agent, score DESC);

		CREATE TABLE IF NOT EXISTS compare_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			agent1 TEXT NOT NULL,
			agent2 TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL,
			reason TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_compare_runs_agents ON compare_runs(agent1, agent2);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEpisode records a completed single/AI-play run and returns its ID.
func (s *Store) SaveEpisode(e Episode) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes (agent, seed, score, lines, pieces, top_out, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Agent, e.Seed, e.Score, e.Lines, e.Pieces, e.TopOut, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}
	return result.LastInsertId()
}

// TopEpisodes returns the highest-scoring episodes for an agent (or all
// episodes if agent is empty), ordered by score descending; the order of
// episodes with equal scores is not defined.
func (s *Store) TopEpisodes(agent string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, agent, seed, score, lines, pieces, top_out, duration_secs, created_at
	          FROM episodes`
	args := []any{}
	if agent != "" {
		query += " WHERE agent = ?"
		args = append(args, agent)
	}
	query += " ORDER BY score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var entries []Episode
	for rows.Next() {
		var e Episode
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Agent, &e.Seed, &e.Score, &e.Lines, &e.Pieces, &e.TopOut, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SaveCompareRun records a completed two-agent comparison run.
func (s *Store) SaveCompareRun(r CompareRun) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO compare_runs (agent1, agent2, seed, score1, score2, winner, reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Agent1, r.Agent2, r.Seed, r.Score1, r.Score2, r.Winner, r.Reason, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save compare run: %w", err)
	}
	return result.LastInsertId()
}

// RecentCompareRuns returns the most recently created comparison runs.
func (s *Store) RecentCompareRuns(limit int) ([]CompareRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, agent1, agent2, seed, score1, score2, winner, reason, duration_secs, created_at
		 FROM compare_runs
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query compare runs: %w", err)
	}
	defer rows.Close()

	var results []CompareRun
	for rows.Next() {
		var r CompareRun
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Agent1, &r.Agent2, &r.Seed, &r.Score1, &r.Score2, &r.Winner, &r.Reason, &r.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
