// Package agents provides Tetris decision policies (heuristic and random)
// behind a small interface, plus a factory registry so the session and CLI
// layers can look one up by name without importing every implementation.
package agents

import "github.com/vovakirdan/tetris-arcade/internal/tetris"

// Agent selects a placement given an observation. Implementations depend
// only on the observations they are given and on their construction seed —
// no hidden dependence on wall-clock time — so runs stay reproducible.
type Agent interface {
	// Name identifies the policy for display and for stats attribution.
	Name() string
	// Decide picks a target placement among obs.LegalMoves. Callers should
	// treat an empty LegalMoves list as already handled by the caller;
	// implementations fall back to a zero-value placement in that case.
	Decide(obs tetris.Observation) tetris.PlacementAction
}

// Stats tracks an agent's cumulative performance across episodes, mirroring
// the per-agent counters used by benchmark reporting and comparison runs.
type Stats struct {
	Episodes    int
	TotalScore  int
	TotalLines  int
	TotalPieces int
}

// Record folds one finished episode's totals into the running stats.
func (s *Stats) Record(score, lines, pieces int) {
	s.Episodes++
	s.TotalScore += score
	s.TotalLines += lines
	s.TotalPieces += pieces
}

// AvgScore returns the mean score per episode, or 0 before any episode ends.
func (s Stats) AvgScore() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Episodes)
}

// AvgLines returns the mean lines cleared per episode.
func (s Stats) AvgLines() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalLines) / float64(s.Episodes)
}

// AvgPieces returns the mean pieces placed per episode.
func (s Stats) AvgPieces() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalPieces) / float64(s.Episodes)
}
