package session

import (
	"time"

	"github.com/vovakirdan/tetris-arcade/internal/agents"
	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// CompareMatch drives two tetris.Environment instances in lock-step by
// pieces placed rather than by ticks, adapted from the teacher's
// OnlineMatch: here there are no network inputs to drain, just two
// independent agent decisions applied once per cadence tick.
type CompareMatch struct {
	config tetris.EngineConfig

	name1 string
	name2 string
	agent1 agents.Agent
	agent2 agents.Agent

	env1 *tetris.Environment
	env2 *tetris.Environment

	lastObs1 tetris.Observation
	lastObs2 tetris.Observation

	placed1 int
	placed2 int
	clears1 int
	clears2 int

	maxPieces int
	seed      int64
	startedAt time.Time
}

// NewCompareMatch constructs a comparison run; call Reset before StepBoth.
func NewCompareMatch(config tetris.EngineConfig, name1 string, agent1 agents.Agent, name2 string, agent2 agents.Agent, seed int64, maxPieces int) *CompareMatch {
	return &CompareMatch{
		config:    config,
		name1:     name1,
		name2:     name2,
		agent1:    agent1,
		agent2:    agent2,
		env1:      tetris.NewEnvironment(config),
		env2:      tetris.NewEnvironment(config),
		maxPieces: maxPieces,
		seed:      seed,
	}
}

// Reset seeds both sides from the same seed so their piece streams
// coincide, and returns the initial pair of observations.
func (m *CompareMatch) Reset() (tetris.Observation, tetris.Observation) {
	m.lastObs1 = m.env1.Reset(m.seed)
	m.lastObs2 = m.env2.Reset(m.seed)
	m.placed1, m.placed2 = 0, 0
	m.clears1, m.clears2 = 0, 0
	m.startedAt = time.Now()
	return m.lastObs1, m.lastObs2
}

// StepBoth advances each side that is not yet finished by exactly one
// placement, returning the resulting observations, the current leader by
// score, each side's running efficiency stats, and whether both sides have
// now finished (top-out or max_pieces).
func (m *CompareMatch) StepBoth() (tetris.Observation, tetris.Observation, string, ComparisonStats, ComparisonStats, bool) {
	if !m.finished1() {
		m.advance(m.env1, m.agent1, &m.lastObs1, &m.placed1, &m.clears1)
	}
	if !m.finished2() {
		m.advance(m.env2, m.agent2, &m.lastObs2, &m.placed2, &m.clears2)
	}

	leader := "TIE"
	switch {
	case m.lastObs1.Episode.Score > m.lastObs2.Episode.Score:
		leader = "agent1"
	case m.lastObs2.Episode.Score > m.lastObs1.Episode.Score:
		leader = "agent2"
	}

	stats1 := statsFor(m.lastObs1, m.clears1)
	stats2 := statsFor(m.lastObs2, m.clears2)

	return m.lastObs1, m.lastObs2, leader, stats1, stats2, m.finished1() && m.finished2()
}

func (m *CompareMatch) advance(env *tetris.Environment, agent agents.Agent, lastObs *tetris.Observation, placed *int, clears *int) {
	placement := agent.Decide(*lastObs)
	result := env.StepPlacement(placement)
	*lastObs = result.Obs
	*placed++
	if result.Info.LinesCleared > 0 {
		*clears++
	}
}

func (m *CompareMatch) finished1() bool {
	return m.env1.Done() || (m.maxPieces > 0 && m.placed1 >= m.maxPieces)
}

func (m *CompareMatch) finished2() bool {
	return m.env2.Done() || (m.maxPieces > 0 && m.placed2 >= m.maxPieces)
}

// Finish reports the winning side by final score (TIE on an exact tie) and
// the two final observations.
func (m *CompareMatch) Finish() (string, tetris.Observation, tetris.Observation) {
	winner := "TIE"
	switch {
	case m.lastObs1.Episode.Score > m.lastObs2.Episode.Score:
		winner = "agent1"
	case m.lastObs2.Episode.Score > m.lastObs1.Episode.Score:
		winner = "agent2"
	}
	return winner, m.lastObs1, m.lastObs2
}

// Scores returns each side's final score for persistence.
func (m *CompareMatch) Scores() (int, int) {
	return m.lastObs1.Episode.Score, m.lastObs2.Episode.Score
}

func statsFor(obs tetris.Observation, clears int) ComparisonStats {
	stats := ComparisonStats{Clears: clears}
	if obs.Episode.LinesTotal > 0 {
		stats.PointsPerLine = float64(obs.Episode.Score) / float64(obs.Episode.LinesTotal)
	}
	if clears > 0 {
		stats.AvgLinesPerClear = float64(obs.Episode.LinesTotal) / float64(clears)
	}
	return stats
}
