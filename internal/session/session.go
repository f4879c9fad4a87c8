package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris-arcade/internal/agents"
	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// ProtocolVersion is the version string this server reports in its hello
// reply. A hello carrying a mismatched major version is rejected with
// ErrVersionMismatch rather than accepted silently.
const ProtocolVersion = "1.0"

// ServerName identifies this implementation in the hello reply.
const ServerName = "tetris-arcade"

// state records what the session is running: idle (no episode yet),
// single_playing (a client-driven episode), ai_playing (an agent placing
// pieces on the cadence ticker) or comparing (a CompareMatch advancing on
// the cadence ticker); it selects the ticker's work and whether the ticker
// runs. dispatch does not filter messages by state: every message type is
// handled in every state, step and step_placement answer
// GAME_NOT_INITIALIZED while no Environment exists, and reset, ai_play and
// compare_start replace whatever was running.
type state int

const (
	stateIdle state = iota
	stateSinglePlaying
	stateAIPlaying
	stateComparing
)

// RunResultSaver persists completed single/AI-play episodes and comparison
// runs. Implementations are best-effort and fire-and-forget: a save
// failure is logged, never surfaced to the client.
type RunResultSaver interface {
	SaveEpisode(agent string, seed int64, score, lines, pieces int, topOut bool, durationSecs int) error
	SaveCompareRun(agent1, agent2 string, seed int64, score1, score2 int, winner, reason string, durationSecs int) error
}

// Session owns one connection's engine state: an Environment for single or
// AI play, or a CompareMatch for comparison mode. It runs a cooperative,
// single-threaded event loop — the only suspension points are waiting for
// the next inbound line, the next AI-cadence tick, and sending to handle.
type Session struct {
	id     ID
	handle Handle
	logger *log.Logger
	config tetris.EngineConfig
	saver  RunResultSaver

	state state

	env    *tetris.Environment
	lastObs tetris.Observation
	seed   int64

	agent        agents.Agent
	agentType    string
	maxPieces    int
	piecesPlaced int
	episodeStart time.Time
	cadence      time.Duration

	compare *CompareMatch
}

// New constructs a Session bound to one outbound handle.
func New(id ID, handle Handle, config tetris.EngineConfig, saver RunResultSaver, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		id:     id,
		handle: handle,
		logger: logger.With("session", string(id)),
		config: config,
		saver:  saver,
		state:  stateIdle,
	}
}

// Run drives the cooperative event loop until inbound closes or done
// fires. AI cadence ticks and comparison cadence ticks are handled inline:
// each dispatch call may itself block briefly only on handle.Send, never on
// I/O, keeping a single select sufficient.
func (s *Session) Run(inbound <-chan []byte, done <-chan struct{}) {
	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		var tickC <-chan time.Time
		if ticker != nil {
			tickC = ticker.C
		}

		select {
		case line, ok := <-inbound:
			if !ok {
				s.logger.Debug("inbound closed, ending session")
				return
			}
			s.dispatch(line)
			ticker = s.syncTicker(ticker)

		case <-tickC:
			s.onCadence()
			ticker = s.syncTicker(ticker)

		case <-done:
			s.logger.Debug("session done signal received")
			return
		}
	}
}

// syncTicker (re)creates the cadence ticker to match the session's current
// playing state and cadence, stopping it entirely when idle.
func (s *Session) syncTicker(existing *time.Ticker) *time.Ticker {
	active := s.state == stateAIPlaying || s.state == stateComparing
	if !active {
		if existing != nil {
			existing.Stop()
		}
		return nil
	}
	if existing != nil {
		existing.Reset(s.cadence)
		return existing
	}
	return time.NewTicker(s.cadence)
}

func (s *Session) dispatch(line []byte) {
	msgType, err := decodeEnvelope(line)
	if err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, err.Error()))
		return
	}

	switch msgType {
	case "hello":
		s.handleHello(line)
	case "reset":
		s.handleReset(line)
	case "step":
		s.handleStep(line)
	case "step_placement":
		s.handleStepPlacement(line)
	case "subscribe":
		// Reserved; accepted as a no-op with no reply.
	case "ai_play":
		s.handleAIPlay(line)
	case "ai_stop":
		s.handleAIStop()
	case "compare_start":
		s.handleCompareStart(line)
	case "compare_stop":
		s.handleCompareStop()
	case "compare_set_speed":
		s.handleCompareSetSpeed(line)
	default:
		s.handle.Send(encodeError(ErrInvalidMessage, "unknown message type: "+msgType))
	}
}

func (s *Session) handleHello(line []byte) {
	var msg HelloMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, err.Error()))
		return
	}
	if msg.Version != "" && majorVersion(msg.Version) != majorVersion(ProtocolVersion) {
		s.handle.Send(encodeError(ErrVersionMismatch, "server speaks protocol "+ProtocolVersion+", client requested "+msg.Version))
		return
	}
	s.handle.Send(encodeHello(ProtocolVersion, ServerName))
}

// majorVersion returns the portion of a "major.minor" version string before
// the first dot, so "1.2" and "1.9" are compatible but "1.x" and "2.x" are not.
func majorVersion(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}

func (s *Session) handleReset(line []byte) {
	var msg ResetMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed reset: "+err.Error()))
		return
	}

	s.stopCompareIfAny("reset")

	seed := time.Now().UnixNano()
	if msg.Seed != nil {
		seed = *msg.Seed
	}
	s.seed = seed
	s.env = tetris.NewEnvironment(s.config)
	s.agent = nil
	s.piecesPlaced = 0
	s.episodeStart = time.Now()
	s.state = stateSinglePlaying

	obs := s.env.Reset(seed)
	s.lastObs = obs
	s.handle.Send(encodeObs(obs, tetris.StepInfo{}, 0, false))
}

func (s *Session) handleStep(line []byte) {
	if s.env == nil {
		s.handle.Send(encodeError(ErrGameNotInitialized, "step before reset"))
		return
	}
	if s.env.Done() {
		s.handle.Send(encodeError(ErrGameOver, "episode already ended"))
		return
	}

	var msg StepMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed step: "+err.Error()))
		return
	}

	action, ok := tetris.ParseFrameAction(msg.Action)
	if !ok {
		s.handle.Send(encodeError(ErrInvalidAction, "unknown action: "+msg.Action))
		return
	}

	result := s.env.Step(action)
	s.lastObs = result.Obs
	s.finishIfDone(result)
	s.handle.Send(encodeObs(result.Obs, result.Info, result.Reward, result.Done))
}

func (s *Session) handleStepPlacement(line []byte) {
	if s.env == nil {
		s.handle.Send(encodeError(ErrGameNotInitialized, "step_placement before reset"))
		return
	}
	if s.env.Done() {
		s.handle.Send(encodeError(ErrGameOver, "episode already ended"))
		return
	}

	var msg StepPlacementMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed step_placement: "+err.Error()))
		return
	}

	result := s.env.StepPlacement(tetris.PlacementAction{X: msg.X, Rot: msg.Rot, UseHold: msg.UseHold})
	s.lastObs = result.Obs
	s.piecesPlaced++
	s.finishIfDone(result)
	s.handle.Send(encodeObs(result.Obs, result.Info, result.Reward, result.Done))
}

func (s *Session) handleAIPlay(line []byte) {
	var msg AIPlayMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed ai_play: "+err.Error()))
		return
	}

	agent, err := agents.Create(msg.AgentType, randomSeedFallback(msg.Seed))
	if err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, err.Error()))
		return
	}

	s.stopCompareIfAny("ai_play")

	seed := time.Now().UnixNano()
	if msg.Seed != nil {
		seed = *msg.Seed
	}
	s.seed = seed
	s.env = tetris.NewEnvironment(s.config)
	s.agent = agent
	s.agentType = msg.AgentType
	s.maxPieces = msg.MaxPieces
	s.piecesPlaced = 0
	s.episodeStart = time.Now()
	s.cadence = cadenceFor(msg.Speed)
	s.state = stateAIPlaying

	obs := s.env.Reset(seed)
	s.lastObs = obs
	s.handle.Send(encodeObs(obs, tetris.StepInfo{}, 0, false))
}

func (s *Session) handleAIStop() {
	if s.state == stateAIPlaying {
		s.state = stateSinglePlaying
	}
}

func (s *Session) handleCompareStart(line []byte) {
	var msg CompareStartMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed compare_start: "+err.Error()))
		return
	}

	agent1, err := agents.Create(msg.Agent1, 0)
	if err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, err.Error()))
		return
	}
	agent2, err := agents.Create(msg.Agent2, 1)
	if err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, err.Error()))
		return
	}

	seed := time.Now().UnixNano()
	if msg.Seed != nil {
		seed = *msg.Seed
	}
	maxPieces := msg.MaxPieces
	if maxPieces <= 0 {
		maxPieces = 500
	}

	s.env = nil
	s.agent = nil
	s.compare = NewCompareMatch(s.config, msg.Agent1, agent1, msg.Agent2, agent2, seed, maxPieces)
	s.cadence = cadenceFor(msg.Speed)
	s.state = stateComparing

	game1, game2 := s.compare.Reset()
	s.handle.Send(encodeCompareObs(game1, game2, "TIE", ComparisonStats{}, ComparisonStats{}))
}

func (s *Session) handleCompareStop() {
	s.stopCompareIfAny("compare_stop")
}

func (s *Session) handleCompareSetSpeed(line []byte) {
	var msg CompareSetSpeedMsg
	if err := json.Unmarshal(line, &msg); err != nil {
		s.handle.Send(encodeError(ErrInvalidMessage, "malformed compare_set_speed: "+err.Error()))
		return
	}
	s.cadence = cadenceFor(msg.Speed)
}

// onCadence fires on every AI/comparison cadence tick: in ai_playing state
// it asks the agent for one placement and executes it; in comparing state
// it advances both sides by one placement each, in lock-step by pieces
// placed rather than by wall-clock ticks.
func (s *Session) onCadence() {
	switch s.state {
	case stateAIPlaying:
		s.stepAIPlacement()
	case stateComparing:
		s.stepCompare()
	}
}

func (s *Session) stepAIPlacement() {
	if s.env == nil || s.env.Done() {
		return
	}

	placement := s.agent.Decide(s.lastObs)
	result := s.env.StepPlacement(placement)
	s.lastObs = result.Obs
	s.piecesPlaced++

	s.finishIfDone(result)
	s.handle.Send(encodeObs(result.Obs, result.Info, result.Reward, result.Done))

	if s.maxPieces > 0 && s.piecesPlaced >= s.maxPieces {
		s.state = stateSinglePlaying
	}
}

func (s *Session) stepCompare() {
	if s.compare == nil {
		return
	}

	game1, game2, leader, stats1, stats2, done := s.compare.StepBoth()
	s.handle.Send(encodeCompareObs(game1, game2, leader, stats1, stats2))

	if done {
		winner, g1, g2 := s.compare.Finish()
		s.handle.Send(encodeCompareComplete(winner, g1, g2))
		s.saveCompareResult(winner)
		s.compare = nil
		s.state = stateIdle
	}
}

func (s *Session) stopCompareIfAny(reason string) {
	if s.compare != nil {
		s.logger.Debug("stopping comparison", "reason", reason)
		s.compare = nil
	}
	if s.state == stateComparing {
		s.state = stateSinglePlaying
	}
}

func (s *Session) finishIfDone(result tetris.StepResult) {
	if !result.Done {
		return
	}
	s.saveEpisodeResult(result)
	if s.state == stateAIPlaying {
		s.state = stateSinglePlaying
	}
}

func (s *Session) saveEpisodeResult(result tetris.StepResult) {
	if s.saver == nil {
		return
	}
	duration := int(time.Since(s.episodeStart).Seconds())
	agentName := s.agentType
	err := s.saver.SaveEpisode(agentName, s.seed, result.Obs.Episode.Score, result.Obs.Episode.LinesTotal, s.piecesPlaced, result.Obs.Episode.TopOut, duration)
	if err != nil {
		s.logger.Warn("failed to persist episode", "error", err)
	}
}

func (s *Session) saveCompareResult(winner string) {
	if s.saver == nil || s.compare == nil {
		return
	}
	s1, s2 := s.compare.Scores()
	duration := int(time.Since(s.compare.startedAt).Seconds())
	err := s.saver.SaveCompareRun(s.compare.name1, s.compare.name2, s.compare.seed, s1, s2, winner, "max_pieces_or_topout", duration)
	if err != nil {
		s.logger.Warn("failed to persist comparison run", "error", err)
	}
}

// cadenceFor turns a speed multiplier into the interval between AI/compare
// placements: one placement per second at speed 1, twice as fast at speed 2,
// and so on, mirroring the base_tick_rate * speed cadence design note.
func cadenceFor(speed float64) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(time.Second) / speed)
}

func randomSeedFallback(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
