package config

import (
	"github.com/vovakirdan/tetris-arcade/internal/agents"
	"github.com/vovakirdan/tetris-arcade/internal/tetris"
)

// ToEngineConfig converts the YAML-shaped EngineConfig into the engine
// package's own config type.
func (c TetrisConfig) ToEngineConfig() tetris.EngineConfig {
	return tetris.EngineConfig{
		SRSEnabled:     c.Engine.SRSEnabled,
		HoldEnabled:    c.Engine.HoldEnabled,
		LockDelayTicks: c.Engine.LockDelayTicks,
		NextQueueSize:  c.Engine.NextQueueSize,
		GravityTicks:   c.Engine.GravityTicks,
	}
}

// ToDellacherieWeights converts the YAML-shaped weights into the agents
// package's own weight type.
func (c TetrisConfig) ToDellacherieWeights() agents.DellacherieWeights {
	return agents.DellacherieWeights{
		LandingHeight:  c.Dellacherie.LandingHeight,
		ErodedCells:    c.Dellacherie.ErodedCells,
		RowTransitions: c.Dellacherie.RowTransitions,
		ColTransitions: c.Dellacherie.ColTransitions,
		Holes:          c.Dellacherie.Holes,
		Wells:          c.Dellacherie.Wells,
	}
}
