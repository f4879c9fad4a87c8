// Package config provides YAML-based configuration loading for the engine's
// tunables and the Dellacherie heuristic's weights, with embedded defaults
// overridable by a user file.
package config

// EngineConfig mirrors tetris.EngineConfig with yaml tags, decoupling the
// wire/file format from the engine package.
type EngineConfig struct {
	SRSEnabled     bool `yaml:"srs_enabled"`
	HoldEnabled    bool `yaml:"hold_enabled"`
	LockDelayTicks int  `yaml:"lock_delay_ticks"`
	NextQueueSize  int  `yaml:"next_queue_size"`
	GravityTicks   int  `yaml:"gravity_ticks"`
}

// DellacherieWeights mirrors agents.DellacherieWeights with yaml tags.
type DellacherieWeights struct {
	LandingHeight  float64 `yaml:"landing_height"`
	ErodedCells    float64 `yaml:"eroded_cells"`
	RowTransitions float64 `yaml:"row_transitions"`
	ColTransitions float64 `yaml:"col_transitions"`
	Holes          float64 `yaml:"holes"`
	Wells          float64 `yaml:"wells"`
}

// TetrisConfig is the top-level document loaded from tetris.yaml.
type TetrisConfig struct {
	Engine      EngineConfig       `yaml:"engine"`
	Dellacherie DellacherieWeights `yaml:"dellacherie"`
}
