package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded fallback configuration, used if
// the embedded YAML somehow fails to parse.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Engine: EngineConfig{
			SRSEnabled:     true,
			HoldEnabled:    true,
			LockDelayTicks: 30,
			NextQueueSize:  3,
			GravityTicks:   48,
		},
		Dellacherie: DellacherieWeights{
			LandingHeight:  -4.500158825082766,
			ErodedCells:    3.4181268101392694,
			RowTransitions: -3.2178882868487753,
			ColTransitions: -9.348695305445199,
			Holes:          -7.899265427351652,
			Wells:          -3.3855972247263626,
		},
	}
}

// GetDefaultYAML returns the embedded default tetris.yaml document.
func GetDefaultYAML() []byte {
	return defaultTetrisYAML
}
