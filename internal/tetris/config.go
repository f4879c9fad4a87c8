package tetris

// EngineConfig holds the tunables an Environment is constructed with. Zero
// values are invalid; use DefaultEngineConfig and override selectively.
type EngineConfig struct {
	SRSEnabled     bool `yaml:"srs_enabled"`
	HoldEnabled    bool `yaml:"hold_enabled"`
	LockDelayTicks int  `yaml:"lock_delay_ticks"`
	NextQueueSize  int  `yaml:"next_queue_size"`
	GravityTicks   int  `yaml:"gravity_ticks"`
}

// DefaultEngineConfig matches the reference engine's defaults: SRS and hold
// enabled, a 30-tick (0.5s at 60 ticks/second) lock delay, a 3-piece
// lookahead queue, and gravity dropping one cell every 48 ticks (1/48 G).
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SRSEnabled:     true,
		HoldEnabled:    true,
		LockDelayTicks: DefaultLockDelayTicks,
		NextQueueSize:  3,
		GravityTicks:   48,
	}
}
