package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaultWhenNothingElsePresent(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Engine.NextQueueSize != 3 {
		t.Fatalf("expected embedded default next_queue_size 3, got %d", cfg.Engine.NextQueueSize)
	}
	if cfg.Dellacherie.Holes != DefaultTetrisConfig().Dellacherie.Holes {
		t.Fatalf("expected embedded default holes weight %v, got %v",
			DefaultTetrisConfig().Dellacherie.Holes, cfg.Dellacherie.Holes)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := `
engine:
  srs_enabled: false
  hold_enabled: false
  lock_delay_ticks: 5
  next_queue_size: 1
  gravity_ticks: 10
dellacherie:
  landing_height: 1
  eroded_cells: 2
  row_transitions: 3
  col_transitions: 4
  holes: 5
  wells: 6
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(customPath) error: %v", err)
	}
	if cfg.Engine.SRSEnabled {
		t.Fatal("expected custom file's srs_enabled: false to win")
	}
	if cfg.Engine.LockDelayTicks != 5 {
		t.Fatalf("lock_delay_ticks = %d, want 5", cfg.Engine.LockDelayTicks)
	}
	if cfg.Dellacherie.Wells != 6 {
		t.Fatalf("wells = %v, want 6", cfg.Dellacherie.Wells)
	}
}

func TestLoadCustomPathMissingIsHardError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a nonexistent explicit custom path")
	}
}

func TestLoadCustomPathInvalidYAMLIsHardError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("engine: [this is not a mapping"), 0o644); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML on an explicit custom path")
	}
}

func TestToEngineConfigFieldMapping(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ec := cfg.ToEngineConfig()
	if ec.SRSEnabled != cfg.Engine.SRSEnabled ||
		ec.HoldEnabled != cfg.Engine.HoldEnabled ||
		ec.LockDelayTicks != cfg.Engine.LockDelayTicks ||
		ec.NextQueueSize != cfg.Engine.NextQueueSize ||
		ec.GravityTicks != cfg.Engine.GravityTicks {
		t.Fatalf("ToEngineConfig field mismatch: %+v vs %+v", ec, cfg.Engine)
	}
}

func TestToDellacherieWeightsFieldMapping(t *testing.T) {
	cfg := DefaultTetrisConfig()
	w := cfg.ToDellacherieWeights()
	if w.LandingHeight != cfg.Dellacherie.LandingHeight ||
		w.ErodedCells != cfg.Dellacherie.ErodedCells ||
		w.RowTransitions != cfg.Dellacherie.RowTransitions ||
		w.ColTransitions != cfg.Dellacherie.ColTransitions ||
		w.Holes != cfg.Dellacherie.Holes ||
		w.Wells != cfg.Dellacherie.Wells {
		t.Fatalf("ToDellacherieWeights field mismatch: %+v vs %+v", w, cfg.Dellacherie)
	}
}

func TestGetDefaultYAMLParsesToDefaultConfig(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("expected a non-empty embedded default document")
	}
	if cfg != DefaultTetrisConfig() {
		t.Fatalf("embedded YAML does not round-trip to DefaultTetrisConfig: %+v vs %+v", cfg, DefaultTetrisConfig())
	}
}
