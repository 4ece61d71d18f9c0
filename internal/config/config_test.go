package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Beam.SupportB != DefaultSpanEnd {
		t.Errorf("expected span end %g, got %g", DefaultSpanEnd, cfg.Beam.SupportB)
	}
	if cfg.Projectile.Gravity != DefaultGravity {
		t.Errorf("expected gravity %g, got %g", DefaultGravity, cfg.Projectile.Gravity)
	}
	if cfg.Gas.Moles != DefaultMoles {
		t.Errorf("expected %g moles, got %g", DefaultMoles, cfg.Gas.Moles)
	}
}

func TestLoadMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	raw := `
beam:
  support_a: 0
  support_b: 6
  loads:
    - position: 2
      force: 10
  udls:
    - start: 3
      end: 6
      intensity: 1.5
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Beam.SupportB != 6 {
		t.Errorf("expected support_b 6, got %g", cfg.Beam.SupportB)
	}
	if len(cfg.Beam.Loads) != 1 || cfg.Beam.Loads[0].Force != 10 {
		t.Errorf("unexpected loads: %+v", cfg.Beam.Loads)
	}
	if len(cfg.Beam.UDLs) != 1 || cfg.Beam.UDLs[0].Intensity != 1.5 {
		t.Errorf("unexpected udls: %+v", cfg.Beam.UDLs)
	}
	// untouched sections keep their defaults
	if cfg.Beam.Samples != DefaultSamples {
		t.Errorf("expected default samples %d, got %d", DefaultSamples, cfg.Beam.Samples)
	}
	if cfg.Gas.Volume != DefaultVolume {
		t.Errorf("expected default gas volume %g, got %g", DefaultVolume, cfg.Gas.Volume)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	cfg := DefaultConfig()
	cfg.Projectile.Speed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if back.Projectile.Speed != 42 {
		t.Errorf("expected speed 42, got %g", back.Projectile.Speed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
