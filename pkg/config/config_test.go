package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollIntervalMS != 10 {
		t.Errorf("expected default poll interval 10, got %d", cfg.PollIntervalMS)
	}
	if cfg.ObstacleThresholdMM != 250 {
		t.Errorf("expected default obstacle threshold 250, got %d", cfg.ObstacleThresholdMM)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.yaml")
	body := `
pollintervalms: 20
waypoints:
  - x: 1000
    y: 0
  - x: 1000
    y: 1000
`
	if err := os.WriteFile(path, []byte(body), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PollIntervalMS != 20 {
		t.Errorf("expected poll interval 20, got %d", cfg.PollIntervalMS)
	}
	// Untouched fields keep their defaults.
	if cfg.I2CDevice != "/dev/i2c-1" {
		t.Errorf("expected default i2c device, got %q", cfg.I2CDevice)
	}
	if len(cfg.Waypoints) != 2 || cfg.Waypoints[1] != (Point{X: 1000, Y: 1000}) {
		t.Errorf("unexpected waypoints: %v", cfg.Waypoints)
	}
}

func TestSaveInUse(t *testing.T) {
	dir := t.TempDir()
	orig := filepath.Join(dir, "rover.yaml")
	cfg, err := Load(orig)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SaveInUse(orig); err != nil {
		t.Fatalf("SaveInUse failed: %v", err)
	}
	saved, err := os.ReadFile(filepath.Join(dir, "rover-in-use.yaml"))
	if err != nil {
		t.Fatalf("in-use copy not written: %v", err)
	}
	if len(saved) == 0 {
		t.Error("in-use copy is empty")
	}
}
