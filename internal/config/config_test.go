package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "duffing" {
		t.Errorf("expected system duffing, got %s", cfg.System)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.T1 <= cfg.T0 {
		t.Error("default span should be forward-oriented")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("duffing", "quick")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Grid.NX != 60 {
		t.Errorf("expected nx 60, got %d", cfg.Grid.NX)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("duffing", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "quick"); cfg != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("duffing"); len(presets) == 0 {
		t.Error("expected presets for duffing")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent system")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	cfg := DefaultConfig()
	cfg.Method = "postprocessed"
	cfg.Direction = "forward"
	cfg.Grid.NX = 17

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Method != "postprocessed" || loaded.Direction != "forward" || loaded.Grid.NX != 17 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = GridConfig{XMin: 0, XMax: 1, NX: 3, YMin: 0, YMax: 1, NY: 2}

	g, err := cfg.BuildGrid()
	if err != nil {
		t.Fatalf("build grid failed: %v", err)
	}
	if g.Len() != 6 {
		t.Errorf("expected 6 grid points, got %d", g.Len())
	}

	cfg.Grid.NX = 0
	if _, err := cfg.BuildGrid(); err == nil {
		t.Error("expected error for empty axis")
	}
}
