package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := ParseRunner(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultRunnerConfig()

	if cfg.Surface != def.Surface {
		t.Errorf("Surface = %+v, want %+v", cfg.Surface, def.Surface)
	}
	if cfg.Player != def.Player {
		t.Errorf("Player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("Physics = %+v, want %+v", cfg.Physics, def.Physics)
	}
	if cfg.Terrain != def.Terrain {
		t.Errorf("Terrain = %+v, want %+v", cfg.Terrain, def.Terrain)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("Difficulty = %+v, want %+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Background) != len(def.Background) {
		t.Fatalf("Background has %d layers, want %d", len(cfg.Background), len(def.Background))
	}
	for i := range def.Background {
		if cfg.Background[i] != def.Background[i] {
			t.Errorf("Background[%d] = %+v, want %+v", i, cfg.Background[i], def.Background[i])
		}
	}
}

func TestParseRunnerPartialOverride(t *testing.T) {
	cfg, err := ParseRunner([]byte("physics:\n  start_speed: 9\n"))
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}
	if cfg.Physics.StartSpeed != 9 {
		t.Errorf("StartSpeed = %d, want 9", cfg.Physics.StartSpeed)
	}
	if cfg.Physics.MaxSpeed != 15 {
		t.Errorf("MaxSpeed = %d, want default 15", cfg.Physics.MaxSpeed)
	}
	if cfg.Terrain.PlatformWidth != 32 {
		t.Errorf("PlatformWidth = %d, want default 32", cfg.Terrain.PlatformWidth)
	}
}

func TestParseRunnerBackgroundReplaces(t *testing.T) {
	cfg, err := ParseRunner([]byte("background:\n  - image: sky\n    speed: 1\n"))
	if err != nil {
		t.Fatalf("ParseRunner() error = %v", err)
	}
	if len(cfg.Background) != 1 {
		t.Fatalf("Background has %d layers, want 1", len(cfg.Background))
	}
	if cfg.Background[0].Speed != 1 {
		t.Errorf("Background[0].Speed = %v, want 1", cfg.Background[0].Speed)
	}
}

func TestParseRunnerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero surface", "surface:\n  width: 0\n"},
		{"start above max", "physics:\n  start_speed: 20\n"},
		{"zero start speed", "physics:\n  start_speed: 0\n"},
		{"zero platform", "terrain:\n  platform_width: 0\n"},
		{"start height above max", "terrain:\n  start_height: 5\n"},
		{"negative hold", "physics:\n  jump_hold_ticks: -1\n"},
		{"zero frame speed", "player:\n  frame_speed: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRunner([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseRunner() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseRunnerMalformed(t *testing.T) {
	if _, err := ParseRunner([]byte("physics: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  start_speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.Physics.StartSpeed != 3 {
		t.Errorf("StartSpeed = %d, want 3", cfg.Physics.StartSpeed)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantSpeed   int
		wantEnabled bool
	}{
		{"", 6, true},
		{DifficultyEasy, 4, true},
		{DifficultyNormal, 6, true},
		{DifficultyHard, 8, true},
		{DifficultyFixed, 6, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tt.preset)
			if cfg.Physics.StartSpeed != tt.wantSpeed {
				t.Errorf("StartSpeed = %d, want %d", cfg.Physics.StartSpeed, tt.wantSpeed)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
