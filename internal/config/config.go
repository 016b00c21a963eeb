// Package config provides YAML-based runner configuration loading and
// difficulty ramp management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// RunnerConfig contains all tunables for the endless runner.
type RunnerConfig struct {
	Surface    SurfaceConfig     `yaml:"surface"`
	Player     RunnerPlayer      `yaml:"player"`
	Physics    RunnerPhysics     `yaml:"physics"`
	Terrain    RunnerTerrain     `yaml:"terrain"`
	Background []BackgroundLayer `yaml:"background"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// SurfaceConfig is the logical pixel size of the render surface.
type SurfaceConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RunnerPlayer defines the avatar's placement, size and sprite sheet.
type RunnerPlayer struct {
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Sheet         string  `yaml:"sheet"`
	FrameSpeed    int     `yaml:"frame_speed"`
	LandingOffset float64 `yaml:"landing_offset"` // Sink into the ground on landing
}

// RunnerPhysics defines jump physics and world scroll speed.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	JumpHoldTicks int     `yaml:"jump_hold_ticks"` // Ticks the jump impulse can be held
	StartSpeed    int     `yaml:"start_speed"`
	MaxSpeed      int     `yaml:"max_speed"`
}

// RunnerTerrain defines the platform grid used by the generator.
type RunnerTerrain struct {
	PlatformWidth  int `yaml:"platform_width"`
	PlatformSpacer int `yaml:"platform_spacer"` // Vertical distance between rows
	MaxHeight      int `yaml:"max_height"`
	StartHeight    int `yaml:"start_height"`
	StartLength    int `yaml:"start_length"`
	SeedBlocks     int `yaml:"seed_blocks"`  // Ground blocks placed before the first tick
	SeedOverlap    int `yaml:"seed_overlap"` // Overlap between seeded blocks
}

// BackgroundLayer is one parallax layer.
type BackgroundLayer struct {
	Image string  `yaml:"image"`
	Speed float64 `yaml:"speed"`
}

// DifficultyConfig defines the speed ramp.
type DifficultyConfig struct {
	Enabled         bool `yaml:"enabled"`
	RampFactor      int  `yaml:"ramp_factor"`      // Ramp after cadence*speed*factor ticks
	RequireAirborne bool `yaml:"require_airborne"` // Only ramp while the player is in the air
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset resolves a preset name. The empty string means "use config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", name)
	}
}

// StartSpeedForPreset returns the starting scroll speed for a preset.
func StartSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 8
	default:
		return 6
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable world.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Surface.Width <= 0 || c.Surface.Height <= 0:
		return fmt.Errorf("%w: surface must be positive, got %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.FrameSpeed <= 0:
		return fmt.Errorf("%w: player frame_speed must be positive", ErrInvalid)
	case c.Terrain.PlatformWidth <= 0:
		return fmt.Errorf("%w: platform_width must be positive", ErrInvalid)
	case c.Terrain.MaxHeight < 0 || c.Terrain.StartHeight < 0 || c.Terrain.StartHeight > c.Terrain.MaxHeight:
		return fmt.Errorf("%w: start_height %d outside [0, %d]", ErrInvalid, c.Terrain.StartHeight, c.Terrain.MaxHeight)
	case c.Physics.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive", ErrInvalid)
	case c.Physics.StartSpeed < 1 || c.Physics.StartSpeed > c.Physics.MaxSpeed:
		return fmt.Errorf("%w: start_speed %d outside [1, %d]", ErrInvalid, c.Physics.StartSpeed, c.Physics.MaxSpeed)
	case c.Physics.JumpHoldTicks < 0:
		return fmt.Errorf("%w: jump_hold_ticks must not be negative", ErrInvalid)
	}
	return nil
}
