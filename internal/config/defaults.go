package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 480,
		},
		Player: RunnerPlayer{
			X:             64,
			Y:             250,
			Width:         90,
			Height:        100,
			Sheet:         "avatar_normal",
			FrameSpeed:    4,
			LandingOffset: 5,
		},
		Physics: RunnerPhysics{
			Gravity:       1,
			JumpVelocity:  -10,
			JumpHoldTicks: 12,
			StartSpeed:    6,
			MaxSpeed:      15,
		},
		Terrain: RunnerTerrain{
			PlatformWidth:  32,
			PlatformSpacer: 64,
			MaxHeight:      4,
			StartHeight:    2,
			StartLength:    15,
			SeedBlocks:     30,
			SeedOverlap:    3,
		},
		Background: []BackgroundLayer{
			{Image: "sky", Speed: 0.2},
			{Image: "backdrop", Speed: 0.4},
			{Image: "backdrop2", Speed: 0.6},
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			RampFactor:      20,
			RequireAirborne: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}
