// Package config provides YAML-based configuration loading and difficulty
// presets for Tidal Drop.
package config

import (
	"errors"
	"fmt"
)

// SurfConfig contains all tunable parameters of the surf simulation.
type SurfConfig struct {
	Physics    SurfPhysics      `yaml:"physics"`
	Wave       SurfWave         `yaml:"wave"`
	Surfer     SurfPlayer       `yaml:"surfer"`
	Obstacles  SurfObstacles    `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    SurfScoring      `yaml:"scoring"`
	Viewport   SurfViewport     `yaml:"viewport"`
}

// SurfPhysics defines the surfer's projectile motion.
type SurfPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"`
}

// SurfWave defines the sine wave terrain.
type SurfWave struct {
	AmplitudeRatio  float64 `yaml:"amplitude_ratio"`
	BaseHeightRatio float64 `yaml:"base_height_ratio"`
	Wavelength      float64 `yaml:"wavelength"`
	BaseSpeed       float64 `yaml:"base_speed"`
}

// SurfPlayer defines the surfer's body.
type SurfPlayer struct {
	XRatio float64 `yaml:"x_ratio"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SurfObstacles defines hazard spawning and pruning.
type SurfObstacles struct {
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	SpawnMargin  float64 `yaml:"spawn_margin"`
	PruneMargin  float64 `yaml:"prune_margin"`
	SinkRatio    float64 `yaml:"sink_ratio"`
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  float64 `yaml:"min_interval"`
}

// DifficultyConfig defines the linear speed ramp.
type DifficultyConfig struct {
	Enabled  bool    `yaml:"enabled"`
	RampRate float64 `yaml:"ramp_rate"` // Speed factor gained per second of play
}

// SurfScoring defines score accumulation and leaderboard parameters.
type SurfScoring struct {
	DistanceScale   float64 `yaml:"distance_scale"`
	LeaderboardSize int     `yaml:"leaderboard_size"`
	DefaultName     string  `yaml:"default_name"`
}

// SurfViewport maps terminal cells to world pixels.
type SurfViewport struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Validate reports configuration values the simulation cannot run with.
func (c SurfConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity))
	}
	if c.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed))
	}
	if c.Physics.MaxFrameDelta <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_frame_delta must be positive, got %v", c.Physics.MaxFrameDelta))
	}
	if c.Wave.Wavelength <= 0 {
		errs = append(errs, fmt.Errorf("wave.wavelength must be positive, got %v", c.Wave.Wavelength))
	}
	if c.Wave.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("wave.base_speed must be positive, got %v", c.Wave.BaseSpeed))
	}
	if c.Surfer.Width <= 0 || c.Surfer.Height <= 0 {
		errs = append(errs, fmt.Errorf("surfer size must be positive, got %vx%v", c.Surfer.Width, c.Surfer.Height))
	}
	if c.Obstacles.MinRadius <= 0 || c.Obstacles.MinRadius > c.Obstacles.MaxRadius {
		errs = append(errs, fmt.Errorf("obstacles radius range [%v, %v] is invalid", c.Obstacles.MinRadius, c.Obstacles.MaxRadius))
	}
	if c.Obstacles.MinInterval <= 0 || c.Obstacles.BaseInterval < c.Obstacles.MinInterval {
		errs = append(errs, fmt.Errorf("obstacles interval base=%v min=%v is invalid", c.Obstacles.BaseInterval, c.Obstacles.MinInterval))
	}
	if c.Difficulty.RampRate < 0 {
		errs = append(errs, fmt.Errorf("difficulty.ramp_rate must not be negative, got %v", c.Difficulty.RampRate))
	}
	if c.Scoring.LeaderboardSize <= 0 {
		errs = append(errs, fmt.Errorf("scoring.leaderboard_size must be positive, got %d", c.Scoring.LeaderboardSize))
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport cell size must be positive, got %vx%v", c.Viewport.CellWidth, c.Viewport.CellHeight))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// RampRateForPreset returns the speed ramp rate for a difficulty preset.
func RampRateForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.12
	case DifficultyFixed:
		return 0
	default:
		return 0.08
	}
}
