package config

import (
	_ "embed"
)

//go:embed defaults/surf.yaml
var defaultSurfYAML []byte

// DefaultSurfConfig returns the hardcoded default configuration.
// It mirrors defaults/surf.yaml and is used when the embedded file cannot be parsed.
func DefaultSurfConfig() SurfConfig {
	return SurfConfig{
		Physics: SurfPhysics{
			Gravity:       900,
			JumpVelocity:  -550,
			MaxFallSpeed:  1200,
			MaxFrameDelta: 0.03,
		},
		Wave: SurfWave{
			AmplitudeRatio:  0.18,
			BaseHeightRatio: 0.6,
			Wavelength:      220,
			BaseSpeed:       260,
		},
		Surfer: SurfPlayer{
			XRatio: 0.3,
			Width:  42,
			Height: 46,
		},
		Obstacles: SurfObstacles{
			MinRadius:    22,
			MaxRadius:    32,
			SpawnMargin:  40,
			PruneMargin:  50,
			SinkRatio:    0.2,
			BaseInterval: 1.2,
			MinInterval:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:  true,
			RampRate: 0.08,
		},
		Scoring: SurfScoring{
			DistanceScale:   0.1,
			LeaderboardSize: 10,
			DefaultName:     "Surfer",
		},
		Viewport: SurfViewport{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSurfYAML
}
