package config

import "math"

// SpeedFactor returns the difficulty multiplier after elapsed seconds of play.
// It is 1 at the start of a run and never decreases as elapsed grows.
func (d DifficultyConfig) SpeedFactor(elapsed float64) float64 {
	if !d.Enabled || d.RampRate <= 0 || elapsed <= 0 {
		return 1
	}
	return 1 + elapsed*d.RampRate
}

// SpawnInterval returns the seconds between obstacle spawns at the given
// speed factor, floored at MinInterval.
func (o SurfObstacles) SpawnInterval(speedFactor float64) float64 {
	if speedFactor < 1 {
		speedFactor = 1
	}
	return math.Max(o.MinInterval, o.BaseInterval/speedFactor)
}
