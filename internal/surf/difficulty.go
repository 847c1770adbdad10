package surf

import "github.com/vovakirdan/tidal-drop/internal/config"

// DifficultyScheduler tracks play time and derives the speed factor that
// scales both scroll speed and spawn cadence.
type DifficultyScheduler struct {
	cfg     config.DifficultyConfig
	elapsed float64
}

// NewDifficultyScheduler creates a scheduler at elapsed time zero.
func NewDifficultyScheduler(cfg config.DifficultyConfig) DifficultyScheduler {
	return DifficultyScheduler{cfg: cfg}
}

// Advance accumulates dt seconds of play and returns the new speed factor.
func (d *DifficultyScheduler) Advance(dt float64) float64 {
	if dt > 0 {
		d.elapsed += dt
	}
	return d.SpeedFactor()
}

// SpeedFactor returns the current multiplier, always >= 1.
func (d *DifficultyScheduler) SpeedFactor() float64 {
	return d.cfg.SpeedFactor(d.elapsed)
}

// Elapsed returns the accumulated play time in seconds.
func (d *DifficultyScheduler) Elapsed() float64 {
	return d.elapsed
}

// Reset returns the scheduler to elapsed time zero.
func (d *DifficultyScheduler) Reset() {
	d.elapsed = 0
}
