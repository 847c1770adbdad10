package surf

import (
	"math/rand"

	"github.com/vovakirdan/tidal-drop/internal/config"
)

// Kind is the closed set of hazard types. Add cases here, never ad-hoc values.
type Kind uint8

const (
	KindRock Kind = iota
	KindBuoy
	KindMine
)

// kinds lists every valid Kind for uniform spawning.
var kinds = [...]Kind{KindRock, KindBuoy, KindMine}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindBuoy:
		return "buoy"
	case KindMine:
		return "mine"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard pinned to the wave surface.
type Obstacle struct {
	X      float64
	Y      float64
	Radius float64
	Kind   Kind
}

// ObstacleField handles spawning, movement and removal of obstacles.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.SurfObstacles
	viewportW float64
	timer     float64 // Seconds since the last spawn
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(seed int64, viewportW float64, cfg config.SurfObstacles) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		viewportW: viewportW,
	}
}

// Reset clears all obstacles and the spawn timer. The RNG keeps its sequence
// so consecutive runs differ while staying reproducible for a seed.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
	f.timer = 0
}

// UpdateViewportWidth changes where new obstacles enter.
func (f *ObstacleField) UpdateViewportWidth(w float64) {
	f.viewportW = w
}

// Update runs one tick: spawn check, move, prune.
// It returns whether an obstacle spawned and how many were pruned.
func (f *ObstacleField) Update(dt, speedFactor, scrollSpeed float64, wave WaveState) (spawned bool, pruned int) {
	f.timer += dt
	if f.timer >= f.cfg.SpawnInterval(speedFactor) {
		f.timer = 0
		f.Spawn(wave)
		spawned = true
	}

	f.Advance(dt, scrollSpeed, wave)
	pruned = f.Prune()
	return spawned, pruned
}

// Spawn creates an obstacle just beyond the right edge of the viewport.
func (f *ObstacleField) Spawn(wave WaveState) Obstacle {
	radius := f.cfg.MinRadius
	if f.cfg.MaxRadius > f.cfg.MinRadius {
		radius += f.rng.Float64() * (f.cfg.MaxRadius - f.cfg.MinRadius)
	}

	o := Obstacle{
		X:      f.viewportW + radius + f.cfg.SpawnMargin,
		Radius: radius,
		Kind:   kinds[f.rng.Intn(len(kinds))],
	}
	o.Y = f.surfaceY(o, wave)

	f.obstacles = append(f.obstacles, o)
	return o
}

// Advance moves every obstacle left by scrollSpeed*dt and re-pins it to the wave.
func (f *ObstacleField) Advance(dt, scrollSpeed float64, wave WaveState) {
	for i := range f.obstacles {
		f.obstacles[i].X -= scrollSpeed * dt
		f.obstacles[i].Y = f.surfaceY(f.obstacles[i], wave)
	}
}

// Prune removes obstacles that have fully left the screen and returns how many
// were removed. Survivors keep their relative order.
func (f *ObstacleField) Prune() int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.Radius >= -f.cfg.PruneMargin {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// Obstacles returns the live obstacles. The slice is owned by the field and
// is only valid until the next Update.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// surfaceY places an obstacle slightly into the wave rather than on the crest line.
func (f *ObstacleField) surfaceY(o Obstacle, wave WaveState) float64 {
	return wave.HeightAt(o.X) - o.Radius*f.cfg.SinkRatio
}
