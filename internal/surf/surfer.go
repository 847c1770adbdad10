package surf

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/core"
)

// Surfer is the player body. X is a fixed anchor; the world scrolls under it.
// Y is the bottom of the body (the board), so the body spans [Y-Height, Y].
type Surfer struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	VY     float64 // Vertical velocity, negative is up
	OnWave bool
}

// NewSurfer places a surfer on the wave at the configured anchor.
func NewSurfer(cfg config.SurfPlayer, vp Viewport, wave WaveState) Surfer {
	s := Surfer{
		X:      vp.W * cfg.XRatio,
		Width:  cfg.Width,
		Height: cfg.Height,
		OnWave: true,
	}
	s.Repin(wave)
	return s
}

// Surface returns the Y the surfer has when riding the wave.
func (s *Surfer) Surface(wave WaveState) float64 {
	return wave.HeightAt(s.X) - s.Height
}

// Repin snaps an on-wave surfer back to the surface. Airborne surfers are untouched.
func (s *Surfer) Repin(wave WaveState) {
	if !s.OnWave {
		return
	}
	s.Y = s.Surface(wave)
	s.VY = 0
}

// Update advances the body by dt. A jump only takes effect while riding the
// wave; it returns true when the surfer left the wave this tick.
func (s *Surfer) Update(dt float64, jump bool, wave WaveState, phys config.SurfPhysics) bool {
	if s.OnWave {
		s.Y = s.Surface(wave)
		s.VY = 0

		if jump {
			s.OnWave = false
			s.VY = phys.JumpVelocity
			return true
		}
		return false
	}

	// In the air
	s.VY += phys.Gravity * dt
	if s.VY > phys.MaxFallSpeed {
		s.VY = phys.MaxFallSpeed
	}
	s.Y += s.VY * dt

	// Land if we reached the wave from above
	if surface := s.Surface(wave); s.Y >= surface {
		s.Y = surface
		s.VY = 0
		s.OnWave = true
	}
	return false
}

// Bounds returns the collision rectangle: centered on X, extending Height up from Y.
func (s Surfer) Bounds() core.Box {
	half := s.Width / 2
	return core.NewBox(s.X-half, s.Y-s.Height, s.X+half, s.Y)
}

// Collides reports whether the surfer's rectangle strictly overlaps the obstacle's circle.
func Collides(s Surfer, o Obstacle) bool {
	return core.CircleOverlapsBox(mgl64.Vec2{o.X, o.Y}, o.Radius, s.Bounds())
}
