package surf

import (
	"math"
	"testing"

	"github.com/vovakirdan/tidal-drop/internal/config"
)

func newTestSurfer() (Surfer, WaveState, config.SurfPhysics) {
	cfg := config.DefaultSurfConfig()
	vp := testViewport()
	wave := NewWave(cfg.Wave, vp)
	return NewSurfer(cfg.Surfer, vp, wave), wave, cfg.Physics
}

func TestSurferStartsOnWave(t *testing.T) {
	s, wave, _ := newTestSurfer()

	if !s.OnWave {
		t.Fatal("surfer should start on the wave")
	}
	if s.X != 640*0.3 {
		t.Errorf("X = %v, expected %v", s.X, 640*0.3)
	}
	if s.Y != wave.HeightAt(s.X)-s.Height || s.VY != 0 {
		t.Errorf("surfer not pinned: y=%v vy=%v", s.Y, s.VY)
	}
}

func TestSurferRidesWave(t *testing.T) {
	s, wave, phys := newTestSurfer()
	x := s.X

	for i := 0; i < 100; i++ {
		wave.Advance(5)
		s.Update(1.0/60, false, wave, phys)

		if !s.OnWave || s.VY != 0 {
			t.Fatalf("tick %d: riding surfer left the wave", i)
		}
		if s.Y != wave.HeightAt(s.X)-s.Height {
			t.Fatalf("tick %d: y=%v not pinned to surface", i, s.Y)
		}
		if s.X != x {
			t.Fatalf("tick %d: X moved from %v to %v", i, x, s.X)
		}
	}
}

func TestSurferJumpImpulse(t *testing.T) {
	s, wave, phys := newTestSurfer()

	if jumped := s.Update(1.0/60, true, wave, phys); !jumped {
		t.Fatal("jump edge on the wave should launch the surfer")
	}
	if s.OnWave {
		t.Error("surfer should be airborne after a jump")
	}
	if s.VY != -550 {
		t.Errorf("VY = %v, expected -550", s.VY)
	}
}

func TestSurferCannotDoubleJump(t *testing.T) {
	s, wave, phys := newTestSurfer()
	s.Update(1.0/60, true, wave, phys)

	dt := 1.0 / 60
	for i := 0; i < 10; i++ {
		before := s.VY
		if jumped := s.Update(dt, true, wave, phys); jumped {
			t.Fatalf("tick %d: jumped while airborne", i)
		}
		if s.OnWave {
			break
		}
		if math.Abs(s.VY-(before+phys.Gravity*dt)) > 1e-9 {
			t.Fatalf("tick %d: mid-air jump changed velocity: %v -> %v", i, before, s.VY)
		}
	}
}

func TestSurferGravityAndMaxFall(t *testing.T) {
	s, wave, phys := newTestSurfer()
	s.OnWave = false
	s.Y = -10000 // far above the wave
	s.VY = 0

	dt := 0.03
	s.Update(dt, false, wave, phys)
	if math.Abs(s.VY-phys.Gravity*dt) > 1e-9 {
		t.Errorf("VY = %v, expected %v", s.VY, phys.Gravity*dt)
	}

	for i := 0; i < 200 && !s.OnWave; i++ {
		s.Update(dt, false, wave, phys)
		if s.VY > phys.MaxFallSpeed {
			t.Fatalf("VY %v exceeds max fall speed", s.VY)
		}
	}
}

func TestSurferLandsExactly(t *testing.T) {
	s, wave, phys := newTestSurfer()
	s.Update(0.02, true, wave, phys)

	for i := 0; i < 500 && !s.OnWave; i++ {
		wave.Advance(5)
		s.Update(0.02, false, wave, phys)
	}

	if !s.OnWave {
		t.Fatal("surfer never landed")
	}
	if s.VY != 0 {
		t.Errorf("VY at landing = %v, expected exactly 0", s.VY)
	}
	if s.Y != wave.HeightAt(s.X)-s.Height {
		t.Errorf("landing y = %v, expected surface %v", s.Y, wave.HeightAt(s.X)-s.Height)
	}
}

func TestSurferRepin(t *testing.T) {
	cfg := config.DefaultSurfConfig()
	s, wave, _ := newTestSurfer()

	wave.Fit(cfg.Wave, Viewport{W: 640, H: 800})
	s.Repin(wave)
	if s.Y != wave.HeightAt(s.X)-s.Height {
		t.Error("Repin should move an on-wave surfer to the new surface")
	}

	s.OnWave = false
	s.Y = 10
	s.Repin(wave)
	if s.Y != 10 {
		t.Error("Repin should not touch an airborne surfer")
	}
}

func TestCollides(t *testing.T) {
	s := Surfer{X: 100, Y: 100, Width: 42, Height: 46}

	tests := []struct {
		name     string
		o        Obstacle
		expected bool
	}{
		{"center inside rect", Obstacle{X: 100, Y: 70, Radius: 10}, true},
		{"far right", Obstacle{X: 200, Y: 70, Radius: 10}, false},
		{"grazing right edge", Obstacle{X: 130, Y: 70, Radius: 10}, true},
		{"touching right edge", Obstacle{X: 131, Y: 70, Radius: 10}, false},
		{"below the board", Obstacle{X: 100, Y: 115, Radius: 10}, false},
		{"above the head", Obstacle{X: 100, Y: 40, Radius: 15}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(s, tc.o); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
