package surf

import (
	"math"

	"github.com/vovakirdan/tidal-drop/internal/config"
)

// Viewport is the visible world area in pixels.
type Viewport struct {
	W float64
	H float64
}

// WaveState is the sine wave terrain. Amplitude and BaseHeight follow the
// viewport height; Offset is the scroll distance and only grows during a run.
type WaveState struct {
	Amplitude  float64
	Wavelength float64
	BaseHeight float64
	BaseSpeed  float64
	Offset     float64
}

// NewWave derives a wave for the given viewport with zero offset.
func NewWave(cfg config.SurfWave, vp Viewport) WaveState {
	w := WaveState{
		Wavelength: cfg.Wavelength,
		BaseSpeed:  cfg.BaseSpeed,
	}
	w.Fit(cfg, vp)
	return w
}

// HeightAt returns the surface y at horizontal position x. Both collision and
// rendering use it, so the drawn crest is the physical surface.
func (w WaveState) HeightAt(x float64) float64 {
	angle := (x + w.Offset) / w.Wavelength * 2 * math.Pi
	return w.BaseHeight + math.Sin(angle)*w.Amplitude
}

// Advance scrolls the wave by dx pixels. Negative distances are ignored.
func (w *WaveState) Advance(dx float64) {
	if dx > 0 {
		w.Offset += dx
	}
}

// Fit re-derives the viewport-dependent fields, keeping Offset.
func (w *WaveState) Fit(cfg config.SurfWave, vp Viewport) {
	w.Amplitude = vp.H * cfg.AmplitudeRatio
	w.BaseHeight = vp.H * cfg.BaseHeightRatio
}
