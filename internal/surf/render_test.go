package surf

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/core"
)

func renderFrame(f FrameState) *core.Screen {
	cell := config.DefaultSurfConfig().Viewport
	dst := core.NewScreen(80, 24)
	Render(dst, f, cell)
	return dst
}

func TestKindGlyph(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected rune
	}{
		{KindRock, RockChar},
		{KindBuoy, BuoyChar},
		{KindMine, MineChar},
		{Kind(42), RockChar},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got, _ := KindGlyph(tc.kind); got != tc.expected {
				t.Errorf("KindGlyph(%d) = %q, expected %q", tc.kind, got, tc.expected)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	s := NewState(config.DefaultSurfConfig(), testViewport(), 1, nil)
	out := renderFrame(s.Snapshot()).String()

	if !strings.Contains(out, "T I D A L   D R O P") {
		t.Error("menu title missing")
	}
	if !strings.Contains(out, "Best: 0") {
		t.Error("HUD best score missing")
	}
}

func TestRenderPlayingFrame(t *testing.T) {
	s := NewState(config.DefaultSurfConfig(), testViewport(), 1, nil)
	f := s.Advance(Signals{Start: true}, frame)
	f.Obstacles = append(f.Obstacles, Obstacle{X: 400, Y: 200, Radius: 24, Kind: KindBuoy})

	dst := renderFrame(f)
	out := dst.String()

	if strings.Contains(out, "T I D A L") {
		t.Error("menu overlay drawn while playing")
	}
	for _, glyph := range []rune{CrestChar, BoardChar, HeadChar, BuoyChar} {
		if !strings.ContainsRune(out, glyph) {
			t.Errorf("glyph %q missing from playing frame", glyph)
		}
	}
	if !strings.Contains(out, "x1.00") {
		t.Error("speed factor missing from HUD")
	}

	// The crest row follows the wave under the surfer column
	cell := config.DefaultSurfConfig().Viewport
	cx := int(f.Surfer.X / cell.CellWidth)
	found := false
	for cy := 0; cy < dst.Height(); cy++ {
		if dst.Get(cx, cy) == CrestChar {
			found = true
			break
		}
	}
	if !found {
		t.Error("no wave crest under the surfer")
	}
}

func TestRenderGameOver(t *testing.T) {
	s := NewState(config.DefaultSurfConfig(), testViewport(), 1, nil)
	s.Start()
	s.distance = 77.7
	forceCollision(s)
	f := s.Advance(Signals{}, 0)

	out := renderFrame(f).String()
	for _, want := range []string{"WIPEOUT", "Score: 77", "New best!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderOffscreenObstacleIsClipped(t *testing.T) {
	f := FrameState{
		Phase:     PhasePlaying,
		Wave:      WaveState{Amplitude: 10, Wavelength: 220, BaseHeight: 300},
		Obstacles: []Obstacle{{X: -500, Y: -500, Radius: 30}, {X: 5000, Y: 100, Radius: 30}},
	}

	// Must not panic
	renderFrame(f)
}
