package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tidal-drop/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "wave", core.ColorBrightCyan)
	s.DrawTextColored(4, 0, "rock", core.ColorGray)
	s.SetColored(0, 2, '~', core.ColorDeepSea)
	s.SetColored(1, 2, '?', core.Color(200)) // Unmapped color

	out := RenderScreen(s)

	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 newlines, got %d", n)
	}
	for _, want := range []string{"wave", "rock", "~", "?"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
