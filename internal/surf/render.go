package surf

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/core"
)

// Visual characters for rendering
const (
	CrestChar   = '~'
	SwellChar   = '≈'
	DeepChar    = '░'
	HeadChar    = 'o'
	BodyChar    = '█'
	BoardChar   = '▬'
	RockChar    = '▲'
	BuoyChar    = '♦'
	MineChar    = '✸'
	crestColor  = core.ColorBrightCyan
	swellColor  = core.ColorBlue
	deepColor   = core.ColorDeepSea
	boardColor  = core.ColorOrange
	bodyColor   = core.ColorSkin
	hudColor    = core.ColorBrightWhite
	borderColor = core.ColorCyan
)

// KindGlyph returns the rune and color for an obstacle kind.
// Unknown kinds draw as rocks.
func KindGlyph(k Kind) (rune, core.Color) {
	switch k {
	case KindBuoy:
		return BuoyChar, core.ColorYellow
	case KindMine:
		return MineChar, core.ColorRed
	default:
		return RockChar, core.ColorGray
	}
}

// Render draws a frame into dst. cell gives the pixel size of one screen cell.
// It reads only the frame, never the simulation.
func Render(dst *core.Screen, f FrameState, cell config.SurfViewport) {
	dst.Clear()

	drawWave(dst, f.Wave, cell)
	for _, o := range f.Obstacles {
		drawObstacle(dst, o, cell)
	}
	drawSurfer(dst, f.Surfer, cell)
	drawHUD(dst, f)

	switch f.Phase {
	case PhaseMenu:
		drawCenteredMessage(dst, "T I D A L   D R O P", "Space or click to jump off the wave", "Press Space to start")
	case PhaseGameOver:
		result := fmt.Sprintf("Score: %d", f.Score)
		if f.NewBest {
			result += "  New best!"
		}
		drawCenteredMessage(dst, "WIPEOUT", result, "Press Space to surf again")
	}
}

// drawWave fills every column from the crest down.
func drawWave(dst *core.Screen, w WaveState, cell config.SurfViewport) {
	for cx := 0; cx < dst.Width(); cx++ {
		x := (float64(cx) + 0.5) * cell.CellWidth
		// Keep the crest on screen when the playfield is very short
		crest := core.Clamp(int(math.Floor(w.HeightAt(x)/cell.CellHeight)), 0, dst.Height()-1)

		dst.SetColored(cx, crest, CrestChar, crestColor)
		dst.SetColored(cx, crest+1, SwellChar, swellColor)
		for cy := crest + 2; cy < dst.Height(); cy++ {
			dst.SetColored(cx, cy, DeepChar, deepColor)
		}
	}
}

// drawObstacle fills the cells whose centers fall inside the obstacle circle.
func drawObstacle(dst *core.Screen, o Obstacle, cell config.SurfViewport) {
	glyph, color := KindGlyph(o.Kind)

	x0 := int(math.Floor((o.X - o.Radius) / cell.CellWidth))
	x1 := int(math.Floor((o.X + o.Radius) / cell.CellWidth))
	y0 := int(math.Floor((o.Y - o.Radius) / cell.CellHeight))
	y1 := int(math.Floor((o.Y + o.Radius) / cell.CellHeight))

	drawn := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dx := (float64(cx)+0.5)*cell.CellWidth - o.X
			dy := (float64(cy)+0.5)*cell.CellHeight - o.Y
			if dx*dx+dy*dy <= o.Radius*o.Radius {
				dst.SetColored(cx, cy, glyph, color)
				drawn = true
			}
		}
	}

	// Small obstacles still get one cell
	if !drawn {
		dst.SetColored(int(o.X/cell.CellWidth), int(o.Y/cell.CellHeight), glyph, color)
	}
}

// drawSurfer draws the collision rectangle as head, body and board rows.
func drawSurfer(dst *core.Screen, s Surfer, cell config.SurfViewport) {
	b := s.Bounds()
	left := int(math.Floor(b.Min.X() / cell.CellWidth))
	right := int(math.Floor(b.Max.X() / cell.CellWidth))
	top := int(math.Floor(b.Min.Y() / cell.CellHeight))
	bottom := int(math.Floor(b.Max.Y() / cell.CellHeight))
	mid := int(math.Floor(s.X / cell.CellWidth))

	for cy := top; cy <= bottom; cy++ {
		switch cy {
		case bottom:
			for cx := left; cx <= right; cx++ {
				dst.SetColored(cx, cy, BoardChar, boardColor)
			}
		case top:
			dst.SetColored(mid, cy, HeadChar, bodyColor)
		default:
			dst.SetColored(mid, cy, BodyChar, bodyColor)
		}
	}
}

// drawHUD draws the score line.
func drawHUD(dst *core.Screen, f FrameState) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", f.Score), hudColor)

	best := fmt.Sprintf(" Best: %d ", f.BestScore)
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, hudColor)

	if f.Phase == PhasePlaying {
		speed := fmt.Sprintf(" x%.2f ", f.SpeedFactor)
		dst.DrawTextColored((dst.Width()-len(speed))/2, 0, speed, core.ColorCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), core.Max(len([]rune(subtitle)), len([]rune(hint)))) + 4
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, borderColor)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
	dst.DrawTextCentered(boxY+5, hint, core.ColorGray)
}
