package surf

import "math"

// FrameState is a read-only copy of everything a renderer needs for one frame.
type FrameState struct {
	Tick        uint64
	Phase       Phase
	Viewport    Viewport
	Wave        WaveState
	Surfer      Surfer
	Obstacles   []Obstacle
	Score       int // Live score while playing, final score after game over
	BestScore   int
	NewBest     bool
	Saved       bool
	SpeedFactor float64
}

// Snapshot returns the current frame state. Obstacles are copied so the
// renderer never aliases simulation memory.
func (s *State) Snapshot() FrameState {
	obstacles := make([]Obstacle, len(s.field.Obstacles()))
	copy(obstacles, s.field.Obstacles())

	score := int(math.Floor(s.distance))
	if s.phase == PhaseGameOver {
		score = s.finalScore
	}

	return FrameState{
		Tick:        s.tick,
		Phase:       s.phase,
		Viewport:    s.viewport,
		Wave:        s.wave,
		Surfer:      s.surfer,
		Obstacles:   obstacles,
		Score:       score,
		BestScore:   s.bestScore,
		NewBest:     s.newBest,
		Saved:       s.saved,
		SpeedFactor: s.difficulty.SpeedFactor(),
	}
}
