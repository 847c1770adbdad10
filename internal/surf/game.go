// Package surf implements the Tidal Drop simulation: a surfer rides a scrolling
// sine wave and jumps over hazards while speed and spawn rate ramp up.
//
// The package has no timers or goroutines of its own. A host calls
// State.Advance once per frame with the elapsed time and the input signals,
// and draws the returned FrameState.
package surf

import (
	"math"
	"strings"

	"github.com/vovakirdan/tidal-drop/internal/config"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the complete simulation aggregate. It is not safe for concurrent
// use; feed input through a Controller instead.
type State struct {
	cfg        config.SurfConfig
	viewport   Viewport
	phase      Phase
	wave       WaveState
	surfer     Surfer
	field      *ObstacleField
	difficulty DifficultyScheduler
	distance   float64 // Scaled distance; the score is its floor
	finalScore int
	bestScore  int  // Cached store value, refreshed at game over
	newBest    bool // Final score of the last run beat the previous best
	saved      bool // Last run was already added to the leaderboard
	jump       bool // Jump edge waiting for the surfer to be on the wave
	tick       uint64
	store      ScoreStore
}

// NewState creates a simulation in the menu phase. A nil store is replaced
// by an in-memory one.
func NewState(cfg config.SurfConfig, vp Viewport, seed int64, store ScoreStore) *State {
	if store == nil {
		store = NewMemoryStore(cfg.Scoring.LeaderboardSize)
	}

	s := &State{
		cfg:        cfg,
		viewport:   vp,
		phase:      PhaseMenu,
		field:      NewObstacleField(seed, vp.W, cfg.Obstacles),
		difficulty: NewDifficultyScheduler(cfg.Difficulty),
		store:      store,
	}
	s.bestScore = store.BestScore()
	s.reset()
	return s
}

// reset restores every per-run value.
func (s *State) reset() {
	s.wave = NewWave(s.cfg.Wave, s.viewport)
	s.surfer = NewSurfer(s.cfg.Surfer, s.viewport, s.wave)
	s.field.UpdateViewportWidth(s.viewport.W)
	s.field.Reset()
	s.difficulty.Reset()
	s.distance = 0
	s.finalScore = 0
	s.newBest = false
	s.saved = false
	s.jump = false
}

// Start begins a new run from the menu or after a game over.
// It has no effect while a run is in progress.
func (s *State) Start() {
	if s.phase == PhasePlaying {
		return
	}
	s.reset()
	s.phase = PhasePlaying
}

// Advance runs one frame. dt is clamped to [0, max_frame_delta] so stalls in
// the host clock cannot tunnel the surfer through obstacles. A start signal
// begins a run and discards any jump edge of the same frame. A jump edge
// received mid-air is kept and fires on the first tick after landing.
func (s *State) Advance(in Signals, dt float64) FrameState {
	dt = s.clampDelta(dt)
	s.tick++

	if in.Start && s.phase != PhasePlaying {
		s.Start()
		in.Jump = false
	}

	if s.phase == PhasePlaying {
		if in.Jump {
			s.jump = true
		}
		s.step(dt)
	}

	return s.Snapshot()
}

// step advances a run in a fixed order: difficulty, scroll, distance,
// surfer, obstacles, collisions.
func (s *State) step(dt float64) {
	factor := s.difficulty.Advance(dt)
	speed := s.wave.BaseSpeed * factor

	s.wave.Advance(speed * dt)
	s.distance += speed * dt * s.cfg.Scoring.DistanceScale

	if s.surfer.Update(dt, s.jump, s.wave, s.cfg.Physics) {
		s.jump = false
	}

	s.field.Update(dt, factor, speed, s.wave)

	for _, o := range s.field.Obstacles() {
		if Collides(s.surfer, o) {
			s.gameOver()
			return
		}
	}
}

// gameOver freezes the run and records the best score if it improved.
func (s *State) gameOver() {
	s.phase = PhaseGameOver
	s.finalScore = int(math.Floor(s.distance))

	// Another session may share the store
	if stored := s.store.BestScore(); stored > s.bestScore {
		s.bestScore = stored
	}

	if s.finalScore > s.bestScore {
		s.bestScore = s.finalScore
		s.newBest = true
		s.store.SetBestScoreIfHigher(s.finalScore)
	}
}

// SaveScore adds the last run to the leaderboard. It only works once per run
// and only after a game over; an empty name becomes the configured default.
func (s *State) SaveScore(name string) bool {
	if s.phase != PhaseGameOver || s.saved {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.cfg.Scoring.DefaultName
	}
	s.store.AddScore(name, s.finalScore)
	s.saved = true
	return true
}

// Leaderboard returns the top entries from the store.
func (s *State) Leaderboard() []ScoreRecord {
	return s.store.TopScores(s.cfg.Scoring.LeaderboardSize)
}

// Resize adapts the wave to a new viewport and keeps an on-wave surfer on
// the surface. The surfer's anchor is only recomputed on the next run.
func (s *State) Resize(vp Viewport) {
	s.viewport = vp
	s.wave.Fit(s.cfg.Wave, vp)
	s.field.UpdateViewportWidth(vp.W)
	s.surfer.Repin(s.wave)
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Distance returns the accumulated scaled distance of the current run.
func (s *State) Distance() float64 {
	return s.distance
}

// clampDelta bounds a host frame delta. NaN and negative deltas become 0.
func (s *State) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, s.cfg.Physics.MaxFrameDelta)
}
