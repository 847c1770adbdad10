package storage

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tidal-drop/internal/config"
	"github.com/vovakirdan/tidal-drop/internal/surf"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestScoreBoardImplementsStore(t *testing.T) {
	board := NewScoreBoard(openTestStore(t), quietLogger())

	if board.BestScore() != 0 {
		t.Fatalf("Expected best 0, got %d", board.BestScore())
	}
	if !board.SetBestScoreIfHigher(80) {
		t.Error("Expected first best score to be stored")
	}
	if board.SetBestScoreIfHigher(80) {
		t.Error("Equal score should not replace the best")
	}

	board.AddScore("Surfer", 80)
	board.AddScore("Kai", 95)

	top := board.TopScores(10)
	if len(top) != 2 || top[0].Name != "Kai" || top[1].Score != 80 {
		t.Errorf("Unexpected leaderboard: %+v", top)
	}
}

func TestScoreBoardDrivesSimulation(t *testing.T) {
	board := NewScoreBoard(openTestStore(t), quietLogger())
	board.SetBestScoreIfHigher(5)

	state := surf.NewState(config.DefaultSurfConfig(), surf.Viewport{W: 640, H: 384}, 1, board)
	if f := state.Snapshot(); f.BestScore != 5 {
		t.Errorf("State should load the stored best, got %d", f.BestScore)
	}
}

func TestScoreBoardDegradesOnError(t *testing.T) {
	store := openTestStore(t)
	board := NewScoreBoard(store, quietLogger())
	board.AddScore("Kai", 10)

	store.Close()

	if got := board.BestScore(); got != 0 {
		t.Errorf("BestScore() on closed store = %d, expected 0", got)
	}
	if board.SetBestScoreIfHigher(100) {
		t.Error("SetBestScoreIfHigher() on closed store should report false")
	}
	if got := board.TopScores(10); len(got) != 0 {
		t.Errorf("TopScores() on closed store = %+v, expected empty", got)
	}

	// Must not panic
	board.AddScore("Bo", 20)
	board.RecordRun(RunRecord{Score: 20})
}
