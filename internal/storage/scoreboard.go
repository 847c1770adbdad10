package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tidal-drop/internal/surf"
)

// ScoreBoard adapts a Store to surf.ScoreStore. Storage failures are logged
// and reported as zero or empty so they never reach the simulation.
type ScoreBoard struct {
	store  *Store
	logger *log.Logger
}

// NewScoreBoard wraps store. A nil logger uses the charmbracelet default.
func NewScoreBoard(store *Store, logger *log.Logger) *ScoreBoard {
	if logger == nil {
		logger = log.Default()
	}
	return &ScoreBoard{store: store, logger: logger}
}

// BestScore implements surf.ScoreStore.
func (b *ScoreBoard) BestScore() int {
	score, err := b.store.BestScore()
	if err != nil {
		b.logger.Warn("Best score unavailable", "err", err)
		return 0
	}
	return score
}

// SetBestScoreIfHigher implements surf.ScoreStore.
func (b *ScoreBoard) SetBestScoreIfHigher(score int) bool {
	changed, err := b.store.SetBestScoreIfHigher(score)
	if err != nil {
		b.logger.Warn("Best score not saved", "score", score, "err", err)
		return false
	}
	if changed {
		b.logger.Debug("New best score", "score", score)
	}
	return changed
}

// TopScores implements surf.ScoreStore.
func (b *ScoreBoard) TopScores(limit int) []surf.ScoreRecord {
	entries, err := b.store.TopScores(limit)
	if err != nil {
		b.logger.Warn("Leaderboard unavailable", "err", err)
		return nil
	}

	records := make([]surf.ScoreRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, surf.ScoreRecord{
			Name:      e.Name,
			Score:     e.Score,
			Timestamp: e.CreatedAt,
		})
	}
	return records
}

// AddScore implements surf.ScoreStore.
func (b *ScoreBoard) AddScore(name string, score int) {
	if _, err := b.store.AddScore(name, score); err != nil {
		b.logger.Warn("Score not saved", "name", name, "score", score, "err", err)
	}
}

// RecordRun appends a finished run to the history, logging failures.
func (b *ScoreBoard) RecordRun(run RunRecord) {
	if _, err := b.store.RecordRun(run); err != nil {
		b.logger.Warn("Run not recorded", "score", run.Score, "err", err)
	}
}

var _ surf.ScoreStore = (*ScoreBoard)(nil)
