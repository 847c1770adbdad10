package surf

import (
	"sort"
	"sync"
	"time"
)

// ScoreRecord is a single leaderboard entry.
type ScoreRecord struct {
	Name      string
	Score     int
	Timestamp time.Time
}

// ScoreStore persists the best score and the leaderboard. Implementations must
// not fail into the simulation: on storage errors they report zero or empty.
type ScoreStore interface {
	// BestScore returns the stored best score, or 0 if none.
	BestScore() int

	// SetBestScoreIfHigher stores score only if it strictly exceeds the best.
	// Returns true if the best score changed.
	SetBestScoreIfHigher(score int) bool

	// TopScores returns up to limit records, highest score first.
	TopScores(limit int) []ScoreRecord

	// AddScore inserts a record and keeps only the top entries.
	AddScore(name string, score int)
}

// MemoryStore is an in-process ScoreStore. Hosts fall back to it when the
// database is unavailable; tests use it directly.
type MemoryStore struct {
	mu       sync.Mutex
	best     int
	records  []ScoreRecord
	capacity int
	now      func() time.Time
}

// NewMemoryStore creates a store that keeps at most capacity leaderboard entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 10
	}
	return &MemoryStore{
		capacity: capacity,
		now:      time.Now,
	}
}

// BestScore implements ScoreStore.
func (m *MemoryStore) BestScore() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// SetBestScoreIfHigher implements ScoreStore.
func (m *MemoryStore) SetBestScoreIfHigher(score int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score <= m.best {
		return false
	}
	m.best = score
	return true
}

// TopScores implements ScoreStore.
func (m *MemoryStore) TopScores(limit int) []ScoreRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 || limit > len(m.records) {
		limit = len(m.records)
	}
	out := make([]ScoreRecord, limit)
	copy(out, m.records[:limit])
	return out
}

// AddScore implements ScoreStore. Ties keep the earlier entry first.
func (m *MemoryStore) AddScore(name string, score int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, ScoreRecord{Name: name, Score: score, Timestamp: m.now()})
	sort.SliceStable(m.records, func(i, j int) bool {
		return m.records[i].Score > m.records[j].Score
	})
	if len(m.records) > m.capacity {
		m.records = m.records[:m.capacity]
	}
}

var _ ScoreStore = (*MemoryStore)(nil)
