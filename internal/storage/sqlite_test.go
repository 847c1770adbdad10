package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.AddScore("Kai", 120)
	store.SetBestScoreIfHigher(120)
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore()
	if err != nil || best != 120 {
		t.Errorf("BestScore() = %d, %v; expected 120", best, err)
	}
	scores, _ := store.TopScores(10)
	if len(scores) != 1 || scores[0].Name != "Kai" {
		t.Errorf("leaderboard not persisted: %+v", scores)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		name  string
		score int
	}{{"Ana", 100}, {"Bo", 50}, {"Cy", 200}} {
		if _, err := store.AddScore(s.name, s.score); err != nil {
			t.Fatalf("AddScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Name != "Cy" {
		t.Errorf("Expected top name Cy, got %q", scores[0].Name)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreKeepsOnlyTopEntries(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		store.AddScore(fmt.Sprintf("p%d", i), i*10)
	}

	scores, err := store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultLeaderboardSize {
		t.Fatalf("Expected %d scores, got %d", DefaultLeaderboardSize, len(scores))
	}
	if scores[0].Score != 150 || scores[9].Score != 60 {
		t.Errorf("Expected 150..60, got %d..%d", scores[0].Score, scores[9].Score)
	}

	// The table itself is truncated, not just the query
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != DefaultLeaderboardSize {
		t.Errorf("Expected %d rows on disk, got %d", DefaultLeaderboardSize, n)
	}
}

func TestStoreTiesKeepEarlierEntry(t *testing.T) {
	store := openTestStore(t)
	store.SetCapacity(2)

	store.AddScore("first", 40)
	store.AddScore("second", 40)
	store.AddScore("third", 40)

	scores, _ := store.TopScores(10)
	if len(scores) != 2 || scores[0].Name != "first" || scores[1].Name != "second" {
		t.Errorf("Expected [first second], got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.AddScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty store, got %d", best)
	}

	tests := []struct {
		score    int
		changed  bool
		expected int
	}{
		{300, true, 300},
		{300, false, 300},
		{100, false, 300},
		{301, true, 301},
	}

	for _, tc := range tests {
		changed, err := store.SetBestScoreIfHigher(tc.score)
		if err != nil {
			t.Fatalf("SetBestScoreIfHigher(%d) failed: %v", tc.score, err)
		}
		if changed != tc.changed {
			t.Errorf("SetBestScoreIfHigher(%d) = %v, expected %v", tc.score, changed, tc.changed)
		}
		if best, _ := store.BestScore(); best != tc.expected {
			t.Errorf("after %d best = %d, expected %d", tc.score, best, tc.expected)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.AddScore("a", 100)
	store.SetBestScoreIfHigher(100)
	store.RecordRun(RunRecord{Score: 100})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.BestScore(); best != 0 {
		t.Errorf("Expected best score reset, got %d", best)
	}

	// History survives
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 {
		t.Errorf("Run history should not be affected by clearing scores")
	}
}

func TestStoreRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	runs := []RunRecord{
		{Score: 10, Difficulty: "easy", Duration: 4 * time.Second},
		{Score: 40, Difficulty: "normal", Duration: 9 * time.Second},
		{Score: 25, Difficulty: "hard", Duration: 1500 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Difficulty != "hard" || recent[0].Duration != 1500*time.Millisecond {
		t.Errorf("Expected newest run first, got %+v", recent[0])
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestScore != 40 || stats.TotalScore != 75 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 25 {
		t.Errorf("Expected average 25, got %v", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
