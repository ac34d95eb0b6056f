package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndTop(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		game  string
		score int
		wave  int
	}{
		{"invaders", 90, 2},
		{"invaders", 30, 1},
		{"invaders", 240, 4},
		{"invaders_rapid", 500, 6},
	} {
		if _, err := store.RecordSession(s.game, s.score, s.wave); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions("invaders", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(top))
	}

	want := []int{240, 90, 30}
	for i, s := range top {
		if s.Score != want[i] {
			t.Errorf("top[%d].Score = %d, want %d", i, s.Score, want[i])
		}
		if s.GameID != "invaders" {
			t.Errorf("top[%d].GameID = %q", i, s.GameID)
		}
	}
	if top[0].Wave != 4 {
		t.Errorf("top[0].Wave = %d, want 4", top[0].Wave)
	}
	if top[0].CreatedAt.IsZero() || time.Since(top[0].CreatedAt) > time.Hour {
		t.Errorf("CreatedAt = %v, want a recent time", top[0].CreatedAt)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordSession("invaders", i*30, 1); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions("invaders", 5)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 5 {
		t.Fatalf("Expected 5 sessions, got %d", len(top))
	}
	if top[0].Score != 420 {
		t.Errorf("Expected best 420, got %d", top[0].Score)
	}

	// Non-positive limit falls back to 10
	top, err = store.TopSessions("invaders", 0)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected 10 sessions, got %d", len(top))
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.RecordSession("invaders", 10, 1)
	_, _ = store.RecordSession("invaders_classic", 20, 1)
	last, _ := store.RecordSession("invaders_rapid", 30, 1)

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(recent))
	}
	if recent[0].ID != last {
		t.Errorf("newest session id = %d, want %d", recent[0].ID, last)
	}
	for _, s := range recent {
		if s.ID == first {
			t.Error("oldest session should be cut by the limit")
		}
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("invaders")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	_, _ = store.RecordSession("invaders", 60, 1)
	_, _ = store.RecordSession("invaders", 150, 3)
	_, _ = store.RecordSession("invaders_rapid", 900, 8)

	best, err = store.BestScore("invaders")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 150 {
		t.Errorf("Expected 150, got %d", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	_, _ = store.RecordSession("invaders", 60, 2)
	_, _ = store.RecordSession("invaders", 120, 5)

	stats, err := store.GameStats("invaders")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.Best != 120 || stats.MaxWave != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 90 {
		t.Errorf("AvgScore = %f, want 90", stats.AvgScore)
	}

	empty, err := store.GameStats("invaders_classic")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.Best != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	_, _ = a.RecordSession("invaders", 300, 3)

	best, err := b.BestScore("invaders")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("second store should start empty, got best %d", best)
	}
}
