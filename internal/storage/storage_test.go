package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/samuelhe52/Gomoku/internal/board"
)

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("expected username 'Player', got %q", prefs.Username)
		}
		if prefs.Difficulty != DifficultyMedium {
			t.Errorf("expected medium difficulty")
		}
		if prefs.PlayerColor != board.Black {
			t.Errorf("expected default player color Black")
		}
		if !prefs.SoundEnabled {
			t.Errorf("expected sound enabled by default")
		}
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("expected 0 games played")
		}
		if stats.WinRate() != 0 {
			t.Errorf("expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{GamesPlayed: 10, Wins: 5, Losses: 3, Draws: 2}
		if rate := stats.WinRate(); rate != 50 {
			t.Errorf("expected 50%% win rate, got %.2f%%", rate)
		}
	})

	t.Run("DifficultySearchDepth", func(t *testing.T) {
		if DifficultyEasy.SearchDepth() >= DifficultyMedium.SearchDepth() {
			t.Errorf("easy should search shallower than medium")
		}
		if DifficultyMedium.SearchDepth() >= DifficultyHard.SearchDepth() {
			t.Errorf("medium should search shallower than hard")
		}
	})
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Fatal("GetDataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("data directory was not created: %s", dataDir)
	}
}

// newTestStorage opens a Storage backed by a fresh temp-dir BadgerDB,
// bypassing GetDatabaseDir so tests never touch the real platform data dir.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := t.TempDir()

	opts := badger.DefaultOptions(filepath.Join(dir, "db"))
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	prefs := DefaultPreferences()
	prefs.Username = "Alice"
	prefs.Difficulty = DifficultyHard
	prefs.PlayerColor = board.White
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if loaded.Username != "Alice" || loaded.Difficulty != DifficultyHard || loaded.PlayerColor != board.White {
		t.Fatalf("round-tripped preferences mismatch: %+v", loaded)
	}
}

func TestLoadPreferencesDefaultsWhenUnset(t *testing.T) {
	s := newTestStorage(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences: %v", err)
	}
	if prefs.Username != "Player" {
		t.Fatalf("expected defaults when unset, got %+v", prefs)
	}
}

func TestRecordGameUpdatesStats(t *testing.T) {
	s := newTestStorage(t)

	if err := s.RecordGame(GameResult{Won: true, Difficulty: DifficultyHard}); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}
	if err := s.RecordGame(GameResult{Won: false, Difficulty: DifficultyHard}); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatalf("LoadStats: %v", err)
	}
	if stats.GamesPlayed != 2 || stats.Wins != 1 || stats.Losses != 1 {
		t.Fatalf("unexpected stats after RecordGame: %+v", stats)
	}
	if stats.WinsByDiff["hard"] != 1 {
		t.Fatalf("expected 1 hard win, got %+v", stats.WinsByDiff)
	}
	if stats.CurrentStreak != 0 {
		t.Fatalf("expected streak reset after a loss, got %d", stats.CurrentStreak)
	}
}

func TestFirstLaunch(t *testing.T) {
	s := newTestStorage(t)

	first, err := s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if !first {
		t.Fatalf("expected first launch to be true initially")
	}

	if err := s.MarkFirstLaunchComplete(); err != nil {
		t.Fatalf("MarkFirstLaunchComplete: %v", err)
	}

	first, err = s.IsFirstLaunch()
	if err != nil {
		t.Fatalf("IsFirstLaunch: %v", err)
	}
	if first {
		t.Fatalf("expected first launch to be false after marking complete")
	}
}
