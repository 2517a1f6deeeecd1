package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/samuelhe52/Gomoku/internal/board"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
)

// Difficulty maps to a fixed engine search depth; spec §6's
// Engine::new(engine_color, max_depth) never changes depth mid-search, so
// difficulty is only ever consulted when starting a new game.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// SearchDepth returns the fixed max_depth an engine should use for d.
func (d Difficulty) SearchDepth() int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 9
	default:
		return 7
	}
}

// UserPreferences stores user settings. PlayerColor is the color the human
// plays; Black always moves first regardless (board.Black).
type UserPreferences struct {
	Username     string     `json:"username"`
	Difficulty   Difficulty `json:"difficulty"`
	PlayerColor  board.Cell `json:"player_color"`
	SoundEnabled bool       `json:"sound_enabled"`
	LastPlayed   time.Time  `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:     "Player",
		Difficulty:   DifficultyMedium,
		PlayerColor:  board.Black,
		SoundEnabled: true,
		LastPlayed:   time.Now(),
	}
}

// GameStats stores cumulative game statistics across sessions.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Draws          int            `json:"draws"`
	WinsByDiff     map[string]int `json:"wins_by_difficulty"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{WinsByDiff: make(map[string]int)}
}

// GameResult represents the outcome of one completed game, for RecordGame.
type GameResult struct {
	Won        bool
	Draw       bool
	Difficulty Difficulty
	Duration   time.Duration
}

// Storage wraps BadgerDB for persistent preferences/stats storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if absent) the BadgerDB database under the
// platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the underlying database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch reports whether this is the application's first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks first-launch setup as done.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences, stamping LastPlayed with now.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if unset.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returning empty stats if unset.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame loads current stats, folds in result, and saves.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	diffKey := "medium"
	switch result.Difficulty {
	case DifficultyEasy:
		diffKey = "easy"
	case DifficultyHard:
		diffKey = "hard"
	}

	switch {
	case result.Draw:
		stats.Draws++
		stats.CurrentStreak = 0
	case result.Won:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByDiff[diffKey]++
	default:
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// WinRate returns the win rate as a percentage (0-100).
func (s *GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}
