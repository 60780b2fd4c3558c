package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -destination=./mocks/highscore_store_mock.go -package=mocks . HighscoreStore

// Entry is one finished hunt.
type Entry struct {
	ID         string        `json:"id"`
	PlayerName string        `json:"player_name"`
	Score      int           `json:"score"`
	Level      int           `json:"level"`
	Duration   time.Duration `json:"duration"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewEntry creates an entry stamped with a fresh ID and the current time.
func NewEntry(playerName string, score, level int, duration time.Duration) *Entry {
	return &Entry{
		ID:         uuid.New().String(),
		PlayerName: playerName,
		Score:      score,
		Level:      level,
		Duration:   duration,
		CreatedAt:  time.Now(),
	}
}

// HighscoreStore defines the interface for persistent highscore storage.
type HighscoreStore interface {
	// Best returns the player's best score, or 0 when the player has none.
	Best(ctx context.Context, playerName string) (int, error)
	// Submit records a finished hunt.
	Submit(ctx context.Context, entry *Entry) error
	// Top returns the n best entries, highest score first.
	Top(ctx context.Context, n int) ([]*Entry, error)
	// Close releases storage resources.
	Close() error
}
