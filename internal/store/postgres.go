package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS highscores (
    id TEXT PRIMARY KEY,
    player_name TEXT NOT NULL,
    score INTEGER NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    duration_ms BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_highscores_player_name ON highscores(player_name);
CREATE INDEX IF NOT EXISTS idx_highscores_score ON highscores(score DESC);
`

// PostgresStore implements HighscoreStore using PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL and initializes the schema.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// Best returns the player's best score, or 0 when the player has none.
func (s *PostgresStore) Best(ctx context.Context, playerName string) (int, error) {
	var best int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(score), 0) FROM highscores WHERE player_name = $1`, playerName).Scan(&best)
	return best, err
}

// Submit records a finished hunt.
func (s *PostgresStore) Submit(ctx context.Context, e *Entry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO highscores (id, player_name, score, level, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.PlayerName, e.Score, e.Level, e.Duration.Milliseconds(), e.CreatedAt)
	return err
}

// Top returns the n best entries, highest score first.
func (s *PostgresStore) Top(ctx context.Context, n int) ([]*Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, player_name, score, level, duration_ms, created_at
		 FROM highscores ORDER BY score DESC, created_at ASC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEntry)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func scanEntry(row pgx.CollectableRow) (*Entry, error) {
	var e Entry
	var durationMs int64
	if err := row.Scan(&e.ID, &e.PlayerName, &e.Score, &e.Level, &durationMs, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Duration = time.Duration(durationMs) * time.Millisecond
	return &e, nil
}
