package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Best(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	best, err := s.Best(ctx, "mira")
	require.NoError(t, err)
	assert.Zero(t, best)

	require.NoError(t, s.Submit(ctx, NewEntry("mira", 7, 1, time.Minute)))
	require.NoError(t, s.Submit(ctx, NewEntry("mira", 4, 1, time.Minute)))
	require.NoError(t, s.Submit(ctx, NewEntry("jonas", 30, 4, time.Minute)))

	best, err = s.Best(ctx, "mira")
	require.NoError(t, err)
	assert.Equal(t, 7, best)
}

func TestMemoryStore_Top(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, score := range []int{5, 20, 11, 20} {
		require.NoError(t, s.Submit(ctx, NewEntry("p", score, 1, 0)))
	}

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []int{20, 20, 11}, []int{top[0].Score, top[1].Score, top[2].Score})

	all, err := s.Top(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryStore_CopiesEntries(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	e := NewEntry("mira", 3, 1, 0)
	require.NoError(t, s.Submit(ctx, e))

	e.Score = 99
	top, err := s.Top(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, top[0].Score)

	top[0].Score = 50
	best, err := s.Best(ctx, "mira")
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}

func TestNewEntry(t *testing.T) {
	a := NewEntry("mira", 3, 1, time.Second)
	b := NewEntry("mira", 3, 1, time.Second)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "mira", a.PlayerName)
	assert.False(t, a.CreatedAt.IsZero())
}

var _ HighscoreStore = (*MemoryStore)(nil)
var _ HighscoreStore = (*PostgresStore)(nil)
