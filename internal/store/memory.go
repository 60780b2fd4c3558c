package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore implements HighscoreStore in process memory.
type MemoryStore struct {
	entries []*Entry
	mu      sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Best(_ context.Context, playerName string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	best := 0
	for _, e := range s.entries {
		if e.PlayerName == playerName {
			best = max(best, e.Score)
		}
	}
	return best, nil
}

func (s *MemoryStore) Submit(_ context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.entries = append(s.entries, &cp)
	return nil
}

func (s *MemoryStore) Top(_ context.Context, n int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := slices.Clone(s.entries)
	slices.SortStableFunc(sorted, func(a, b *Entry) int {
		return b.Score - a.Score
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	out := make([]*Entry, len(sorted))
	for i, e := range sorted {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
