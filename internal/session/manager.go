package session

import (
	"log/slog"
	"sync"

	"github.com/ghosthunt/ghosthunt-server/internal/arena"
	"github.com/ghosthunt/ghosthunt-server/internal/store"
	"github.com/ghosthunt/ghosthunt-server/internal/ws"
)

// Manager manages all active sessions.
type Manager struct {
	cfg    arena.Config
	scores store.HighscoreStore

	sessions map[string]*Session // code -> session
	mu       sync.RWMutex
}

// NewManager creates a session manager. Every session runs with cfg and saves to scores.
func NewManager(cfg arena.Config, scores store.HighscoreStore) *Manager {
	return &Manager{
		cfg:      cfg,
		scores:   scores,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session for client and opens it in the background.
// The session is visible to Get at once; hunt_info follows when the highscore is loaded.
func (m *Manager) Create(client *ws.Client, playerName string) *Session {
	m.mu.Lock()
	existing := make(map[string]bool, len(m.sessions))
	for code := range m.sessions {
		existing[code] = true
	}
	code := GenerateCode(existing)
	s := New(code, playerName, client, m.cfg, m.scores)
	m.sessions[code] = s
	m.mu.Unlock()

	slog.Info("session created", "code", code, "client", client.ID, "player", playerName)

	s.Open()
	return s
}

// Get returns a session by its code.
func (m *Manager) Get(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// Remove stops and removes a session by its code.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	s, ok := m.sessions[code]
	delete(m.sessions, code)
	m.mu.Unlock()

	if !ok {
		return
	}
	s.Stop()
	slog.Info("session removed", "code", code)
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// FindByClientID finds the session owned by a client.
func (m *Manager) FindByClientID(clientID string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.ClientID() == clientID {
			return s
		}
	}
	return nil
}

// StopAll stops every session, used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for code, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, code)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
	}
}
