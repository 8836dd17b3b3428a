package session

import (
	"sync"
	"time"
)

// MemoryStore keeps sessions in an RWMutex-guarded map. Suitable for a
// single-process deployment; the Store interface leaves room for a
// database-backed implementation without touching the handlers.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok || s.Expired(m.now()) {
		return Session{}, false
	}
	return s, true
}

func (m *MemoryStore) Put(token string, s Session) {
	if s.ExpiresAt.IsZero() && m.ttl > 0 {
		s.ExpiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
}

func (m *MemoryStore) Clear(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// RemoveExpired drops every expired session and reports how many were
// removed. Called by the sweeper.
func (m *MemoryStore) RemoveExpired() int {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}
