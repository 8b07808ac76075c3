package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the default single-node session store. Sessions expire
// lazily after the configured idle TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory store with the given idle TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the session or ErrSessionNotFound.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	s := entry.session
	return &s, nil
}

// Put stores a copy of the session and refreshes its TTL.
func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	now := m.now()
	copied := *s
	copied.UpdatedAt = now

	m.mu.Lock()
	m.sessions[s.ID] = memoryEntry{session: copied, expiresAt: now.Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// Update applies fn to the stored session and persists the result, all under
// the store lock, so concurrent updates of the same session serialize.
func (m *MemoryStore) Update(_ context.Context, id string, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := m.now()
	if now.After(entry.expiresAt) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}

	s := entry.session
	if err := fn(&s); err != nil {
		return nil, err
	}
	s.UpdatedAt = now
	m.sessions[id] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}

	copied := s
	return &copied, nil
}

// Delete removes the session if present.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}
