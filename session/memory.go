package session

import "sync"

// MemoryStore keeps the session in process memory only. It is the default
// store when no file path is configured, and the natural choice for tests.
type MemoryStore struct {
	mu sync.Mutex
	s  *Session
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Restore implements Store.
func (m *MemoryStore) Restore() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return nil
	}
	cp := *m.s
	return &cp
}

// Save implements Store.
func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	return nil
}
