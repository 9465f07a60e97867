package sessionstore

import (
	"context"
	"sync"

	"parking-portal/internal/domain/session"
)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Current(_ context.Context) (session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return session.FromValues(m.values), nil
}

func (m *MemoryStore) Replace(_ context.Context, next session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !next.IsAuthenticated() {
		m.values = map[string]string{}
		return nil
	}
	m.values = next.Values()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]string{}
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// Set writes a raw key, for tests that need a partial record.
func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
