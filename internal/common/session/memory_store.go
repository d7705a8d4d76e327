package session

import (
	"context"
	"sync"
)

// MemoryStore menyimpan data di memori proses; hilang saat restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, ns, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[ns][key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, ns, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[ns] == nil {
		m.data[ns] = make(map[string]string)
	}
	m.data[ns][key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, ns, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if items, ok := m.data[ns]; ok {
		delete(items, key)
		if len(items) == 0 {
			delete(m.data, ns)
		}
	}
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, ns string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, ns)
	return nil
}

// Len jumlah namespace yang sedang tersimpan.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
