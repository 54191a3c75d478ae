package storage

import (
	"context"
	"sync"
)

type memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryRepository returns a process-local store, used when no durable
// backend is configured and in tests.
func NewMemoryRepository() Repository {
	return &memory{data: make(map[string]string)}
}

func (m *memory) GetMany(_ context.Context, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *memory) SetMany(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}
