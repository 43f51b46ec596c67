package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is an in-process substrate used in tests and when no
// durable backend is reachable (headless mode). Data does not survive a
// process restart.
type MemoryAdapter struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{records: make(map[string]string)}
}

func (m *MemoryAdapter) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	return value, ok, nil
}

func (m *MemoryAdapter) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = value
	return nil
}
