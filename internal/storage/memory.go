package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory backend for tests and ephemeral sessions.
type MemoryKV struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailPuts makes every PutAll return this error, for exercising
	// commit-failure paths in tests.
	FailPuts error
}

// NewMemoryKV returns an empty in-memory backend.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{docs: make(map[string][]byte)}
}

// Get implements KV.
func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), doc...), true, nil
}

// PutAll implements KV.
func (m *MemoryKV) PutAll(_ context.Context, docs map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailPuts != nil {
		return m.FailPuts
	}
	for key, doc := range docs {
		m.docs[key] = append([]byte(nil), doc...)
	}
	return nil
}

// Close implements KV.
func (m *MemoryKV) Close() error {
	return nil
}

// Corrupt overwrites a stored document with unparsable bytes, for
// fail-soft load tests.
func (m *MemoryKV) Corrupt(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = []byte("{not json")
}
