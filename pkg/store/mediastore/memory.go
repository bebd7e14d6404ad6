package mediastore

import (
	"context"
	"sync"
)

// MemoryMediaStore is a map backed MediaStore for testing. It records keys
// in insertion order so tests can assert on upload ordering.
type MemoryMediaStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	keys    []string
}

var _ MediaStore = (*MemoryMediaStore)(nil)

func NewMemoryMediaStore() *MemoryMediaStore {
	return &MemoryMediaStore{objects: map[string][]byte{}}
}

// Put implements MediaStore.
func (m *MemoryMediaStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.objects[key] = data
	return nil
}

// URL implements MediaStore.
func (m *MemoryMediaStore) URL(key string) string {
	return "memory://" + key
}

// Get returns the stored bytes for key.
func (m *MemoryMediaStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

// Keys returns the stored keys in insertion order.
func (m *MemoryMediaStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of stored objects.
func (m *MemoryMediaStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
