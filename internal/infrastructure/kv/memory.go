package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store, used when no Redis is configured
// and as a test double.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSaves forces Save to return SaveErr, for exercising rollback paths.
	FailSaves bool
	SaveErr   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, true, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	if s.FailSaves {
		return s.SaveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

var _ Store = (*MemoryStore)(nil)
