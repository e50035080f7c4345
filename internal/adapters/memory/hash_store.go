package memory

import (
	"context"
	"maps"
	"sync"
)

// HashStore keeps hashes in process memory.
type HashStore struct {
	mu     sync.RWMutex
	hashes map[string]map[string]string
}

func (s *HashStore) Get(_ context.Context, key, field string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.hashes[key][field]
	return v, ok, nil
}

func (s *HashStore) Set(_ context.Context, key, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]string)
		s.hashes[key] = h
	}
	h[field] = value
	return nil
}

func (s *HashStore) GetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.hashes[key]), nil
}

func (s *HashStore) SetAll(_ context.Context, key string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(values) == 0 {
		delete(s.hashes, key)
		return nil
	}
	s.hashes[key] = maps.Clone(values)
	return nil
}

func NewHashStore() *HashStore {
	return &HashStore{hashes: make(map[string]map[string]string)}
}
