package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryObjectStore is an in-memory implementation of ObjectStore.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	// PutErr, when set, makes every Put fail with it.
	PutErr error
}

// NewMemoryObjectStore creates a new instance of MemoryObjectStore.
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		objects: make(map[string][]byte),
	}
}

// Put stores the object bytes under key.
func (s *MemoryObjectStore) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

// PublicURL returns a stable fake URL for key.
func (s *MemoryObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("https://bucket.test/%s", key)
}

// Get returns the stored bytes for key, for assertions in tests.
func (s *MemoryObjectStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len reports how many objects have been stored.
func (s *MemoryObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
