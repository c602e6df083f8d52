package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session pointer in process memory. Used by tests
// and the CLI; the slot does not survive restarts.
type MemoryStore struct {
	mu  sync.RWMutex
	id  string
	set bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set overwrites the pointer. Last write wins.
func (s *MemoryStore) Set(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
	s.set = true
	return nil
}

// Get returns the pointer, ok=false when the slot is empty.
func (s *MemoryStore) Get(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return "", false, nil
	}
	return s.id, true, nil
}

// Clear empties the slot.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = ""
	s.set = false
	return nil
}
