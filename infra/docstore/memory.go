package docstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/orioninvest/brokerage/pkg/docstore"
)

// MemoryStore is an in-memory document store used by tests and the CLI
// demo mode.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]docstore.Document

	// FailWith, when set, makes every call return the error. Simulates
	// transport failure in tests.
	FailWith error

	calls int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]docstore.Document)}
}

// Calls reports how many store operations ran, failed or not.
func (s *MemoryStore) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

func (s *MemoryStore) collection(name string) map[string]docstore.Document {
	col, ok := s.collections[name]
	if !ok {
		col = make(map[string]docstore.Document)
		s.collections[name] = col
	}
	return col
}

// Get returns the document at id, (nil, nil) when absent.
func (s *MemoryStore) Get(_ context.Context, collection, id string) (docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailWith != nil {
		return nil, s.FailWith
	}
	doc, ok := s.collection(collection)[id]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

// Set creates or fully replaces the document at id.
func (s *MemoryStore) Set(_ context.Context, collection, id string, doc docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailWith != nil {
		return s.FailWith
	}
	s.collection(collection)[id] = doc.Clone()
	return nil
}

// Update merges fields into the document at id.
func (s *MemoryStore) Update(_ context.Context, collection, id string, fields docstore.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.FailWith != nil {
		return s.FailWith
	}
	doc, ok := s.collection(collection)[id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, docstore.ErrNotFound)
	}
	merged := doc.Clone()
	for k, v := range fields {
		merged[k] = v
	}
	s.collection(collection)[id] = merged
	return nil
}
