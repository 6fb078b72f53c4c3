// Package memory provides an in-memory corpus store, used by tests
// and for seeding the SQLite backend.
package memory

import (
	"context"
	"sync"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is an in-memory implementation of driven.CorpusStore.
type Store struct {
	mu       sync.RWMutex
	passages []domain.Passage
}

// NewStore creates a store holding the given passages in order.
func NewStore(passages []domain.Passage) *Store {
	s := &Store{passages: make([]domain.Passage, len(passages))}
	copy(s.passages, passages)
	return s
}

// All returns every passage in insertion order.
func (s *Store) All(_ context.Context) ([]domain.Passage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Passage, len(s.passages))
	copy(out, s.passages)
	return out, nil
}

// Count returns the number of passages.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.passages), nil
}

// Append adds a passage at the end of the corpus order.
func (s *Store) Append(p domain.Passage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passages = append(s.passages, p)
}
