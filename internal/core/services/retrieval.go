package services

import (
	"context"
	"fmt"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService owns the loaded corpus and its similarity index.
// Both are built once at startup and never mutated, so Retrieve is a
// pure read and safe for concurrent callers without locking.
type RetrievalService struct {
	passages []domain.Passage
	index    driven.SimilarityIndex
}

// NewRetrievalService creates a retrieval service over an already
// loaded corpus and an index built from the same ordered sequence.
// The invariant is positional: passages[i] must be the passage whose
// text was indexed at position i.
func NewRetrievalService(passages []domain.Passage, index driven.SimilarityIndex) (*RetrievalService, error) {
	if index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if len(passages) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	if index.Size() != len(passages) {
		return nil, fmt.Errorf("index covers %d passages, corpus has %d: %w",
			index.Size(), len(passages), domain.ErrInvalidInput)
	}

	return &RetrievalService{
		passages: passages,
		index:    index,
	}, nil
}

// Retrieve returns the top-k passages for the query, ranked by
// similarity descending. A query with no vocabulary overlap still
// returns k passages, all scored 0.0; low confidence is communicated
// downstream by the composer, not by an empty result.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedPassage, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d: %w", k, domain.ErrInvalidInput)
	}

	logger.Section("Retrieval")
	logger.Debug("query: %q, k: %d", query, k)

	hits, err := s.index.Search(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	results := make([]domain.RetrievedPassage, len(hits))
	for i, hit := range hits {
		results[i] = domain.RetrievedPassage{
			Score:   hit.Score,
			Passage: s.passages[hit.Position],
		}
		logger.Debug("hit %d: id=%s score=%.4f", i, results[i].Passage.ID, hit.Score)
	}

	return results, nil
}

// CorpusSize returns the number of passages available for retrieval.
func (s *RetrievalService) CorpusSize() int {
	return len(s.passages)
}
