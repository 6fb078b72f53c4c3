package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService runs the full question pipeline: validate the query,
// screen it through the guard, retrieve similar passages, compose the
// answer. Presentation adapters call this and render the result.
type AskService struct {
	guard     driving.GuardService
	retrieval driving.RetrievalService
	composer  driving.ComposerService
}

// NewAskService creates the pipeline service from its collaborators.
func NewAskService(
	guard driving.GuardService,
	retrieval driving.RetrievalService,
	composer driving.ComposerService,
) *AskService {
	return &AskService{
		guard:     guard,
		retrieval: retrieval,
		composer:  composer,
	}
}

// Ask answers one question. A blank query returns domain.ErrEmptyQuery.
// A query blocked by the guard returns domain.ErrRiskyQuery before any
// retrieval or composition runs; callers must show the fixed refusal
// message rather than anything derived from the query.
func (s *AskService) Ask(ctx context.Context, query string, opts domain.AskOptions) (*domain.Answer, error) {
	logger.Section("Ask Pipeline")

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("rejecting blank query")
		return nil, domain.ErrEmptyQuery
	}

	if s.guard.IsRisky(query) {
		logger.Info("query blocked by safety filter")
		return nil, domain.ErrRiskyQuery
	}

	k := opts.TopK
	if k < 1 {
		k = domain.DefaultTopK
	}

	passages, err := s.retrieval.Retrieve(ctx, query, k)
	if err != nil {
		return nil, fmt.Errorf("retrieve: %w", err)
	}

	answer := s.composer.Compose(query, passages)
	logger.Info("answer composed: confidence %s, %d citations", answer.Confidence, len(answer.Citations))

	return &answer, nil
}
