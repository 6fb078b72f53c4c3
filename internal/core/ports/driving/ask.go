package driving

import (
	"context"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

// GuardService screens questions before any retrieval happens.
type GuardService interface {
	// IsRisky reports whether the query trips the safety filter.
	// Pure function; matching is case-insensitive substring search
	// over a fixed keyword list.
	IsRisky(query string) bool
}

// RetrievalService ranks corpus passages against a question.
type RetrievalService interface {
	// Retrieve returns the top-k passages most similar to the query,
	// ranked by score descending. Returns at most min(k, corpus size)
	// passages; k below 1 is rejected with domain.ErrInvalidInput.
	Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedPassage, error)

	// CorpusSize returns the number of passages available.
	CorpusSize() int
}

// ComposerService turns retrieved passages into a structured answer.
type ComposerService interface {
	// Compose deterministically builds an Answer from the query and
	// its retrieved passages. An empty passage slice is a valid input
	// and yields the low-confidence answer shape.
	Compose(query string, passages []domain.RetrievedPassage) domain.Answer
}

// AskService is the full question pipeline: validate, guard, retrieve,
// compose. This is the primary entry point for presentation adapters.
type AskService interface {
	// Ask answers one question. Blank queries return
	// domain.ErrEmptyQuery; queries blocked by the safety filter
	// return domain.ErrRiskyQuery without touching the index.
	Ask(ctx context.Context, query string, opts domain.AskOptions) (*domain.Answer, error)
}
