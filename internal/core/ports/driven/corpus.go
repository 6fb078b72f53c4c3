package driven

import (
	"context"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

// CorpusStore provides access to the curated passage corpus.
// The corpus is read once at startup; stores are never written to
// afterwards during normal operation.
//
// Order matters: All must return passages in a stable corpus order,
// because a passage's position is the correlation key the similarity
// index uses to map scores back to metadata.
type CorpusStore interface {
	// All returns every passage in corpus order.
	All(ctx context.Context) ([]domain.Passage, error)

	// Count returns the number of passages in the corpus.
	Count(ctx context.Context) (int, error)
}
