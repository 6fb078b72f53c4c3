package driven

import "context"

// SimilarityIndex ranks corpus passages against a query string.
// Built once from the full ordered corpus text sequence and never
// mutated afterwards; corpus changes require a full rebuild.
type SimilarityIndex interface {
	// Search scores the query against every indexed passage and
	// returns the top-k hits ranked by score descending, ties broken
	// by corpus position. Returns at most min(k, corpus size) hits.
	// A query sharing no vocabulary with the corpus yields hits with
	// score 0.0, not an error.
	Search(ctx context.Context, query string, k int) ([]IndexHit, error)

	// Size returns the number of indexed passages.
	Size() int
}

// IndexHit is a single ranked result from the similarity index.
type IndexHit struct {
	// Position is the passage's index in the ordered corpus.
	Position int

	// Score is the cosine similarity in [0, 1].
	Score float64
}
