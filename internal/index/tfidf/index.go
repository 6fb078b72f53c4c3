package tfidf

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driven"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.SimilarityIndex = (*Index)(nil)

// posting is one document's normalised weight for a term.
type posting struct {
	doc    int
	weight float64
}

// Index is an immutable TF-IDF similarity index over an ordered text
// sequence. Safe for concurrent use: nothing is mutated after New.
type Index struct {
	size     int
	idf      map[string]float64
	postings map[string][]posting
}

// New builds an index from the ordered corpus texts. Position i in
// texts must correspond to position i in the caller's metadata list;
// hits are reported by position. Fails fast on an empty corpus.
func New(texts []string) (*Index, error) {
	if len(texts) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	// Count terms per document and document frequency per term.
	termCounts := make([]map[string]int, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		counts := make(map[string]int)
		for _, tok := range Tokenize(text) {
			counts[tok]++
		}
		termCounts[i] = counts
		for term := range counts {
			df[term]++
		}
	}

	// Smoothed inverse document frequency: ln((1+n)/(1+df)) + 1.
	n := float64(len(texts))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	// Build L2-normalised posting lists. The outer loop runs in corpus
	// order, so each term's postings are already sorted by position.
	postings := make(map[string][]posting, len(df))
	for i, counts := range termCounts {
		var norm float64
		for term, c := range counts {
			w := float64(c) * idf[term]
			norm += w * w
		}
		if norm == 0 {
			// Passage had only stop-words; it stays retrievable via
			// the tie-break but can never score above zero.
			logger.Warn("passage %d has no indexable terms", i)
			continue
		}
		norm = math.Sqrt(norm)
		for term, c := range counts {
			postings[term] = append(postings[term], posting{
				doc:    i,
				weight: float64(c) * idf[term] / norm,
			})
		}
	}

	logger.Debug("tfidf index built: %d passages, %d terms", len(texts), len(idf))

	return &Index{
		size:     len(texts),
		idf:      idf,
		postings: postings,
	}, nil
}

// Size returns the number of indexed passages.
func (x *Index) Size() int {
	return x.size
}

// Search scores the query against every passage and returns the top-k
// hits by cosine similarity, descending, ties broken by corpus
// position. k larger than the corpus returns everything; no padding.
func (x *Index) Search(_ context.Context, query string, k int) ([]driven.IndexHit, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1, got %d: %w", k, domain.ErrInvalidInput)
	}

	scores := x.score(query)

	if k > x.size {
		k = x.size
	}

	// Rank positions by score descending; SliceStable keeps the
	// corpus-order tie-break deterministic.
	order := make([]int, x.size)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	hits := make([]driven.IndexHit, k)
	for i := 0; i < k; i++ {
		hits[i] = driven.IndexHit{
			Position: order[i],
			Score:    scores[order[i]],
		}
	}

	return hits, nil
}

// score computes the cosine similarity of the query against every
// passage. Out-of-vocabulary query terms are ignored; a query with no
// indexed vocabulary yields all zeros.
func (x *Index) score(query string) []float64 {
	scores := make([]float64, x.size)

	counts := make(map[string]int)
	for _, tok := range Tokenize(query) {
		if _, known := x.idf[tok]; known {
			counts[tok]++
		}
	}
	if len(counts) == 0 {
		return scores
	}

	var norm float64
	for term, c := range counts {
		w := float64(c) * x.idf[term]
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return scores
	}

	// Accumulate in sorted term order so repeated searches produce
	// identical floating-point results.
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for _, term := range terms {
		qw := float64(counts[term]) * x.idf[term] / norm
		for _, p := range x.postings[term] {
			scores[p.doc] += qw * p.weight
		}
	}

	return scores
}
