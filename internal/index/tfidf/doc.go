// Package tfidf implements the driven.SimilarityIndex port with a
// term frequency-inverse document frequency vector space and cosine
// similarity scoring.
//
// The index is built once from the ordered corpus text sequence and is
// immutable afterwards. All vectors are L2-normalised at build time, so
// scoring a query is a sparse dot product over its terms' posting
// lists. Accumulation walks query terms in sorted order, which keeps
// repeated searches bit-for-bit identical.
package tfidf
