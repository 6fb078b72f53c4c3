package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the question was blank. No retrieval is
	// attempted; the caller should prompt for input.
	ErrEmptyQuery = errors.New("empty query")

	// ErrRiskyQuery indicates the safety filter blocked the question.
	// Retrieval and composition must not run; present RefusalMessage.
	ErrRiskyQuery = errors.New("query blocked by safety filter")

	// ErrEmptyCorpus indicates there were no passages to index.
	// The similarity index fails fast rather than serving nothing.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrCorpusMissing indicates the corpus source does not exist.
	// This is fatal at startup; the system must not run with a
	// silently absent corpus.
	ErrCorpusMissing = errors.New("corpus source missing")

	// ErrIndexUnavailable indicates the similarity index is not configured.
	ErrIndexUnavailable = errors.New("similarity index unavailable")
)
