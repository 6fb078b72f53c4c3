// Package domain defines the core business entities for Vichara.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Passage: A curated text excerpt with attribution metadata
//   - RetrievedPassage: A passage paired with its per-query similarity score
//   - Answer: The structured, templated response built from retrieved passages
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
