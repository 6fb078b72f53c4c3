package services

import (
	"strings"

	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure GuardService implements the interface.
var _ driving.GuardService = (*GuardService)(nil)

// riskKeywords is the fixed list the safety filter matches against.
// It is a blunt, auditable gate, not a classifier: over-blocking is an
// accepted trade-off, and extending it means editing this list.
var riskKeywords = []string{
	"medical", "diagnose", "law", "illegal", "violence", "self-harm",
	"weapon", "suicide", "harm yourself", "attack", "revenge", "hack",
	"exploit",
}

// GuardService screens questions for high-risk topics before the
// retrieval pipeline runs.
type GuardService struct {
	keywords []string
}

// NewGuardService creates a guard with the built-in keyword list.
func NewGuardService() *GuardService {
	return &GuardService{keywords: riskKeywords}
}

// IsRisky reports whether the query contains any risk keyword,
// matched case-insensitively as a substring. Pure function.
func (s *GuardService) IsRisky(query string) bool {
	ql := strings.ToLower(query)
	for _, kw := range s.keywords {
		if strings.Contains(ql, kw) {
			logger.Debug("guard: query matched keyword %q", kw)
			return true
		}
	}
	return false
}

// Keywords returns a copy of the active keyword list, for display.
func (s *GuardService) Keywords() []string {
	out := make([]string, len(s.keywords))
	copy(out, s.keywords)
	return out
}
