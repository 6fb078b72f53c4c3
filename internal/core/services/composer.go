package services

import (
	"fmt"
	"strings"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
	"github.com/vedanta-labs/vichara-cli/internal/logger"
)

// Ensure ComposerService implements the interface.
var _ driving.ComposerService = (*ComposerService)(nil)

// ComposerService assembles retrieved passages into a templated
// Answer. It is deterministic: the same query and passages always
// produce the same answer, and it has no side effects.
type ComposerService struct{}

// NewComposerService creates a new answer composer.
func NewComposerService() *ComposerService {
	return &ComposerService{}
}

// Compose builds the structured answer. Options and trade-offs are
// fixed template text regardless of what was retrieved. The mean
// similarity score doubles as a rough confidence signal and selects
// the recommendation variant; an empty passage slice is valid and
// yields the low-confidence shape.
func (s *ComposerService) Compose(query string, passages []domain.RetrievedPassage) domain.Answer {
	principles := make([]string, 0, len(passages))
	citations := make([]string, 0, len(passages))
	for _, p := range passages {
		principles = append(principles, fmt.Sprintf("- From %s: _%s_ — “%s”",
			p.Passage.Source, p.Passage.ThemeLabel(), p.Passage.Text))
		citations = append(citations, p.Citation())
	}

	mean := meanScore(passages)
	logger.Debug("composer: %d passages, mean score %.4f", len(passages), mean)

	recommendation := domain.RecommendationConfident
	if mean < domain.ConfidenceThreshold {
		recommendation = domain.RecommendationUncertain
	}

	// Copies, not the package-level slices: the Answer is owned by the
	// caller and must not be able to mutate the template text.
	options := make([]string, len(domain.CannedOptions))
	copy(options, domain.CannedOptions)
	tradeoffs := make([]string, len(domain.CannedTradeoffs))
	copy(tradeoffs, domain.CannedTradeoffs)

	return domain.Answer{
		Context:        strings.TrimSpace(query),
		Principles:     principles,
		Options:        options,
		Tradeoffs:      tradeoffs,
		Recommendation: recommendation,
		Confidence:     fmt.Sprintf("%.2f", mean),
		Citations:      citations,
	}
}

// meanScore averages the similarity scores; 0.0 for no passages.
func meanScore(passages []domain.RetrievedPassage) float64 {
	if len(passages) == 0 {
		return 0.0
	}
	var sum float64
	for _, p := range passages {
		sum += p.Score
	}
	return sum / float64(len(passages))
}
