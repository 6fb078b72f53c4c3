package cli

import (
	"context"
	"errors"

	"github.com/vedanta-labs/vichara-cli/internal/adapters/driven/corpus/memory"
	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/services"
	"github.com/vedanta-labs/vichara-cli/internal/index/tfidf"
)

// fixturePassages is the small corpus the command tests run against.
var fixturePassages = []domain.Passage{
	{ID: "p-1", Source: "Text One", Themes: []string{"truth", "speech"}, Text: "Speak the truth and practice virtue."},
	{ID: "p-2", Source: "Text Two", Themes: []string{"non-harm"}, Text: "Non-violence is the highest duty."},
	{ID: "p-3", Source: "Text Three", Text: "Forgiveness is the strength of the strong."},
}

// setupTestServices wires the real pipeline over the fixture corpus and
// returns a cleanup that restores the previous services.
func setupTestServices() func() {
	oldAsk := askService
	oldRetrieval := retrievalService
	oldGuard := guardService
	oldCorpus := corpusStore

	texts := make([]string, len(fixturePassages))
	for i, p := range fixturePassages {
		texts[i] = p.Text
	}

	idx, err := tfidf.New(texts)
	if err != nil {
		panic(err)
	}
	retrieval, err := services.NewRetrievalService(fixturePassages, idx)
	if err != nil {
		panic(err)
	}

	guard := services.NewGuardService()
	guardService = guard
	retrievalService = retrieval
	askService = services.NewAskService(guard, retrieval, services.NewComposerService())
	corpusStore = memory.NewStore(fixturePassages)

	return func() {
		askService = oldAsk
		retrievalService = oldRetrieval
		guardService = oldGuard
		corpusStore = oldCorpus
	}
}

// mockAskServiceError always fails, for error-path tests.
type mockAskServiceError struct{}

func (m *mockAskServiceError) Ask(_ context.Context, _ string, _ domain.AskOptions) (*domain.Answer, error) {
	return nil, errors.New("pipeline exploded")
}
