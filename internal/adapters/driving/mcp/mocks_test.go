package mcp

import (
	"context"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
)

type mockAskService struct {
	answer *domain.Answer
	err    error

	lastQuery string
	lastOpts  domain.AskOptions
}

var _ driving.AskService = (*mockAskService)(nil)

func (m *mockAskService) Ask(_ context.Context, query string, opts domain.AskOptions) (*domain.Answer, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

type mockRetrievalService struct {
	results []domain.RetrievedPassage
	err     error

	lastQuery string
	lastK     int
}

var _ driving.RetrievalService = (*mockRetrievalService)(nil)

func (m *mockRetrievalService) Retrieve(_ context.Context, query string, k int) ([]domain.RetrievedPassage, error) {
	m.lastQuery = query
	m.lastK = k
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockRetrievalService) CorpusSize() int {
	return len(m.results)
}

type mockGuardService struct {
	risky bool
}

var _ driving.GuardService = (*mockGuardService)(nil)

func (m *mockGuardService) IsRisky(_ string) bool {
	return m.risky
}
