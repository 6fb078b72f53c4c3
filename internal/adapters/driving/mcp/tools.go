package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vedanta-labs/vichara-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the ethical question or situation to get counsel on"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"number of passages to retrieve (default 3)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Blocked bool           `json:"blocked"`
	Refusal string         `json:"refusal,omitempty"`
	Answer  *domain.Answer `json:"answer,omitempty"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the query to match against corpus passages"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of passages to return (default 3)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Blocked  bool            `json:"blocked"`
	Refusal  string          `json:"refusal,omitempty"`
	Passages []PassageOutput `json:"passages"`
	Count    int             `json:"count"`
}

// PassageOutput represents a single retrieved passage.
type PassageOutput struct {
	ID      string   `json:"id"`
	Source  string   `json:"source"`
	Themes  []string `json:"themes,omitempty"`
	Passage string   `json:"passage"`
	Score   float64  `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask an ethical question and get a templated, cited answer",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Retrieve corpus passages similar to a query",
	}, s.handleRetrieve)
}

// handleAsk handles the ask tool invocation. Safety-filter refusals
// are reported as data, not as protocol errors, so assistants can
// surface the refusal message.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Ask.Ask(ctx, input.Question, domain.AskOptions{TopK: input.TopK})
	if err != nil {
		if errors.Is(err, domain.ErrRiskyQuery) {
			return nil, AskOutput{Blocked: true, Refusal: domain.RefusalMessage}, nil
		}
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer}, nil
}

// handleRetrieve handles the retrieve tool invocation. The safety
// filter runs before the index is touched, same as the ask pipeline;
// blocked queries get the refusal shape instead of passages.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	if s.ports.Guard.IsRisky(input.Query) {
		return nil, RetrieveOutput{Blocked: true, Refusal: domain.RefusalMessage}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultTopK
	}

	results, err := s.ports.Retrieval.Retrieve(ctx, input.Query, limit)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Passages: make([]PassageOutput, len(results)),
		Count:    len(results),
	}
	for i, r := range results {
		output.Passages[i] = PassageOutput{
			ID:      r.Passage.ID,
			Source:  r.Passage.Source,
			Themes:  r.Passage.Themes,
			Passage: r.Passage.Text,
			Score:   r.Score,
		}
	}

	return nil, output, nil
}
