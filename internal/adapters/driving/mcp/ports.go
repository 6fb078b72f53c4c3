package mcp

import (
	"github.com/vedanta-labs/vichara-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask runs the full question pipeline.
	Ask driving.AskService

	// Retrieval exposes raw passage retrieval.
	Retrieval driving.RetrievalService

	// Guard screens queries before raw retrieval. The ask pipeline
	// carries its own guard; this one covers the retrieve tool so the
	// safety filter applies to every tool call.
	Guard driving.GuardService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	if p.Guard == nil {
		return ErrMissingGuardService
	}
	return nil
}
