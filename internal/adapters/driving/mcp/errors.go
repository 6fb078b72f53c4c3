// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Vichara. It lets AI assistants ask ethical questions against the local
// corpus through the same gated pipeline the CLI uses.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")

// ErrMissingGuardService is returned when the guard service is not provided.
var ErrMissingGuardService = errors.New("mcp: guard service is required")
