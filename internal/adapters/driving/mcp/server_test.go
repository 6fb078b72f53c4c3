package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	srv, err := NewServer(&Ports{
		Ask:       &mockAskService{},
		Retrieval: &mockRetrievalService{},
		Guard:     &mockGuardService{},
	})

	require.NoError(t, err)
	assert.NotNil(t, srv)
	assert.NotNil(t, srv.server)
}

func TestNewServer_MissingAskService(t *testing.T) {
	srv, err := NewServer(&Ports{
		Retrieval: &mockRetrievalService{},
		Guard:     &mockGuardService{},
	})

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrMissingAskService)
}

func TestNewServer_MissingRetrievalService(t *testing.T) {
	srv, err := NewServer(&Ports{
		Ask:   &mockAskService{},
		Guard: &mockGuardService{},
	})

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrMissingRetrievalService)
}

func TestNewServer_MissingGuardService(t *testing.T) {
	srv, err := NewServer(&Ports{
		Ask:       &mockAskService{},
		Retrieval: &mockRetrievalService{},
	})

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrMissingGuardService)
}

func TestPortsValidate(t *testing.T) {
	ports := &Ports{
		Ask:       &mockAskService{},
		Retrieval: &mockRetrievalService{},
		Guard:     &mockGuardService{},
	}

	assert.NoError(t, ports.Validate())
}
