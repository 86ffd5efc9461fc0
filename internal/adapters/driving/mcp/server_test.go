package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("creates server with valid ports", func(t *testing.T) {
		server, err := NewServer(&Ports{Engine: &mockEngine{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("rejects missing engine", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		assert.Nil(t, server)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingEngine)
	})
}
