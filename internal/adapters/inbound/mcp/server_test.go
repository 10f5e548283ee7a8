package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/pds-go/skeleton/internal/adapters/inbound/mcp"
)

func TestNewSkeletonMCPServer(t *testing.T) {
	s := mcpadapter.NewSkeletonMCPServer(".", nil)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewSkeletonMCPServer(".", nil)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{"skeleton_validate", "skeleton_generate"}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}
