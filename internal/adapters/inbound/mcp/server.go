package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// NewSkeletonMCPServer creates an MCP server with the pds-skeleton tools and
// resources registered. projectPath is the package root to validate. logger
// may be nil.
func NewSkeletonMCPServer(projectPath string, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := server.NewMCPServer(
		"pds-skeleton",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, logger)
	registerResources(s, projectPath, logger)

	return s
}
