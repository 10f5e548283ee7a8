package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pds-go/skeleton/internal/domain"
)

const (
	rulesURI  = "skeleton://rules"
	reportURI = "skeleton://report"
)

func registerResources(s *server.MCPServer, projectPath string, logger *slog.Logger) {
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Skeleton Rules",
			mcplib.WithResourceDescription("Categories with their canonical names, synonyms and severity when absent"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	s.AddResource(
		mcplib.NewResource(
			reportURI,
			"Validation Report",
			mcplib.WithResourceDescription("Current skeleton validation report for the package root"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath, logger),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(rulesURI, domain.Rules())
	}
}

func handleReportResource(projectPath string, logger *slog.Logger) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newValidateService(logger).Validate(ctx, projectPath)
		if err != nil {
			return nil, fmt.Errorf("validation failed: %w", err)
		}
		return jsonResource(reportURI, report)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
