package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pds-go/skeleton/internal/adapters/outbound/config"
	"github.com/pds-go/skeleton/internal/adapters/outbound/gitinfo"
	"github.com/pds-go/skeleton/internal/adapters/outbound/scaffolder"
	"github.com/pds-go/skeleton/internal/adapters/outbound/scanner"
	"github.com/pds-go/skeleton/internal/application"
	"github.com/pds-go/skeleton/internal/domain"
)

const (
	toolValidate = "skeleton_validate"
	toolGenerate = "skeleton_generate"
)

func registerTools(s *server.MCPServer, projectPath string, logger *slog.Logger) {
	s.AddTool(
		mcplib.NewTool(toolValidate,
			mcplib.WithDescription("Validate the package root against the skeleton convention and return the per-category report as JSON"),
		),
		handleValidate(projectPath, logger),
	)

	s.AddTool(
		mcplib.NewTool(toolGenerate,
			mcplib.WithDescription("Create empty placeholders for every absent skeleton item and return what was created, before and after reports as JSON"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Only report what would be created")),
		),
		handleGenerate(projectPath, logger),
	)
}

func newValidateService(logger *slog.Logger) *application.ValidateService {
	return application.NewValidateService(scanner.New(), config.New(), gitinfo.New(), logger)
}

func handleValidate(projectPath string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newValidateService(logger).Validate(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleGenerate(projectPath string, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dryRun, _ := request.GetArguments()["dry_run"].(bool)

		svc := application.NewGenerateService(newValidateService(logger), scaffolder.New(), logger)
		result, err := svc.Generate(ctx, projectPath, domain.GenerateOptions{DryRun: dryRun})
		if err != nil && result == nil {
			return errorResult(fmt.Sprintf("generate failed: %v", err)), nil
		}

		res, jsonErr := jsonResult(result)
		if jsonErr != nil {
			return nil, jsonErr
		}
		// Partial failures are listed in the result; flag the call as failed.
		res.IsError = err != nil
		return res, nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
