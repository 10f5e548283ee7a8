package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pds-go/skeleton/internal/domain"
)

// GenerateService orchestrates a scaffold run:
// validate → select absent categories → create placeholders → re-validate.
type GenerateService struct {
	validator  *ValidateService
	scaffolder domain.Scaffolder
	logger     *slog.Logger
}

func NewGenerateService(validator *ValidateService, scaffolder domain.Scaffolder, logger *slog.Logger) *GenerateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GenerateService{validator: validator, scaffolder: scaffolder, logger: logger}
}

// Generate creates placeholders for every absent category under root. With
// opts.DryRun it only reports what would be created. When some placeholders
// cannot be created the result still describes everything that was, and the
// returned error lists the failures.
func (s *GenerateService) Generate(ctx context.Context, root string, opts domain.GenerateOptions) (*domain.GenerateResult, error) {
	cfg, err := s.validator.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	before, err := s.validator.ValidateWithConfig(ctx, root, cfg)
	if err != nil {
		return nil, fmt.Errorf("validating before scaffold: %w", err)
	}

	targets := domain.ScaffoldTargets(before, cfg.SkippedCategories())
	result := &domain.GenerateResult{
		Root:    before.Root,
		DryRun:  opts.DryRun,
		Planned: targets,
		Before:  before,
	}

	if opts.DryRun || len(targets) == 0 {
		return result, nil
	}

	created, createErr := s.scaffolder.Create(before.Root, targets)
	result.Created = created
	result.Failures = domain.Failures(createErr)
	for _, a := range created {
		s.logger.Info("created", "path", a.Path, "kind", a.Kind.String())
	}
	for _, f := range result.Failures {
		s.logger.Warn("scaffold failed", "path", f.Target.Path, "error", f.Error)
	}

	after, err := s.validator.ValidateWithConfig(ctx, root, cfg)
	if err != nil {
		return result, fmt.Errorf("validating after scaffold: %w", err)
	}
	result.After = after

	if createErr != nil {
		return result, fmt.Errorf("scaffolding failed for %d of %d items: %w", len(result.Failures), len(targets), createErr)
	}
	return result, nil
}
