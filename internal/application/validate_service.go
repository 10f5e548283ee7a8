package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/pds-go/skeleton/internal/domain"
)

// ValidateService orchestrates a validation run:
// load config → list root → match every rule → stamp metadata.
type ValidateService struct {
	lister       domain.ListingProvider
	configLoader domain.ConfigLoader
	git          domain.GitInfo
	logger       *slog.Logger
	now          func() time.Time
}

// NewValidateService wires a ValidateService. git may be nil; logger may be
// nil, in which case nothing is logged.
func NewValidateService(
	lister domain.ListingProvider,
	configLoader domain.ConfigLoader,
	git domain.GitInfo,
	logger *slog.Logger,
) *ValidateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ValidateService{
		lister:       lister,
		configLoader: configLoader,
		git:          git,
		logger:       logger,
		now:          time.Now,
	}
}

// LoadConfig reads the project config for root.
func (s *ValidateService) LoadConfig(root string) (domain.ProjectConfig, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Validate loads the config for root and validates it.
func (s *ValidateService) Validate(ctx context.Context, root string) (*domain.Report, error) {
	cfg, err := s.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return s.ValidateWithConfig(ctx, root, cfg)
}

// ValidateWithConfig validates root using an already loaded config.
func (s *ValidateService) ValidateWithConfig(ctx context.Context, root string, cfg domain.ProjectConfig) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	listing, err := s.lister.List(absRoot, cfg.Ignore...)
	if err != nil {
		return nil, fmt.Errorf("listing root: %w", err)
	}
	s.logger.Debug("listed root", "root", absRoot, "entries", len(listing))

	report := domain.Validate(listing)
	report.Root = absRoot
	report.Timestamp = s.now()

	if s.git != nil {
		if hash, err := s.git.CommitHash(absRoot); err == nil {
			report.CommitHash = hash
		} else {
			s.logger.Debug("no commit hash", "root", absRoot, "error", err)
		}
	}

	for _, res := range report.Results {
		s.logger.Debug("category",
			"category", res.Category.Slug(),
			"state", res.State.String(),
			"expected", res.Expected,
			"actual", res.Actual,
		)
	}
	s.logger.Info("validated", "root", absRoot, "compliant", report.Compliant, "violations", len(report.Violations()))

	return report, nil
}
