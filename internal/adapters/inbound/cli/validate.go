package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pds-go/skeleton/internal/adapters/outbound/config"
	"github.com/pds-go/skeleton/internal/adapters/outbound/gitinfo"
	"github.com/pds-go/skeleton/internal/adapters/outbound/scanner"
	"github.com/pds-go/skeleton/internal/adapters/outbound/tui"
	"github.com/pds-go/skeleton/internal/adapters/outbound/watcher"
	"github.com/pds-go/skeleton/internal/application"
	"github.com/pds-go/skeleton/internal/domain"
)

func newValidateService(logger *slog.Logger) *application.ValidateService {
	return application.NewValidateService(scanner.New(), config.New(), gitinfo.New(), logger)
}

func newValidateCmd() *cobra.Command {
	var (
		format string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "validate [root]",
		Short: "Check a package root against the skeleton convention",
		Long:  "List the top-level entries of the package root and report, per category, whether the canonical name, a non-canonical synonym, or nothing is present. Exits non-zero unless the layout is compliant.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			logger := loggerFrom(cmd.Context())
			svc := newValidateService(logger)

			cfg, err := svc.LoadConfig(root)
			if err != nil {
				return err
			}

			out := cfg.Output
			if format != "" {
				out = domain.OutputFormat(format)
				if err := (domain.ProjectConfig{Output: out}).Validate(); err != nil {
					return fmt.Errorf("invalid --format: %w", err)
				}
			}

			if watch {
				return runWatch(cmd, svc, root, out, logger)
			}

			report, err := svc.ValidateWithConfig(cmd.Context(), root, cfg)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if err := renderReport(cmd, report, out); err != nil {
				return err
			}
			if !report.Compliant {
				return ErrNotCompliant
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: text, table or json (default from config, else text)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate whenever a top-level entry changes")

	return cmd
}

// runWatch validates once, then again after every listing change, until the
// process is interrupted.
func runWatch(cmd *cobra.Command, svc *application.ValidateService, root string, out domain.OutputFormat, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	w, err := watcher.New(absRoot, watcher.DefaultDebounce, logger)
	if err != nil {
		return err
	}

	validateOnce := func() {
		report, err := svc.Validate(ctx, absRoot)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderWatchHeader(report.Root))
		if err := renderReport(cmd, report, out); err != nil {
			logger.Warn("rendering report", "error", err)
		}
	}

	validateOnce()
	return w.Run(ctx, validateOnce)
}

func renderReport(cmd *cobra.Command, report *domain.Report, format domain.OutputFormat) error {
	switch format {
	case domain.OutputJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case domain.OutputTable:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderTable(report))
	default:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}
	return nil
}
