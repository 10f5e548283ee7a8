package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pds-go/skeleton/internal/adapters/outbound/scaffolder"
	"github.com/pds-go/skeleton/internal/adapters/outbound/tui"
	"github.com/pds-go/skeleton/internal/application"
	"github.com/pds-go/skeleton/internal/domain"
)

func newGenerateCmd() *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Create placeholders for missing skeleton items",
		Long:  "Create an empty directory or <NAME>.md file for every category that is absent from the package root. Incorrectly named items are left alone.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args)
			logger := loggerFrom(cmd.Context())

			svc := application.NewGenerateService(newValidateService(logger), scaffolder.New(), logger)
			result, err := svc.Generate(cmd.Context(), root, domain.GenerateOptions{DryRun: dryRun})

			if result != nil {
				if jsonOutput {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(result); encErr != nil {
						return encErr
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerate(result))
				}
			}

			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without touching the filesystem")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}
