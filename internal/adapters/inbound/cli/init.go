package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pds-go/skeleton/internal/adapters/outbound/config"
	"github.com/pds-go/skeleton/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [root]",
		Short: "Generate a " + config.FileName + " configuration file",
		Long:  "Create a " + config.FileName + " with the default output format and commented examples for ignore patterns and generate.skip.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(rootArg(args))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			out := domain.OutputFormat(output)
			if err := (domain.ProjectConfig{Output: out}).Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(out)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", string(domain.OutputText), "Default output format (text, table, json)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+config.FileName)

	return cmd
}

func generateConfig(out domain.OutputFormat) string {
	if out == "" {
		out = domain.OutputText
	}

	var b strings.Builder
	b.WriteString("# pds-skeleton configuration\n\n")
	fmt.Fprintf(&b, "output: %s\n\n", out)

	b.WriteString("# Entries matching these doublestar patterns are left out of the listing.\n")
	b.WriteString("# Directory names end in a slash.\n")
	b.WriteString("# ignore:\n#   - \"vendor/\"\n#   - \"node_modules/\"\n\n")

	b.WriteString("# Categories that generate never creates. Valid keys:\n")
	for _, r := range domain.Rules() {
		fmt.Fprintf(&b, "#   %s\n", r.Category.Slug())
	}
	b.WriteString("# generate:\n#   skip:\n#     - public-web-server-files\n")

	return b.String()
}
