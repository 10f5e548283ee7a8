package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	// ErrNotCompliant is returned by validate when the layout has violations.
	// The report already explains them, so Execute does not print it.
	ErrNotCompliant = errors.New("package layout is not compliant")

	// ErrUsage is returned when no known subcommand was given.
	ErrUsage = errors.New("usage")
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "pds-skeleton",
		Short: "Check a package root against the standard skeleton",
		Long: "pds-skeleton validates that a package root uses the standard top-level names " +
			"(bin/, config/, docs/, public/, resources/, src/, tests/, CHANGELOG, CONTRIBUTING, LICENSE, README) " +
			"and can scaffold the missing ones.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printAvailableCommands(cmd)
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
			}
			return fmt.Errorf("%w: no command given", ErrUsage)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

func printAvailableCommands(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available commands:")
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() {
			continue
		}
		fmt.Fprintf(out, "pds-skeleton %s\n", sub.Name())
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. Errors other than ErrNotCompliant are printed to
// stderr; the caller only decides the exit status.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, ErrNotCompliant) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
