package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slicewrap-generator/internal/diagnostic"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
}

// newRootCommand creates the root command for the slicewrap-generator CLI.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "slicewrap-generator",
		Short: "Generate transparent newtype wrappers around strings and slices",
		Long: `slicewrap-generator expands wrapper declarations into full Go source:
a layout-guarded newtype over a string or slice, package-private
constructors, sequence accessors, optional ownership-container
conversions, and (for text wrappers) comparison and formatting helpers.

Declarations come from //slicewrap:wrap directives on type declarations
or from a YAML manifest.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newGenCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newListCommand(opts))

	return cmd
}

// printDiagnostics renders warnings and errors to the command's error
// stream. Errors additionally surface through the returned error of the
// command itself.
func printDiagnostics(cmd *cobra.Command, diags diagnostic.Diagnostics) {
	out := cmd.ErrOrStderr()

	for _, w := range diags.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}

	for _, e := range diags.Errors {
		fmt.Fprintf(out, "error: %s\n", e)
	}
}

// patternsOrDefault returns the package patterns to scan, defaulting to the
// current module tree.
func patternsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"./..."}
	}

	return args
}
