package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"slicewrap-generator/internal/analyze"
	"slicewrap-generator/internal/decl"
	"slicewrap-generator/internal/diagnostic"
)

func newCheckCommand(root *rootOptions) *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Validate wrapper declarations without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			var diags diagnostic.Diagnostics

			count := 0

			if manifest != "" {
				if len(args) > 0 {
					return errors.New("--manifest and package patterns are mutually exclusive")
				}

				m, err := decl.LoadManifest(manifest)
				if err != nil {
					return err
				}

				decls := m.Resolve(&diags)
				count = len(decls)

				if root.Verbose {
					fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(decls))
				}
			} else {
				pkgs, loadDiags, err := analyze.Load(patternsOrDefault(args)...)
				if err != nil {
					return err
				}

				diags = loadDiags
				for _, pkg := range pkgs {
					count += len(pkg.Decls)

					if root.Verbose {
						fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(pkg.Decls))
					}
				}
			}

			printDiagnostics(cmd, diags)

			if diags.HasErrors() {
				return fmt.Errorf("%d declaration error(s)", len(diags.Errors))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d wrapper declaration(s) ok\n", count)

			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "check a YAML manifest instead of directives")

	return cmd
}
