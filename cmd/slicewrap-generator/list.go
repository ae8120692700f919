package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"slicewrap-generator/internal/analyze"
)

func newListCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list [packages]",
		Short: "List discovered wrapper declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, diags, err := analyze.Load(patternsOrDefault(args)...)
			if err != nil {
				return err
			}

			printDiagnostics(cmd, diags)

			if diags.HasErrors() {
				return errors.New("declaration errors")
			}

			out := cmd.OutOrStdout()

			for _, pkg := range pkgs {
				for _, d := range pkg.Decls {
					names := make([]string, 0, len(d.Containers))
					for _, c := range d.Containers {
						names = append(names, c.String())
					}

					containers := "-"
					if len(names) > 0 {
						containers = strings.Join(names, ",")
					}

					fmt.Fprintf(out, "%s.%s\t%s\t%s\t%s\n", pkg.Path, d.Name, d.Sequence(), containers, d.Pos)
				}

				if root.Verbose {
					fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(pkg.Decls))
				}
			}

			return nil
		},
	}
}
