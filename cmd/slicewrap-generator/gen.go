package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"slicewrap-generator/internal/analyze"
	"slicewrap-generator/internal/decl"
	"slicewrap-generator/internal/diagnostic"
	"slicewrap-generator/internal/gen"
)

// genOptions holds flags for the gen command.
type genOptions struct {
	root     *rootOptions
	Manifest string
	Output   string
}

func newGenCommand(root *rootOptions) *cobra.Command {
	opts := &genOptions{root: root}

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate wrapper code for annotated declarations",
		Long: `Generate scans the given package patterns (default ./...) for
//slicewrap:wrap directives and writes one generated file per wrapper next
to its declaration. With --manifest, declarations are read from a YAML file
instead and the type declarations themselves are emitted too.

Nothing is written unless every declaration validates and renders cleanly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Manifest != "" {
				if len(args) > 0 {
					return errors.New("--manifest and package patterns are mutually exclusive")
				}

				return runGenManifest(cmd, opts)
			}

			return runGenDirectives(cmd, opts, patternsOrDefault(args))
		},
	}

	cmd.Flags().StringVarP(&opts.Manifest, "manifest", "m", "", "generate from a YAML manifest instead of directives")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output directory (default: next to each declaration)")

	return cmd
}

func runGenDirectives(cmd *cobra.Command, opts *genOptions, patterns []string) error {
	pkgs, diags, err := analyze.Load(patterns...)
	if err != nil {
		return err
	}

	printDiagnostics(cmd, diags)

	if diags.HasErrors() {
		return errors.New("generation aborted: declaration errors")
	}

	if len(pkgs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no wrapper declarations found")

		return nil
	}

	for _, pkg := range pkgs {
		if opts.root.Verbose {
			fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(pkg.Decls))
		}

		outDir := opts.Output
		if outDir == "" {
			outDir = pkg.Dir
		}

		files, err := gen.Generate(pkg.Name, pkg.Decls)
		if err != nil {
			dumpUnformatted(outDir, files)

			return fmt.Errorf("package %s: %w", pkg.Path, err)
		}

		if err := gen.WriteFiles(files, outDir); err != nil {
			return fmt.Errorf("package %s: %w", pkg.Path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d file(s) to %s\n", pkg.Path, len(files), outDir)
	}

	return nil
}

func runGenManifest(cmd *cobra.Command, opts *genOptions) error {
	m, err := decl.LoadManifest(opts.Manifest)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	decls := m.Resolve(&diags)

	printDiagnostics(cmd, diags)

	if diags.HasErrors() {
		return errors.New("generation aborted: declaration errors")
	}

	if opts.root.Verbose {
		fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(decls))
	}

	outDir := opts.Output
	if outDir == "" {
		outDir = filepath.Dir(opts.Manifest)
	}

	var files []gen.GeneratedFile

	if m.Output != "" {
		f, err := gen.GenerateSingle(m.Package, m.Output, decls)
		if err != nil {
			if f != nil {
				dumpUnformatted(outDir, []gen.GeneratedFile{*f})
			}

			return err
		}

		if f != nil {
			files = append(files, *f)
		}
	} else {
		files, err = gen.Generate(m.Package, decls)
		if err != nil {
			dumpUnformatted(outDir, files)

			return err
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "manifest declares no wrappers")

		return nil
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d file(s) to %s\n", opts.Manifest, len(files), outDir)

	return nil
}

// dumpUnformatted best-effort persists source that failed gofmt, for
// debugging broken templates.
func dumpUnformatted(outDir string, files []gen.GeneratedFile) {
	for _, f := range files {
		_ = gen.WriteDebugUnformatted(outDir, f.Filename, f.Content)
	}
}
