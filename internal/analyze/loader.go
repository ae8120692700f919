package analyze

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"slicewrap-generator/internal/decl"
	"slicewrap-generator/internal/diagnostic"
)

// loadMode requests everything directive scanning needs: names, file lists,
// and parsed syntax.
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax

// Package is the scan result for one Go package: the wrapper declarations
// found in it and where to write their generated files.
type Package struct {
	// Name is the package name generated files will declare.
	Name string
	// Path is the package import path.
	Path string
	// Dir is the directory holding the package's source files.
	Dir string
	// Decls are the validated wrapper declarations, in source order.
	Decls []decl.Decl
}

// Load loads the packages matched by the given patterns and scans them for
// //slicewrap:wrap directives. Packages that fail to load abort with an
// error; ill-formed declarations are reported through the returned
// diagnostics.
func Load(patterns ...string) ([]*Package, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	cfg := &packages.Config{Mode: loadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, diags, fmt.Errorf("loading packages: %w", err)
	}

	var loadErrs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			loadErrs = append(loadErrs, e)
		}
	}

	if len(loadErrs) > 0 {
		return nil, diags, fmt.Errorf("package errors: %v", loadErrs)
	}

	var out []*Package

	for _, pkg := range pkgs {
		scanned := scanPackage(pkg, &diags)
		if scanned != nil {
			out = append(out, scanned)
		}
	}

	return out, diags, nil
}

// scanPackage walks one package's syntax for annotated type declarations.
// It returns nil when the package carries no directives at all.
func scanPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) *Package {
	out := &Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
	}

	if len(pkg.GoFiles) > 0 {
		out.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	seen := make(map[string]string)

	for _, file := range pkg.Syntax {
		for _, fileDecl := range file.Decls {
			switch d := fileDecl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					rejectStrayDirective(pkg, d.Doc, diags)

					continue
				}

				scanTypeDecl(pkg, d, seen, out, diags)

			case *ast.FuncDecl:
				rejectStrayDirective(pkg, d.Doc, diags)
			}
		}
	}

	if len(out.Decls) == 0 {
		return nil
	}

	return out
}

func scanTypeDecl(pkg *packages.Package, d *ast.GenDecl, seen map[string]string, out *Package, diags *diagnostic.Diagnostics) {
	for _, spec := range d.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		doc := ts.Doc
		if doc == nil && len(d.Specs) == 1 {
			doc = d.Doc
		}

		dir, found := directiveFrom(pkg, doc, ts.Name.Name, diags)
		if !found {
			continue
		}

		pos := position(pkg, ts.Pos())

		if ts.Assign.IsValid() {
			diags.AddError(diagnostic.CodeUnsupportedSequence,
				"cannot wrap a type alias: declare a defined type", ts.Name.Name)

			continue
		}

		if ts.TypeParams != nil {
			diags.AddError(diagnostic.CodeGenericWrapper,
				"wrapper types with type parameters are not supported", ts.Name.Name)

			continue
		}

		resolved, ok := decl.Resolve(ts.Name.Name, exprString(pkg.Fset, ts.Type), dir.Containers, pos, diags)
		if !ok {
			continue
		}

		// Names match case-folded: case-variant names expand to the same
		// constructor names and the same output filename.
		key := strings.ToLower(resolved.Name)
		if prev, dup := seen[key]; dup {
			diags.AddError(diagnostic.CodeDuplicateWrapper,
				decl.DuplicateWrapperMessage(resolved.Name, prev), resolved.Name)

			continue
		}

		seen[key] = resolved.Name
		out.Decls = append(out.Decls, resolved)
	}
}

// directiveFrom extracts and parses the slicewrap directive from a doc
// comment, if present.
func directiveFrom(pkg *packages.Package, doc *ast.CommentGroup, wrapper string, diags *diagnostic.Diagnostics) (decl.Directive, bool) {
	if doc == nil {
		return decl.Directive{}, false
	}

	for _, c := range doc.List {
		dir, isDir, err := decl.ParseDirective(c.Text)
		if !isDir {
			continue
		}

		if err != nil {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     diagnostic.CodeBadDirective,
				Message:  err.Error(),
				Wrapper:  wrapper,
				Pos:      position(pkg, c.Pos()),
			}
			diags.Errors = append(diags.Errors, d)

			return decl.Directive{}, false
		}

		return dir, true
	}

	return decl.Directive{}, false
}

// rejectStrayDirective flags a slicewrap directive attached to anything but a
// type declaration.
func rejectStrayDirective(pkg *packages.Package, doc *ast.CommentGroup, diags *diagnostic.Diagnostics) {
	if doc == nil {
		return
	}

	for _, c := range doc.List {
		if decl.IsDirective(c.Text) {
			d := diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     diagnostic.CodeNotAType,
				Message:  "slicewrap directive must annotate a type declaration",
				Pos:      position(pkg, c.Pos()),
			}
			diags.Errors = append(diags.Errors, d)
		}
	}
}

func position(pkg *packages.Package, pos token.Pos) string {
	if pkg.Fset == nil {
		return ""
	}

	return pkg.Fset.Position(pos).String()
}

// exprString renders a type expression back to source form for sequence
// classification.
func exprString(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return ""
	}

	return buf.String()
}
