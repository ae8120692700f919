package gen

import (
	"fmt"
	"go/format"
	"strings"

	"slicewrap-generator/internal/decl"
	"slicewrap-generator/internal/plan"
)

// runtimeModule is the import path of the module whose layout and shared
// packages generated code links against.
const runtimeModule = "slicewrap-generator"

// Header is the first line of every generated file.
const Header = "// Code generated by slicewrap-generator. DO NOT EDIT."

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file, without directory.
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

// Generate renders one file per declaration for the named package
// (directive mode). Nothing is returned unless every declaration renders and
// formats cleanly.
func Generate(pkgName string, decls []decl.Decl) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, d := range decls {
		data := buildData(d)

		content, err := renderFile(pkgName, []wrapperData{data})
		if err != nil {
			// Hand the unformatted source back so the caller can dump it.
			return []GeneratedFile{{Filename: data.Filename, Content: content}}, err
		}

		files = append(files, GeneratedFile{Filename: data.Filename, Content: content})
	}

	return files, nil
}

// GenerateSingle renders all declarations into one combined file
// (manifest mode with an explicit output name).
func GenerateSingle(pkgName, filename string, decls []decl.Decl) (*GeneratedFile, error) {
	if len(decls) == 0 {
		return nil, nil
	}

	data := make([]wrapperData, 0, len(decls))
	for _, d := range decls {
		data = append(data, buildData(d))
	}

	content, err := renderFile(pkgName, data)
	if err != nil {
		return &GeneratedFile{Filename: filename, Content: content}, err
	}

	return &GeneratedFile{Filename: filename, Content: content}, nil
}

// buildData expands a declaration and fills in the rendering details the
// plan does not carry.
func buildData(d decl.Decl) wrapperData {
	w := wrapperData{
		Wrapper: plan.Expand(d),
		IsSlice: d.Kind == decl.SeqElements,
	}

	if w.IsSlice {
		w.OwnedCopy = "append(" + w.Seq + "(nil), w...)"
	} else {
		w.OwnedCopy = "strings.Clone(string(w))"
	}

	if d.EmitType {
		w.Annotations = d.Annotations

		if d.Doc != "" {
			for _, line := range strings.Split(strings.TrimRight(d.Doc, "\n"), "\n") {
				w.DocLines = append(w.DocLines, "// "+line)
			}
		}
	}

	return w
}

// renderFile assembles the header, package clause, import block, and wrapper
// sections into one formatted source file. On a formatting failure the
// unformatted source is returned along with the error so callers can dump it
// for debugging.
func renderFile(pkgName string, ws []wrapperData) ([]byte, error) {
	sections := []string{
		Header + "\n",
		"package " + pkgName + "\n",
		importBlock(ws),
	}

	for _, w := range ws {
		rendered, err := wrapperSections(w)
		if err != nil {
			return nil, err
		}

		sections = append(sections, rendered...)
	}

	src := strings.Join(sections, "\n")

	formatted, err := format.Source([]byte(src))
	if err != nil {
		return []byte(src), fmt.Errorf("formatting generated code for package %s: %w", pkgName, err)
	}

	return formatted, nil
}

// importBlock computes the import declaration for a set of wrappers:
// standard library first, then the runtime packages, both sorted by the
// fixed emission order.
func importBlock(ws []wrapperData) string {
	text := false
	owned := false
	sharedPkg := false

	for _, w := range ws {
		text = text || w.Text
		owned = owned || (w.Text && w.HasOwned)
		sharedPkg = sharedPkg || w.NeedsShared()
	}

	var std []string
	if text {
		std = append(std, "cmp", "fmt")
	}

	if owned {
		std = append(std, "strings")
	}

	mod := []string{runtimeModule + "/layout"}
	if sharedPkg {
		mod = append(mod, runtimeModule+"/shared")
	}

	var b strings.Builder

	b.WriteString("import (\n")

	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}

	if len(std) > 0 {
		b.WriteString("\n")
	}

	for _, p := range mod {
		fmt.Fprintf(&b, "\t%q\n", p)
	}

	b.WriteString(")\n")

	return b.String()
}
