package decl

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"slicewrap-generator/internal/diagnostic"
)

// Manifest is the root of a YAML wrapper declaration file. In manifest mode
// the generator emits the wrapper type declarations themselves, so each entry
// also carries the doc comment and pass-through annotation lines for its
// type.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the package name the generated file belongs to.
	Package string `yaml:"package"`

	// Output overrides the generated filename. Optional.
	Output string `yaml:"output,omitempty"`

	// Wrappers lists the wrapper declarations to generate.
	Wrappers []WrapperDef `yaml:"wrappers"`
}

// WrapperDef is a single wrapper declaration in a manifest.
type WrapperDef struct {
	// Name of the wrapper type. Its case decides visibility.
	Name string `yaml:"name"`

	// Sequence is the wrapped sequence type: "string" or "[]E".
	Sequence string `yaml:"sequence"`

	// Containers lists requested ownership containers by name.
	Containers []string `yaml:"containers,omitempty"`

	// Doc is the doc comment text placed above the type declaration.
	Doc string `yaml:"doc,omitempty"`

	// Annotations are verbatim comment lines (e.g. lint directives) emitted
	// between the doc comment and the type declaration.
	Annotations []string `yaml:"annotations,omitempty"`
}

// LoadManifest loads and parses a YAML manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return m, nil
}

// ParseManifest parses YAML data into a Manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}

	if m.Version == "" {
		m.Version = "1"
	}

	return &m, nil
}

// Resolve validates every wrapper definition and returns the declarations in
// manifest order. Faults are reported through diags; when diags carries
// errors afterwards, nothing may be generated.
func (m *Manifest) Resolve(diags *diagnostic.Diagnostics) []Decl {
	if m.Package == "" {
		diags.AddError(diagnostic.CodeBadDirective, "manifest is missing the package name", "")
	}

	seen := make(map[string]string)

	var out []Decl

	for _, w := range m.Wrappers {
		d, ok := Resolve(w.Name, w.Sequence, w.Containers, "", diags)
		if !ok {
			continue
		}

		key := strings.ToLower(d.Name)
		if prev, dup := seen[key]; dup {
			diags.AddError(diagnostic.CodeDuplicateWrapper,
				DuplicateWrapperMessage(d.Name, prev), d.Name)

			continue
		}

		seen[key] = d.Name

		d.EmitType = true
		d.Doc = w.Doc
		d.Annotations = resolveAnnotations(d.Name, w.Annotations, diags)

		out = append(out, d)
	}

	return out
}

func resolveAnnotations(wrapper string, lines []string, diags *diagnostic.Diagnostics) []string {
	var out []string

	for _, line := range lines {
		if !strings.HasPrefix(line, "//") {
			diags.AddError(diagnostic.CodeBadDirective,
				fmt.Sprintf("annotation %q is not a comment line", line), wrapper)

			continue
		}

		out = append(out, line)
	}

	return out
}
