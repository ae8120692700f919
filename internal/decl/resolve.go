package decl

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"slicewrap-generator/internal/diagnostic"
	"slicewrap-generator/internal/match"
)

// Resolve validates raw declaration parts and produces a Decl. All faults are
// reported through diags; ok is false when any of them is an error. A false
// return means the Decl must not be generated from.
func Resolve(name, sequence string, containers []string, pos string, diags *diagnostic.Diagnostics) (Decl, bool) {
	before := len(diags.Errors)

	d := Decl{Name: name, Pos: pos}

	if name == "" {
		diags.AddError(diagnostic.CodeMissingName, "wrapper declaration has no type name", "")
	} else if !validIdent(name) {
		diags.AddError(diagnostic.CodeMissingName,
			fmt.Sprintf("wrapper name %q is not a valid Go identifier", name), name)
	}

	kind, elem, ok := parseSequence(sequence)
	if !ok {
		diags.AddError(diagnostic.CodeUnsupportedSequence,
			fmt.Sprintf("sequence type %q is not supported: must be string or a slice of a plain element type", sequence),
			name)
	} else {
		d.Kind, d.Elem = kind, elem
	}

	d.Containers = resolveContainers(name, containers, diags)

	return d, len(diags.Errors) == before
}

// DuplicateWrapperMessage describes a wrapper name collision within one
// package. Names are compared case-folded: case-variant names expand to the
// same private constructor names and the same generated filename.
func DuplicateWrapperMessage(name, prev string) string {
	if name == prev {
		return fmt.Sprintf("wrapper %q declared more than once", name)
	}

	return fmt.Sprintf("wrapper %q collides with %q: names differing only in case generate the same file", name, prev)
}

// resolveContainers maps raw container spellings onto the closed container
// set, rejecting unknown names (with a nearest-spelling suggestion) and
// duplicates. The result is in canonical order.
func resolveContainers(wrapper string, names []string, diags *diagnostic.Diagnostics) []Container {
	var out []Container

	for _, raw := range names {
		c, ok := ParseContainer(raw)
		if !ok {
			var suggestions []string
			if s, found := match.Closest(raw, ContainerNames); found {
				suggestions = append(suggestions, s)
			}

			diags.AddError(diagnostic.CodeUnknownContainer,
				fmt.Sprintf("unknown container %q: valid containers are %s", raw, strings.Join(ContainerNames, ", ")),
				wrapper, suggestions...)

			continue
		}

		if slices.Contains(out, c) {
			diags.AddError(diagnostic.CodeDuplicateContainer,
				fmt.Sprintf("container %q requested more than once", raw), wrapper)

			continue
		}

		out = append(out, c)
	}

	slices.Sort(out)

	return out
}

// parseSequence classifies a sequence type expression: "string" for text,
// "[]E" for an element run. E must be a plain (possibly package-local)
// identifier; qualified, pointer, nested-slice, and generic element types are
// outside the supported shapes.
func parseSequence(expr string) (SeqKind, string, bool) {
	expr = strings.TrimSpace(expr)

	if expr == "string" {
		return SeqText, "", true
	}

	elem, found := strings.CutPrefix(expr, "[]")
	if !found || !validIdent(elem) {
		return 0, "", false
	}

	return SeqElements, elem, true
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
