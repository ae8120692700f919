package plan

import (
	"strings"
	"unicode"

	"slicewrap-generator/internal/decl"
)

// Wrapper is the expanded emission plan for one wrapper declaration.
type Wrapper struct {
	// Decl is the declaration this plan was expanded from.
	Decl decl.Decl

	// Name is the wrapper type name.
	Name string
	// Seq is the wrapped sequence type expression ("string" or "[]E").
	Seq string
	// Text is true for UTF-8 text wrappers, which receive the comparison
	// and formatting bundle unconditionally.
	Text bool

	// WrapFunc and WrapRefFunc are the package-private constructors.
	WrapFunc    string
	WrapRefFunc string

	// Container conversion function names. Empty when the container was not
	// requested. The From* constructors are package-private; the Into*
	// directions only consume an already constructed wrapper and keep the
	// wrapper name's own case.
	FromOwnedFunc  string
	FromSharedFunc string
	IntoSharedFunc string
	FromSyncFunc   string
	IntoSyncFunc   string

	// HasOwned, HasShared, HasSync mirror the requested container set.
	HasOwned  bool
	HasShared bool
	HasSync   bool

	// Filename is the generated file's name.
	Filename string
}

// Expand turns a validated declaration into its emission plan.
func Expand(d decl.Decl) Wrapper {
	stem := lowerFirst(d.Name)

	w := Wrapper{
		Decl:        d,
		Name:        d.Name,
		Seq:         d.Sequence(),
		Text:        d.Kind == decl.SeqText,
		WrapFunc:    "wrap" + upperFirst(d.Name),
		WrapRefFunc: "wrap" + upperFirst(d.Name) + "Ref",
		Filename:    snake(d.Name) + "_slicewrap.go",
	}

	if d.HasContainer(decl.ContainerOwned) {
		w.HasOwned = true
		w.FromOwnedFunc = stem + "FromOwned"
	}

	if d.HasContainer(decl.ContainerShared) {
		w.HasShared = true
		w.FromSharedFunc = stem + "FromShared"
		w.IntoSharedFunc = d.Name + "IntoShared"
	}

	if d.HasContainer(decl.ContainerSync) {
		w.HasSync = true
		w.FromSyncFunc = stem + "FromSync"
		w.IntoSyncFunc = d.Name + "IntoSync"
	}

	return w
}

// NeedsShared reports whether the generated file imports the shared package.
func (w Wrapper) NeedsShared() bool {
	return w.HasShared || w.HasSync
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

// snake converts a CamelCase type name to snake_case for filenames,
// keeping acronym runs together: ShortStr -> short_str, TagID -> tag_id.
func snake(s string) string {
	var b strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			boundary := i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1])))
			if boundary {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
