package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"slicewrap-generator/internal/plan"
)

// wrapperData is the template input for one wrapper's sections.
type wrapperData struct {
	plan.Wrapper

	// IsSlice selects the aliasing wording and the deep-copy form.
	IsSlice bool
	// OwnedCopy is the expression that copies the wrapped sequence into a
	// fresh allocation.
	OwnedCopy string
	// DocLines and Annotations are the comment lines above an emitted type
	// declaration (manifest mode only).
	DocLines    []string
	Annotations []string
}

// Section templates. Each renders one declaration of the generated file,
// with no leading or trailing blank line; the generator joins sections with
// a single blank line.
const (
	typeTmpl = `{{range .DocLines}}{{.}}
{{end}}{{range .Annotations}}{{.}}
{{end}}type {{.Name}} {{.Seq}}
`

	guardTmpl = `// {{.Name}} must remain a plain {{.Seq}} newtype: every conversion in this
// file relies on the wrapper and its sequence sharing one memory layout.
var _ = func(s {{.Seq}}) {{.Name}} { return {{.Name}}(s) }
`

	wrapTmpl = `// {{.WrapFunc}} reinterprets s as {{.Name}} without copying or validating.
// It is private to the declaring package: domain invariants belong in public
// constructors layered on top of it.{{if .IsSlice}}
// The result shares s's backing array, so mutation through either side is
// visible through the other.{{end}}
func {{.WrapFunc}}(s {{.Seq}}) {{.Name}} {
	return {{.Name}}(s)
}
`

	wrapRefTmpl = `// {{.WrapRefFunc}} reinterprets a sequence reference in place: the result
// points at the same memory as s. Like {{.WrapFunc}}, it is private to the
// declaring package.
func {{.WrapRefFunc}}(s *{{.Seq}}) *{{.Name}} {
	return layout.CastPtr[{{.Seq}}, {{.Name}}](s)
}
`

	innerTmpl = `// Inner returns the wrapped sequence{{if .IsSlice}}, sharing its backing array{{end}}.
func (w {{.Name}}) Inner() {{.Seq}} {
	return {{.Seq}}(w)
}
`

	innerRefTmpl = `// InnerRef returns a reference to the wrapped sequence at the same address
// as w.
func (w *{{.Name}}) InnerRef() *{{.Seq}} {
	return layout.CastPtr[{{.Name}}, {{.Seq}}](w)
}
`

	fromOwnedTmpl = `// {{.FromOwnedFunc}} reinterprets an owned sequence in place, keeping its
// allocation. Private to the declaring package.
func {{.FromOwnedFunc}}(p *{{.Seq}}) *{{.Name}} {
	return layout.CastPtr[{{.Seq}}, {{.Name}}](p)
}
`

	intoOwnedTmpl = `// IntoOwned yields the owned sequence at the same allocation as w.
func (w *{{.Name}}) IntoOwned() *{{.Seq}} {
	return layout.CastPtr[{{.Name}}, {{.Seq}}](w)
}
`

	toOwnedTmpl = `// ToOwned copies the wrapped sequence into a fresh exclusive allocation.
func (w {{.Name}}) ToOwned() *{{.Name}} {
	s := {{.OwnedCopy}}

	return {{.WrapRefFunc}}(&s)
}
`

	fromSharedTmpl = `// {{.FromSharedFunc}} reinterprets the payload of a shared sequence, leaving
// its count cell untouched. Private to the declaring package.
func {{.FromSharedFunc}}(r shared.Ref[{{.Seq}}]) shared.Ref[{{.Name}}] {
	return shared.Cast[{{.Seq}}, {{.Name}}](r)
}
`

	intoSharedTmpl = `// {{.IntoSharedFunc}} is the reverse reinterpretation, back to the raw
// sequence under the same ownership bookkeeping.
func {{.IntoSharedFunc}}(r shared.Ref[{{.Name}}]) shared.Ref[{{.Seq}}] {
	return shared.Cast[{{.Name}}, {{.Seq}}](r)
}
`

	fromSyncTmpl = `// {{.FromSyncFunc}} reinterprets the payload of an atomically shared
// sequence, leaving its count cell untouched. Private to the declaring
// package.
func {{.FromSyncFunc}}(r shared.SyncRef[{{.Seq}}]) shared.SyncRef[{{.Name}}] {
	return shared.CastSync[{{.Seq}}, {{.Name}}](r)
}
`

	intoSyncTmpl = `// {{.IntoSyncFunc}} is the reverse reinterpretation, back to the raw
// sequence under the same ownership bookkeeping.
func {{.IntoSyncFunc}}(r shared.SyncRef[{{.Name}}]) shared.SyncRef[{{.Seq}}] {
	return shared.CastSync[{{.Name}}, {{.Seq}}](r)
}
`

	bytesTmpl = `// Bytes returns a read-only byte view of the wrapped text, sharing its
// backing memory.
func (w {{.Name}}) Bytes() []byte {
	return layout.StringBytes(string(w))
}
`

	equalTmpl = `// Equal reports whether the wrapped text equals s byte for byte.
func (w {{.Name}}) Equal(s string) bool {
	return string(w) == s
}
`

	compareTmpl = `// Compare orders the wrapped text against raw text lexicographically by
// byte value, following the cmp convention.
func (w {{.Name}}) Compare(s string) int {
	return cmp.Compare(string(w), s)
}
`

	stringTmpl = `// String renders exactly the wrapped text.
func (w {{.Name}}) String() string {
	return string(w)
}
`

	goStringTmpl = `// GoString renders the debug form {{.Name}}("...").
func (w {{.Name}}) GoString() string {
	return fmt.Sprintf("{{.Name}}(%q)", string(w))
}
`
)

var sectionTmpls = func() map[string]*template.Template {
	sources := map[string]string{
		"type":       typeTmpl,
		"guard":      guardTmpl,
		"wrap":       wrapTmpl,
		"wrapRef":    wrapRefTmpl,
		"inner":      innerTmpl,
		"innerRef":   innerRefTmpl,
		"fromOwned":  fromOwnedTmpl,
		"intoOwned":  intoOwnedTmpl,
		"toOwned":    toOwnedTmpl,
		"fromShared": fromSharedTmpl,
		"intoShared": intoSharedTmpl,
		"fromSync":   fromSyncTmpl,
		"intoSync":   intoSyncTmpl,
		"bytes":      bytesTmpl,
		"equal":      equalTmpl,
		"compare":    compareTmpl,
		"string":     stringTmpl,
		"goString":   goStringTmpl,
	}

	out := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		out[name] = template.Must(template.New(name).Parse(src))
	}

	return out
}()

// wrapperSections renders every section the declaration asks for, in the
// fixed file order: type, guard, constructors, accessors, containers, text
// bundle.
func wrapperSections(w wrapperData) ([]string, error) {
	names := []string{"guard", "wrap", "wrapRef", "inner", "innerRef"}

	if w.Decl.EmitType {
		names = append([]string{"type"}, names...)
	}

	if w.HasOwned {
		names = append(names, "fromOwned", "intoOwned", "toOwned")
	}

	if w.HasShared {
		names = append(names, "fromShared", "intoShared")
	}

	if w.HasSync {
		names = append(names, "fromSync", "intoSync")
	}

	if w.Text {
		names = append(names, "bytes", "equal", "compare", "string", "goString")
	}

	out := make([]string, 0, len(names))

	for _, name := range names {
		var buf bytes.Buffer
		if err := sectionTmpls[name].Execute(&buf, w); err != nil {
			return nil, fmt.Errorf("rendering %s section for %s: %w", name, w.Name, err)
		}

		out = append(out, buf.String())
	}

	return out, nil
}
