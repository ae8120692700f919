package decl

// SeqKind classifies the wrapped sequence.
type SeqKind int

const (
	// SeqText is a UTF-8 text sequence (underlying type string).
	SeqText SeqKind = iota
	// SeqElements is a contiguous run of elements (underlying type []E).
	SeqElements
)

// String returns a human-readable kind name.
func (k SeqKind) String() string {
	switch k {
	case SeqText:
		return "text"
	case SeqElements:
		return "elements"
	default:
		return "unknown"
	}
}

// Container identifies an ownership container a wrapper can convert
// into and out of. The set is closed: adding a container kind requires
// re-verifying the layout-identity argument for its control block.
type Container int

const (
	// ContainerOwned is the exclusive owner: a unique pointer to a heap value.
	ContainerOwned Container = iota
	// ContainerShared is the non-atomic reference-counted owner (shared.Ref).
	ContainerShared
	// ContainerSync is the atomic reference-counted owner (shared.SyncRef).
	ContainerSync

	containerTotal
)

// ContainerNames lists the accepted container spellings in canonical order.
var ContainerNames = []string{"owned", "shared", "sync"}

// String returns the canonical spelling of the container name.
func (c Container) String() string {
	if c < 0 || int(c) >= len(ContainerNames) {
		return "unknown"
	}

	return ContainerNames[c]
}

// ParseContainer maps a spelling to its Container. It reports false for
// unrecognized names; suggestion handling is the caller's concern.
func ParseContainer(name string) (Container, bool) {
	for i, n := range ContainerNames {
		if n == name {
			return Container(i), true
		}
	}

	return 0, false
}

// Decl is a fully validated wrapper declaration, the unit of generation.
type Decl struct {
	// Name is the wrapper type name. Its case decides visibility, as usual
	// in Go.
	Name string
	// Kind classifies the wrapped sequence.
	Kind SeqKind
	// Elem is the element type expression for SeqElements declarations
	// (e.g. "byte", "uint64"). Empty for SeqText.
	Elem string
	// Containers lists requested ownership containers in canonical order,
	// without duplicates.
	Containers []Container
	// Doc is the doc comment text for the emitted type declaration
	// (manifest mode only; in directive mode the user owns the type).
	Doc string
	// Annotations are verbatim comment lines emitted above the type
	// declaration (manifest mode only).
	Annotations []string
	// EmitType is true when the generator must emit the type declaration
	// itself (manifest mode) rather than attach to a user-written one.
	EmitType bool
	// Pos is the source position of the declaration, for diagnostics.
	Pos string
}

// Sequence returns the sequence type expression the wrapper is declared over.
func (d Decl) Sequence() string {
	if d.Kind == SeqText {
		return "string"
	}

	return "[]" + d.Elem
}

// HasContainer reports whether conversions for c were requested.
func (d Decl) HasContainer(c Container) bool {
	for _, have := range d.Containers {
		if have == c {
			return true
		}
	}

	return false
}
