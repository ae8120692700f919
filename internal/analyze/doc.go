// Package analyze discovers wrapper declarations in Go source.
//
// It loads packages through golang.org/x/tools/go/packages, pairs
// //slicewrap:wrap directives with the type declarations they annotate, and
// classifies each annotated type's sequence shape. Environmental faults
// (unloadable packages) surface as errors; faults in the declarations
// themselves surface as diagnostics.
package analyze
