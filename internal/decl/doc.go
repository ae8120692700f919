// Package decl defines the wrapper declaration model and its two input
// surfaces.
//
// A declaration names a wrapper type, the sequence it wraps (a UTF-8 string
// or a slice of some element type), and the set of ownership containers to
// generate conversions for. Declarations arrive either as //slicewrap:wrap
// directives on user-written type declarations or as entries in a YAML
// manifest, and are fully validated before any code is emitted.
package decl
