// Package gen emits the Go source for wrapper declarations.
//
// Generation approach uses text/template + go/format: each section of a
// wrapper's surface (layout guard, private constructors, accessors, container
// conversions, text bundle) is a small template; sections are assembled per
// wrapper and formatted as one file. Output is deterministic - the same
// declarations always produce byte-identical files - and nothing is written
// until every declaration generated cleanly.
package gen
