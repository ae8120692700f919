// Package layout holds the single reinterpretation primitive used by every
// zero-copy conversion in this module.
//
// A wrapper type produced by slicewrap-generator is a Go defined type whose
// underlying type is the wrapped sequence (`type ShortStr string`), so the
// compiler already guarantees identical size, alignment and representation.
// The functions here make that guarantee explicit and re-check it at the only
// place where an unsafe.Pointer changes its pointee type. No other package in
// this module imports unsafe.
package layout
