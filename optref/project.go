// Package optref projects optional wrapper references onto their underlying
// sequence type.
//
// A nil *Wrapper stands in for "no value". Dereferencing helpers on the
// wrapper itself cannot run on a nil pointer, and a generic
// pointer-to-pointer conversion would just yield another wrapper reference,
// so the projection has to perform the reinterpretation step explicitly:
//
//	var w *shortstr.ShortStr
//	optref.Inner[string](w) // nil
//
//	w = shortstr.MustShortStr("hi")
//	optref.Inner[string](w) // *string aliasing w
//
// Go pointers carry mutability, so a single form covers both the immutable
// and the mutable projection: for slice-backed wrappers, mutation through the
// projected pointer is visible through the original wrapper reference.
package optref

import "slicewrap-generator/layout"

// Inner converts an optional wrapper reference into an optional reference to
// the wrapped sequence. A nil input propagates to a nil output; a non-nil
// input yields a pointer to the same memory, with no allocation and no
// ownership transfer.
//
// S must be the underlying sequence type of W. Any other pairing fails the
// layout check inside the cast.
func Inner[S, W any](w *W) *S {
	if w == nil {
		return nil
	}

	return layout.CastPtr[W, S](w)
}
