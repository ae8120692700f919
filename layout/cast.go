package layout

import (
	"fmt"
	"unsafe"
)

// Same reports whether S and W occupy identical memory: equal size and equal
// alignment. For the wrapper/sequence pairs emitted by the generator this is
// always true; it exists so that CastPtr can refuse any other pairing.
func Same[S, W any]() bool {
	var s S
	var w W

	return unsafe.Sizeof(s) == unsafe.Sizeof(w) && unsafe.Alignof(s) == unsafe.Alignof(w)
}

// CastPtr reinterprets a *S as a *W pointing at the same memory. The returned
// pointer aliases p: no allocation, no copy, mutation through either pointer
// is visible through the other.
//
// CastPtr panics if S and W do not share size and alignment. Generated code
// can never trigger the panic because the generator only pairs a wrapper with
// its own underlying sequence type.
func CastPtr[S, W any](p *S) *W {
	if !Same[S, W]() {
		var s S
		var w W
		panic(fmt.Sprintf("layout: cannot reinterpret %T as %T: layouts differ", s, w))
	}

	return (*W)(unsafe.Pointer(p))
}

// StringBytes returns a read-only byte view of s sharing its backing memory.
// The result must not be mutated: strings are immutable and the view aliases
// the string's data.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString returns a string sharing the backing memory of b. The caller
// must not mutate b afterwards.
func BytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
