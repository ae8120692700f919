package shared

import "slicewrap-generator/layout"

// Cast reinterprets the payload of a Ref from S to W without copying.
// The count cell is untouched: the result shares ownership bookkeeping with
// every existing clone of r. S and W must have identical layout; generated
// wrapper code guarantees this by construction.
func Cast[S, W any](r Ref[S]) Ref[W] {
	if r.cell == nil {
		return Ref[W]{}
	}

	return Ref[W]{cell: layout.CastPtr[cell[S], cell[W]](r.cell)}
}

// CastSync is Cast for atomically counted containers.
func CastSync[S, W any](r SyncRef[S]) SyncRef[W] {
	if r.cell == nil {
		return SyncRef[W]{}
	}

	return SyncRef[W]{cell: layout.CastPtr[syncCell[S], syncCell[W]](r.cell)}
}
