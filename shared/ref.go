package shared

// cell is the control block of a Ref: the count followed by the payload.
// Field order matters: Cast reinterprets a *cell[S] as a *cell[W], which is
// only sound while the count stays at the same offset for every payload type
// of identical layout.
type cell[T any] struct {
	count int64
	value T
}

// Ref is a non-atomically reference-counted shared owner of a value.
//
// Clones share one allocation; the value is released when the last owner
// calls Release. A Ref must not be shared across goroutines; use SyncRef
// for that.
type Ref[T any] struct {
	cell *cell[T]
}

// NewRef allocates a new shared value with a single owner.
func NewRef[T any](v T) Ref[T] {
	return Ref[T]{cell: &cell[T]{count: 1, value: v}}
}

// Clone registers a new owner of the shared value and returns it.
// The returned Ref points at the same allocation.
func (r Ref[T]) Clone() Ref[T] {
	r.check()
	r.cell.count++

	return r
}

// Release drops this owner. It reports whether it was the last one, in which
// case the held value has been cleared and no owner may touch the Ref again.
func (r Ref[T]) Release() bool {
	r.check()
	r.cell.count--

	if r.cell.count == 0 {
		var zero T
		r.cell.value = zero

		return true
	}

	return false
}

// Get returns a pointer to the shared value. The pointer aliases the single
// allocation, so mutation through it is visible to every owner.
func (r Ref[T]) Get() *T {
	r.check()

	return &r.cell.value
}

// Count returns the current number of owners.
func (r Ref[T]) Count() int64 {
	if r.cell == nil {
		return 0
	}

	return r.cell.count
}

func (r Ref[T]) check() {
	if r.cell == nil {
		panic("shared: use of zero Ref")
	}

	if r.cell.count <= 0 {
		panic("shared: use of Ref after final Release")
	}
}
