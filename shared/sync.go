package shared

import "sync/atomic"

// syncCell mirrors cell with an atomic count. See the layout note on cell.
type syncCell[T any] struct {
	count atomic.Int64
	value T
}

// SyncRef is an atomically reference-counted shared owner of a value, safe to
// Clone and Release from concurrently executing goroutines.
//
// The count is atomic; the payload itself is not. Concurrent mutation of the
// shared value still needs external synchronization, exactly as with any
// shared pointer.
type SyncRef[T any] struct {
	cell *syncCell[T]
}

// NewSyncRef allocates a new shared value with a single owner.
func NewSyncRef[T any](v T) SyncRef[T] {
	c := &syncCell[T]{value: v}
	c.count.Store(1)

	return SyncRef[T]{cell: c}
}

// Clone registers a new owner of the shared value and returns it.
func (r SyncRef[T]) Clone() SyncRef[T] {
	r.check()
	r.cell.count.Add(1)

	return r
}

// Release drops this owner. Exactly one caller observes true: the last owner,
// which also clears the held value. After that, no owner may touch the Ref.
func (r SyncRef[T]) Release() bool {
	r.check()

	if r.cell.count.Add(-1) == 0 {
		var zero T
		r.cell.value = zero

		return true
	}

	return false
}

// Get returns a pointer to the shared value.
func (r SyncRef[T]) Get() *T {
	r.check()

	return &r.cell.value
}

// Count returns the current number of owners.
func (r SyncRef[T]) Count() int64 {
	if r.cell == nil {
		return 0
	}

	return r.cell.count.Load()
}

func (r SyncRef[T]) check() {
	if r.cell == nil {
		panic("shared: use of zero SyncRef")
	}

	if r.cell.count.Load() <= 0 {
		panic("shared: use of SyncRef after final Release")
	}
}
