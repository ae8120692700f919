package shared

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_CloneRelease(t *testing.T) {
	r := NewRef("heapable")
	assert.Equal(t, int64(1), r.Count())

	c := r.Clone()
	assert.Equal(t, int64(2), r.Count())
	assert.Same(t, r.Get(), c.Get())

	assert.False(t, c.Release())
	assert.Equal(t, int64(1), r.Count())

	// Last owner releases the value.
	assert.True(t, r.Release())
}

func TestRef_MutationSharedAcrossClones(t *testing.T) {
	r := NewRef([]uint64{1, 2, 3})
	c := r.Clone()

	(*r.Get())[0] = 42
	assert.Equal(t, []uint64{42, 2, 3}, *c.Get())
}

func TestRef_UseAfterReleasePanics(t *testing.T) {
	r := NewRef("gone")
	require.True(t, r.Release())

	assert.Panics(t, func() { r.Get() })
	assert.Panics(t, func() { r.Clone() })
	assert.Panics(t, func() { r.Release() })
}

func TestRef_ZeroValuePanics(t *testing.T) {
	var r Ref[string]

	assert.Equal(t, int64(0), r.Count())
	assert.Panics(t, func() { r.Get() })
}

func TestSyncRef_CloneRelease(t *testing.T) {
	r := NewSyncRef("heapable")
	assert.Equal(t, int64(1), r.Count())

	c := r.Clone()
	assert.Equal(t, int64(2), c.Count())
	assert.Same(t, r.Get(), c.Get())

	assert.False(t, c.Release())
	assert.True(t, r.Release())
}

func TestSyncRef_ConcurrentOwners(t *testing.T) {
	const owners = 64

	r := NewSyncRef("concurrent")

	clones := make([]SyncRef[string], owners)
	for i := range clones {
		clones[i] = r.Clone()
	}

	var wg sync.WaitGroup

	var mu sync.Mutex

	lastSeen := 0

	for i := range clones {
		wg.Add(1)

		go func(c SyncRef[string]) {
			defer wg.Done()

			if c.Release() {
				mu.Lock()
				lastSeen++
				mu.Unlock()
			}
		}(clones[i])
	}

	wg.Wait()

	// The original owner still holds the value.
	assert.Equal(t, int64(1), r.Count())
	assert.Equal(t, 0, lastSeen)

	// Exactly one release observes the final drop.
	assert.True(t, r.Release())
}
