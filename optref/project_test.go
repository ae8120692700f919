package optref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type name string

type row []uint64

func TestInner_NilPropagates(t *testing.T) {
	assert.Nil(t, Inner[string, name](nil))
	assert.Nil(t, Inner[[]uint64, row](nil))
}

func TestInner_SameAddress(t *testing.T) {
	w := name("foo")
	s := Inner[string](&w)

	require.NotNil(t, s)
	assert.Equal(t, "foo", *s)

	w = "bar"
	assert.Equal(t, "bar", *s)
}

func TestInner_MutationVisibleThroughWrapper(t *testing.T) {
	w := row{1, 2, 3}
	s := Inner[[]uint64](&w)

	require.NotNil(t, s)
	(*s)[1] = 42

	assert.Equal(t, row{1, 42, 3}, w)
}
