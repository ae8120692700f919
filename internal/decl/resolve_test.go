package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicewrap-generator/internal/diagnostic"
)

func TestResolve_Text(t *testing.T) {
	var diags diagnostic.Diagnostics

	d, ok := Resolve("ShortStr", "string", nil, "short.go:4", &diags)
	require.True(t, ok)

	assert.Equal(t, "ShortStr", d.Name)
	assert.Equal(t, SeqText, d.Kind)
	assert.Equal(t, "string", d.Sequence())
	assert.Empty(t, d.Containers)
	assert.Equal(t, "short.go:4", d.Pos)
}

func TestResolve_Elements(t *testing.T) {
	var diags diagnostic.Diagnostics

	d, ok := Resolve("TinySlice", "[]uint64", []string{"sync", "owned", "shared"}, "", &diags)
	require.True(t, ok)

	assert.Equal(t, SeqElements, d.Kind)
	assert.Equal(t, "uint64", d.Elem)
	assert.Equal(t, "[]uint64", d.Sequence())

	// Containers come back in canonical order regardless of request order.
	assert.Equal(t, []Container{ContainerOwned, ContainerShared, ContainerSync}, d.Containers)
	assert.True(t, d.HasContainer(ContainerShared))
}

func TestResolve_UnsupportedSequences(t *testing.T) {
	unsupported := []string{
		"",
		"int",
		"map[string]int",
		"[]*Node",
		"[][]byte",
		"[]pkg.Type",
		"[]List[int]",
		"*string",
	}

	for _, seq := range unsupported {
		t.Run(seq, func(t *testing.T) {
			var diags diagnostic.Diagnostics

			_, ok := Resolve("W", seq, nil, "", &diags)
			assert.False(t, ok)
			require.True(t, diags.HasErrors())
			assert.Equal(t, diagnostic.CodeUnsupportedSequence, diags.Errors[0].Code)
		})
	}
}

func TestResolve_UnknownContainerSuggests(t *testing.T) {
	var diags diagnostic.Diagnostics

	_, ok := Resolve("W", "string", []string{"shard"}, "", &diags)
	assert.False(t, ok)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnknownContainer, diags.Errors[0].Code)
	assert.Equal(t, []string{"shared"}, diags.Errors[0].Suggestions)
	assert.Contains(t, diags.Errors[0].String(), "did you mean shared?")
}

func TestResolve_DuplicateContainer(t *testing.T) {
	var diags diagnostic.Diagnostics

	_, ok := Resolve("W", "string", []string{"owned", "owned"}, "", &diags)
	assert.False(t, ok)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateContainer, diags.Errors[0].Code)
}

func TestResolve_BadName(t *testing.T) {
	var diags diagnostic.Diagnostics

	_, ok := Resolve("", "string", nil, "", &diags)
	assert.False(t, ok)

	_, ok = Resolve("1bad", "string", nil, "", &diags)
	assert.False(t, ok)
}

func TestParseContainer(t *testing.T) {
	for i, name := range ContainerNames {
		c, ok := ParseContainer(name)
		require.True(t, ok)
		assert.Equal(t, Container(i), c)
		assert.Equal(t, name, c.String())
	}

	_, ok := ParseContainer("box")
	assert.False(t, ok)
}
