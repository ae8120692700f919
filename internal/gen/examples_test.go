package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicewrap-generator/internal/decl"
)

// TestExamplesUpToDate regenerates the checked-in output of the example
// packages and compares it byte for byte, so template edits cannot drift
// away from what the examples ship.
func TestExamplesUpToDate(t *testing.T) {
	cases := []struct {
		pkg   string
		decls []decl.Decl
	}{
		{
			pkg: "shortstr",
			decls: []decl.Decl{
				{Name: "Simple", Kind: decl.SeqText},
				{Name: "ShortStr", Kind: decl.SeqText},
			},
		},
		{
			pkg: "heapable",
			decls: []decl.Decl{
				{
					Name: "Heapable",
					Kind: decl.SeqText,
					Containers: []decl.Container{
						decl.ContainerOwned,
						decl.ContainerShared,
					},
				},
			},
		},
		{
			pkg: "tinyslice",
			decls: []decl.Decl{
				{
					Name: "TinySlice",
					Kind: decl.SeqElements,
					Elem: "uint64",
					Containers: []decl.Container{
						decl.ContainerOwned,
						decl.ContainerShared,
						decl.ContainerSync,
					},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.pkg, func(t *testing.T) {
			files, err := Generate(tc.pkg, tc.decls)
			require.NoError(t, err)
			require.Len(t, files, len(tc.decls))

			for _, f := range files {
				path := filepath.Join("..", "..", "examples", tc.pkg, f.Filename)

				want, err := os.ReadFile(path)
				require.NoError(t, err)

				assert.Equal(t, string(want), string(f.Content), path)
			}
		})
	}
}
