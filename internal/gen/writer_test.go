package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	files := []GeneratedFile{
		{Filename: "a_slicewrap.go", Content: []byte("package a\n")},
		{Filename: "b_slicewrap.go", Content: []byte("package a\n")},
	}

	require.NoError(t, WriteFiles(files, dir))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDebugUnformatted(dir, "broken_slicewrap.go", []byte("package {")))

	got, err := os.ReadFile(filepath.Join(dir, "broken_slicewrap.unformatted"))
	require.NoError(t, err)
	assert.Equal(t, "package {", string(got))

	// Missing arguments are a no-op, not an error.
	assert.NoError(t, WriteDebugUnformatted("", "", nil))
}
