package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slicewrap-generator/internal/diagnostic"
)

const exampleManifest = `
version: "1"
package: idents
wrappers:
  - name: UserName
    sequence: string
    doc: UserName is a validated account name.
    containers: [owned, shared]
    annotations:
      - "//nolint:recvcheck"
  - name: rawKey
    sequence: "[]byte"
    containers: [sync]
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(exampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version)
	assert.Equal(t, "idents", m.Package)
	require.Len(t, m.Wrappers, 2)
	assert.Equal(t, "UserName", m.Wrappers[0].Name)
	assert.Equal(t, []string{"sync"}, m.Wrappers[1].Containers)
}

func TestParseManifest_DefaultVersion(t *testing.T) {
	m, err := ParseManifest([]byte("package: p\nwrappers: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", m.Version)
}

func TestParseManifest_BadYAML(t *testing.T) {
	_, err := ParseManifest([]byte("wrappers: [unterminated"))
	assert.Error(t, err)
}

func TestManifestResolve(t *testing.T) {
	m, err := ParseManifest([]byte(exampleManifest))
	require.NoError(t, err)

	var diags diagnostic.Diagnostics

	decls := m.Resolve(&diags)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.Err())
	require.Len(t, decls, 2)

	un := decls[0]
	assert.Equal(t, "UserName", un.Name)
	assert.Equal(t, SeqText, un.Kind)
	assert.True(t, un.EmitType)
	assert.Equal(t, "UserName is a validated account name.", un.Doc)
	assert.Equal(t, []string{"//nolint:recvcheck"}, un.Annotations)
	assert.Equal(t, []Container{ContainerOwned, ContainerShared}, un.Containers)

	rk := decls[1]
	assert.Equal(t, "rawKey", rk.Name)
	assert.Equal(t, "byte", rk.Elem)
}

func TestManifestResolve_MissingPackage(t *testing.T) {
	m := &Manifest{Wrappers: []WrapperDef{{Name: "W", Sequence: "string"}}}

	var diags diagnostic.Diagnostics

	m.Resolve(&diags)
	assert.True(t, diags.HasErrors())
}

func TestManifestResolve_DuplicateWrapper(t *testing.T) {
	m := &Manifest{
		Package: "p",
		Wrappers: []WrapperDef{
			{Name: "W", Sequence: "string"},
			{Name: "W", Sequence: "[]byte"},
		},
	}

	var diags diagnostic.Diagnostics

	decls := m.Resolve(&diags)
	assert.Len(t, decls, 1)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeDuplicateWrapper, diags.Errors[0].Code)
}

func TestManifestResolve_CaseVariantWrapper(t *testing.T) {
	m := &Manifest{
		Package: "p",
		Wrappers: []WrapperDef{
			{Name: "Key", Sequence: "string"},
			{Name: "key", Sequence: "[]byte"},
		},
	}

	var diags diagnostic.Diagnostics

	decls := m.Resolve(&diags)
	assert.Len(t, decls, 1)

	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeDuplicateWrapper, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "only in case")
}

func TestManifestResolve_BadAnnotation(t *testing.T) {
	m := &Manifest{
		Package: "p",
		Wrappers: []WrapperDef{
			{Name: "W", Sequence: "string", Annotations: []string{"not a comment"}},
		},
	}

	var diags diagnostic.Diagnostics

	m.Resolve(&diags)
	require.True(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeBadDirective, diags.Errors[0].Code)
}
