package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gearboxYAML = `
parts:
  - name: housing
    box: {min: [0, 0, 0], max: [10, 4, 4]}
  - name: gear
    kind: mesh
    points: [[0, 0, 0], [1, 1, 1]]
assemblies:
  - name: shaft
    components:
      - ref: gear
        name: gear-a
        translation: [1, 0, 0]
      - ref: gear
        name: gear-b
        translation: [3, 0, 0]
        rotation: {axis: [0, 0, 1], degrees: 90}
  - name: gearbox
    components:
      - ref: housing
      - ref: shaft
        translation: [0, 2, 2]
root: gearbox
`

func TestAssemblyDef_Build(t *testing.T) {
	def, err := ParseAssemblyDef([]byte(gearboxYAML))
	require.NoError(t, err)

	root, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, "gearbox", root.Name)
	assert.True(t, root.IsAssembly())
	require.Len(t, root.Components, 2)

	housingRef := root.Components[0]
	assert.True(t, housingRef.IsReference())
	assert.Equal(t, "housing", housingRef.Name)
	assert.Equal(t, ShapeSolid, housingRef.Referred.Shape.Kind)
	assert.Len(t, housingRef.Referred.Shape.Points, 8)

	shaft := root.Components[1].Referred
	require.Len(t, shaft.Components, 2)
	assert.Same(t, shaft.Components[0].Referred, shaft.Components[1].Referred, "gear must be shared")
	assert.Equal(t, ShapeMesh, shaft.Components[0].Referred.Shape.Kind)
}

func TestAssemblyDef_Errors(t *testing.T) {
	def := &AssemblyDef{Root: "missing"}
	_, err := def.Build()
	assert.ErrorIs(t, err, ErrUnknownPart)

	def = &AssemblyDef{
		Assemblies: []AssemblyNodeDef{
			{Name: "a", Components: []ComponentDef{{Ref: "b"}}},
			{Name: "b", Components: []ComponentDef{{Ref: "a"}}},
		},
		Root: "a",
	}
	_, err = def.Build()
	assert.ErrorIs(t, err, ErrAssemblyCycle)

	def = &AssemblyDef{Parts: []PartDef{{Name: "p", Kind: "nurbs"}}, Root: "p"}
	_, err = def.Build()
	assert.ErrorIs(t, err, ErrInvalidPartDef)
}

func TestLoadAssemblyDef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gearboxYAML), 0o644))

	def, err := LoadAssemblyDef(path)
	require.NoError(t, err)
	assert.Equal(t, "gearbox", def.Root)
	assert.Len(t, def.Parts, 2)

	_, err = LoadAssemblyDef(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
