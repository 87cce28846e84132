package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscquery-protocol/oscquery-go/pkg/model"
)

const sampleManifest = `
name: My OSC Server
osc_ip: 127.0.0.1
osc_port: 9000
extensions: [ACCESS, VALUE, RANGE, DESCRIPTION, UNIT]
endpoints:
  - path: /endpoint1
    type: f
    value: 0.0
    access: readwrite
    description: This is endpoint1
    unit: distance.cm
    min: 0
    max: 100
  - path: /endpoint2
    type: i
    value: 0
    access: readonly
    description: This is endpoint2
  - path: /synth/enabled
    type: T
    value: true
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "My OSC Server", m.Name)
	assert.Equal(t, "127.0.0.1", m.OSCIP)
	assert.Equal(t, uint16(9000), m.OSCPort)
	assert.Len(t, m.Endpoints, 3)
	assert.Equal(t, "/endpoint1", m.Endpoints[0].Path)
	require.NotNil(t, m.Endpoints[0].Min)
	assert.Equal(t, float32(0), *m.Endpoints[0].Min)
	require.NotNil(t, m.Endpoints[0].Max)
	assert.Equal(t, float32(100), *m.Endpoints[0].Max)
}

func TestBuildTree(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	tree, err := m.BuildTree()
	require.NoError(t, err)

	info := tree.HostInfo()
	require.NotNil(t, info)
	assert.Equal(t, "My OSC Server", info.Name)
	assert.True(t, info.Extensions.Access)
	assert.True(t, info.Extensions.Unit)
	assert.False(t, info.Extensions.Listen)

	node, err := tree.Lookup("/endpoint1")
	require.NoError(t, err)
	leaf, ok := node.(*model.Leaf)
	require.True(t, ok)
	assert.Equal(t, "f", leaf.TypeTag())
	assert.Equal(t, model.AccessReadWrite, leaf.Access())
	require.Len(t, leaf.Units(), 1)
	assert.Equal(t, "distance.cm", leaf.Units()[0].String())
	require.Len(t, leaf.Ranges(), 1)
	assert.Equal(t, float32(100), leaf.Ranges()[0].Max)

	node, err = tree.Lookup("/endpoint2")
	require.NoError(t, err)
	leaf = node.(*model.Leaf)
	assert.Equal(t, "i", leaf.TypeTag())
	assert.Equal(t, model.AccessReadOnly, leaf.Access())
	assert.Empty(t, leaf.Ranges())

	node, err = tree.Lookup("/synth/enabled")
	require.NoError(t, err)
	leaf = node.(*model.Leaf)
	assert.Equal(t, "T", leaf.TypeTag())
}

func TestBuildTreeAccessNone(t *testing.T) {
	manifest := `
endpoints:
  - path: /locked
    type: i
    value: 1
    access: none
`
	m, err := LoadManifest(writeManifest(t, manifest))
	require.NoError(t, err)

	tree, err := m.BuildTree()
	require.NoError(t, err)

	node, err := tree.Lookup("/locked")
	require.NoError(t, err)
	assert.Equal(t, model.AccessNone, node.Access())

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ACCESS":0`)
}

func TestBuildTreeErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{
			name: "UnknownExtension",
			manifest: `
extensions: [BOGUS]
`,
		},
		{
			name: "UnknownTypeTag",
			manifest: `
endpoints:
  - path: /x
    type: q
    value: 1
`,
		},
		{
			name: "ValueTypeMismatch",
			manifest: `
endpoints:
  - path: /x
    type: i
    value: not a number
`,
		},
		{
			name: "UnknownAccess",
			manifest: `
endpoints:
  - path: /x
    type: i
    value: 1
    access: admin
`,
		},
		{
			name: "UnknownUnit",
			manifest: `
endpoints:
  - path: /x
    type: f
    value: 0.0
    unit: bogus.unit
`,
		},
		{
			name: "HalfOpenRange",
			manifest: `
endpoints:
  - path: /x
    type: f
    value: 0.0
    min: 0
`,
		},
		{
			name: "PathConflict",
			manifest: `
endpoints:
  - path: /x
    type: i
    value: 1
  - path: /x/y
    type: i
    value: 2
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := LoadManifest(writeManifest(t, tc.manifest))
			require.NoError(t, err)
			_, err = m.BuildTree()
			assert.Error(t, err)
		})
	}
}

func TestDemoTree(t *testing.T) {
	tree := demoTree("Demo", "127.0.0.1", 9000)

	for _, path := range []string{"/endpoint1", "/endpoint2", "/synth/volume", "/synth/pan"} {
		_, err := tree.Lookup(path)
		assert.NoError(t, err, "path %s", path)
	}

	node, err := tree.Lookup("/synth")
	require.NoError(t, err)
	_, ok := node.(*model.Group)
	assert.True(t, ok)
}
