package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facetgrid/pkg/types"
)

const sampleJSON = `{
  "attrs": {"id": "page"},
  "children": [
    {"attrs": {"id": "grid", "data-filter-grid": ""}, "children": [
      {"attrs": {"id": "post-1", "data-group": "pro", "data-category": "Ernährung|Fitness"}, "text": "Eins"}
    ]}
  ]
}`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	grid := root.Find(types.ParseSelector("data-filter-grid"))
	require.NotNil(t, grid)
	require.Len(t, grid.Children, 1)
	assert.Equal(t, "Eins", grid.Children[0].Text)

	group, ok := grid.Children[0].Attr("data-group")
	assert.True(t, ok)
	assert.Equal(t, "pro", group)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("{"))
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	root, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	data, err := Marshal(root)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, root, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
