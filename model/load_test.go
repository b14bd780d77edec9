package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/idlgen/errors"
)

const yamlModel = `format: "1.2"
modules:
  - name: core
    notes: Shared types.
    types:
      - name: Node
        kind: union
        notes: A tree node.
        attributes:
          - name: leaf
            type: long
          - name: children
            type: Nodes
      - name: Nodes
        kind: typedef
        attributes:
          - name: items
            type: Node
    modules:
      - name: data
        types:
          - id: custom-id
            name: Record
            kind: struct
            attributes:
              - name: owner
                type: core::Node
                stereotypes: [ptr]
              - name: index
                type: Nodes
                key: string
                map: true
              - name: lookup
                type: core::Nodes
                key: core::Node
                map: true
              - name: tags
                type: Unknown
                collection: true
                optional: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "model.yaml", yamlModel)

	snapshot, err := LoadFile(path, DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, "1.2", snapshot.Format)
	assert.Equal(t, "Shared types.", snapshot.Modules[0].Notes)

	nodes := snapshot.Nodes()
	require.Len(t, nodes, 3)

	node := nodes[0]
	assert.Equal(t, "core::Node", node.ID)
	assert.Equal(t, KindUnion, node.Kind)
	assert.Equal(t, "A tree node.", node.Notes)
	assert.Equal(t, []string{"core"}, node.Namespace)
	require.Len(t, node.Attributes, 2)
	assert.True(t, node.Attributes[0].Primitive)
	// Unqualified reference resolves inside the same module
	assert.Equal(t, "core::Nodes", node.Attributes[1].Type)

	record := nodes[2]
	assert.Equal(t, "custom-id", record.ID)
	assert.Equal(t, "core::data", record.Module())
	require.Len(t, record.Attributes, 4)
	assert.True(t, record.Attributes[0].Indirect)
	// "Nodes" does not exist in core::data, so it stays as written
	assert.Equal(t, "Nodes", record.Attributes[1].Type)
	assert.Equal(t, "", record.Attributes[1].KeyType, "primitive key produces no reference")
	assert.Equal(t, "core::Node", record.Attributes[2].KeyType)
	assert.True(t, record.Attributes[3].Collection)
	assert.True(t, record.Attributes[3].Optional)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "model.json", `{
  "modules": [
    {"name": "core", "types": [
      {"name": "A", "kind": "struct", "attributes": [{"name": "b", "type": "B"}]},
      {"name": "B", "kind": "enum"}
    ]}
  ]
}`)

	snapshot, err := LoadFile(path, DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, DefaultFormat, snapshot.Format)

	nodes := snapshot.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, "core::B", nodes[0].Attributes[0].Type)
	assert.Equal(t, KindEnum, nodes[1].Kind)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "model.toml", `format = "1.0"

[[modules]]
name = "msg"

[[modules.types]]
name = "Header"
kind = "struct"

[[modules.types.attributes]]
name = "stamp"
type = "unsigned long long"
`)

	snapshot, err := LoadFile(path, DefaultLoadOptions())
	require.NoError(t, err)

	nodes := snapshot.Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "msg::Header", nodes[0].ID)
	require.Len(t, nodes[0].Attributes, 1)
	assert.True(t, nodes[0].Attributes[0].Primitive)
}

func TestLoadFileMapKeyWithPrimitiveValue(t *testing.T) {
	path := writeFile(t, "model.yaml", `modules:
  - name: core
    types:
      - name: Color
        kind: enum
      - name: Table
        kind: struct
        attributes:
          - name: by_color
            type: long
            key: Color
            map: true
          - name: by_ghost
            type: long
            key: Ghost
            map: true
`)

	snapshot, err := LoadFile(path, DefaultLoadOptions())
	require.NoError(t, err)

	table := snapshot.Nodes()[1]
	require.Len(t, table.Attributes, 2)
	byColor := table.Attributes[0]
	assert.True(t, byColor.Primitive)
	assert.Equal(t, "core::Color", byColor.KeyType)
	assert.Equal(t, []string{"core::Color"}, byColor.References())
	// Unknown keys are kept for the resolver to report
	assert.Equal(t, []string{"Ghost"}, table.Attributes[1].References())
}

func TestLoadFilePrefersModuleLocalType(t *testing.T) {
	path := writeFile(t, "model.yaml", `modules:
  - name: other
    types:
      - id: Node
        name: Elsewhere
        kind: struct
  - name: core
    types:
      - name: Node
        kind: struct
      - name: User
        kind: struct
        attributes:
          - name: n
            type: Node
`)

	snapshot, err := LoadFile(path, DefaultLoadOptions())
	require.NoError(t, err)

	nodes := snapshot.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "Node", nodes[0].ID)
	user := nodes[2]
	require.Equal(t, "core::User", user.ID)
	assert.Equal(t, "core::Node", user.Attributes[0].Type)
}

func TestLoadFileCustomPrimitives(t *testing.T) {
	path := writeFile(t, "model.yaml", `modules:
  - name: core
    types:
      - name: A
        kind: struct
        attributes:
          - name: when
            type: Timestamp
`)

	opts := DefaultLoadOptions()
	opts.PrimitiveTypes = append(opts.PrimitiveTypes, "Timestamp")

	snapshot, err := LoadFile(path, opts)
	require.NoError(t, err)
	assert.True(t, snapshot.Nodes()[0].Attributes[0].Primitive)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{
			name:    "unsupported extension",
			file:    "model.xml",
			content: "<model/>",
			want:    errors.ErrUnsupportedFormat,
		},
		{
			name:    "unsupported format version",
			file:    "model.yaml",
			content: "format: \"2.0\"\nmodules: []\n",
			want:    errors.ErrUnsupportedFormat,
		},
		{
			name:    "malformed format version",
			file:    "model.yaml",
			content: "format: latest\nmodules: []\n",
			want:    errors.ErrInvalidInput,
		},
		{
			name:    "unknown kind",
			file:    "model.yaml",
			content: "modules:\n  - name: core\n    types:\n      - name: A\n        kind: class\n",
			want:    errors.ErrInvalidInput,
		},
		{
			name:    "unknown field",
			file:    "model.yaml",
			content: "modules:\n  - name: core\n    colour: red\n",
			want:    errors.ErrInvalidInput,
		},
		{
			name:    "module without name",
			file:    "model.json",
			content: `{"modules": [{"types": []}]}`,
			want:    errors.ErrInvalidInput,
		},
		{
			name:    "type without name",
			file:    "model.yaml",
			content: "modules:\n  - name: core\n    types:\n      - kind: struct\n",
			want:    errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := LoadFile(path, DefaultLoadOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), DefaultLoadOptions())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.UnwrapAll(err)))
}
