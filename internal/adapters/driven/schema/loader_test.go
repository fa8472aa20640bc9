package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resp2seed/internal/core/domain"
)

const tomlTemplates = `
[[template]]
type = 50
name = "Short Station"

  [[template.field]]
  id = 3
  name = "Network"
  kind = "fixed"
  length = 2

  [[template.field]]
  id = 16
  name = "Station"
  kind = "variable"
  length = 5

  [[template.field]]
  kind = "loop"
  name = "Flags"
  repeat = 2

    [[template.field.field]]
    id = 17
    name = "Flag"
    length = 1
    default = "N"

[[template]]
type = 99
name = "Custom Lookup"
category = "lookup"

  [[template.field]]
  id = 3
  name = "Code"
  length = 3
  default = "0"
`

const yamlTemplates = `
templates:
  - type: 57
    name: Decimation
    fields:
      - id: 3
        name: Stage sequence number
        length: 2
        default: "0"
      - kind: loop
        name: Pairs
        repeat: 3
        fields:
          - id: 4
            name: Value
            kind: variable
            length: 10
`

func TestDecode_TOML(t *testing.T) {
	templates, err := Decode(FormatTOML, []byte(tomlTemplates))
	require.NoError(t, err)
	require.Len(t, templates, 2)

	station := templates[0]
	assert.Equal(t, domain.GroupType(50), station.Type)
	assert.Equal(t, domain.CategoryEntity, station.Category)
	require.Len(t, station.Fields, 3)
	assert.Equal(t, domain.FieldVariable, station.Fields[1].Kind)
	assert.Equal(t, domain.FieldLoop, station.Fields[2].Kind)
	assert.Equal(t, 2, station.Fields[2].Repeat)
	require.Len(t, station.Fields[2].Fields, 1)
	assert.Equal(t, "N", station.Fields[2].Fields[0].Default)

	assert.Equal(t, domain.CategoryLookup, templates[1].Category)
}

func TestDecode_YAML(t *testing.T) {
	templates, err := Decode(FormatYAML, []byte(yamlTemplates))
	require.NoError(t, err)
	require.Len(t, templates, 1)

	flat := templates[0].Flattened()
	assert.Equal(t, domain.CategoryEntity, flat.Category)
	require.Len(t, flat.Fields, 4)
	assert.Equal(t, 4, flat.Fields[3].ID)
	assert.Equal(t, domain.FieldVariable, flat.Fields[3].Kind)
}

func TestDecode_BadKind(t *testing.T) {
	_, err := Decode(FormatYAML, []byte("templates:\n  - type: 50\n    fields:\n      - id: 3\n        kind: bitmap\n"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_BadCategory(t *testing.T) {
	_, err := Decode(FormatTOML, []byte("[[template]]\ntype = 50\ncategory = \"timespan\"\n"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode(FormatTOML, []byte("[[template"))

	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b/templates.TOML")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	f, err = FormatOf("templates.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatOf("templates.json")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_LoadFilesOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "station.toml")
	yamlPath := filepath.Join(dir, "decimation.yaml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlTemplates), 0600))
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlTemplates), 0600))

	r := Builtin()
	before := r.Len()

	require.NoError(t, r.LoadFiles(tomlPath, yamlPath))

	assert.Equal(t, before+1, r.Len())
	tmpl, err := r.Template(50)
	require.NoError(t, err)
	assert.Equal(t, "Short Station", tmpl.Name)
	assert.Len(t, tmpl.Fields, 4)

	cat, err := r.CategoryOf(99)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLookup, cat)
}

func TestRegistry_LoadFilesMissing(t *testing.T) {
	r := Builtin()

	err := r.LoadFiles(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
