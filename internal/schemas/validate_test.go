package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "ok", "count": 3}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"count": "three"}`)

	err := ValidateJSON(schemaPath, jsonPath)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateJSON_MissingSchema(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(dir, "absent.json"), jsonPath)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_MissingDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestResolvePath_BundledSchema(t *testing.T) {
	// Running from internal/schemas, the repo root is two levels up.
	path := ResolvePath("schemas/skill_db.schema.json")

	require.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
}

func TestResolvePath_Missing(t *testing.T) {
	assert.Empty(t, ResolvePath("schemas/no_such_file.json"))
}
