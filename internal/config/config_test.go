package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"document": "resume.pdf",
		"output": "report.txt",
		"gemini_model": "gemini-2.0-flash-lite",
		"verbose": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf", cfg.Document)
	assert.Equal(t, "report.txt", cfg.Output)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.GeminiModel)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.HTML)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"document": `)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	cfg := Config{Document: "resume.pdf", Output: "report.txt"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingDocument(t *testing.T) {
	cfg := Config{Output: "report.txt"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "a document path is required")
}

func TestValidate_MissingOutput(t *testing.T) {
	cfg := Config{Document: "resume.pdf"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'output' must not be empty")
}

func TestValidate_SkillsDBMustExist(t *testing.T) {
	cfg := Config{
		Document: "resume.pdf",
		Output:   "report.txt",
		SkillsDB: filepath.Join(t.TempDir(), "absent.json"),
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills database not found")
}

func TestValidate_ExistingSkillsDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "skills.json")
	require.NoError(t, os.WriteFile(dbPath, []byte(`{"skills": []}`), 0o644))

	cfg := Config{Document: "resume.pdf", Output: "report.txt", SkillsDB: dbPath}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Document: "resume.pdf", Verbose: true}

	merged := cfg.MergeWithDefaults(Config{
		Output:      "ats_report.txt",
		GeminiModel: "gemini-2.0-flash-lite",
	})

	assert.Equal(t, "resume.pdf", merged.Document)
	assert.Equal(t, "ats_report.txt", merged.Output)
	assert.Equal(t, "gemini-2.0-flash-lite", merged.GeminiModel)
	assert.True(t, merged.Verbose)
}

func TestMergeWithDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := Config{Document: "resume.pdf", Output: "custom.txt"}

	merged := cfg.MergeWithDefaults(Config{Output: "ats_report.txt"})

	assert.Equal(t, "custom.txt", merged.Output)
}
