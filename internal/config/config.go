// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. CLI flags override file values; missing values use defaults.
type Config struct {
	// Document is the resume file to scan. Required after merging.
	Document string `json:"document,omitempty" validate:"required"`
	// Output is the report file path.
	Output string `json:"output,omitempty" validate:"required"`
	// SkillsDB overrides the bundled skill taxonomy database.
	SkillsDB string `json:"skills_db,omitempty" validate:"omitempty,file"`

	// APIKey enables the Gemini-backed phrase segmenter.
	APIKey string `json:"api_key,omitempty"`
	// GeminiModel overrides the default segmentation model.
	GeminiModel string `json:"gemini_model,omitempty"`

	// Renderers
	HTML bool `json:"html,omitempty"` // also write an HTML report
	PDF  bool `json:"pdf,omitempty"`  // also print the HTML report to PDF

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`
	Debug    bool `json:"debug,omitempty"`
	JSONLogs bool `json:"json_logs,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the merged configuration. Field rules live in the struct
// tags; this translates validator output into user-facing messages.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	for _, fieldErr := range fieldErrors {
		switch {
		case fieldErr.Field() == "Document" && fieldErr.Tag() == "required":
			return fmt.Errorf("config error: a document path is required")
		case fieldErr.Field() == "Output" && fieldErr.Tag() == "required":
			return fmt.Errorf("config error: 'output' must not be empty")
		case fieldErr.Field() == "SkillsDB" && fieldErr.Tag() == "file":
			return fmt.Errorf("config error: skills database not found: %s", c.SkillsDB)
		}
	}
	return err
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged: CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.SkillsDB == "" {
		result.SkillsDB = defaults.SkillsDB
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}

	return result
}
