// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	ResumeDir         string `json:"resume_dir,omitempty"`          // Folder containing PDF resumes
	JobDescription    string `json:"job_description,omitempty"`     // Path to job description text file
	JobDescriptionURL string `json:"job_description_url,omitempty" validate:"omitempty,url"` // URL to fetch the job description from

	// Output
	Output string `json:"output,omitempty"` // Path for the scores spreadsheet

	// Behavior
	Workers     int    `json:"workers,omitempty" validate:"omitempty,min=1,max=64"` // Concurrent document workers
	OCRBinary   string `json:"ocr_binary,omitempty"`                                // tesseract executable override
	Verbose     bool   `json:"verbose,omitempty"`                                   // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"`                              // PostgreSQL connection URL
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate mutually exclusive fields
	if c.JobDescription != "" && c.JobDescriptionURL != "" {
		return fmt.Errorf("config error: 'job_description' and 'job_description_url' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.JobDescription != "" {
		if _, err := os.Stat(c.JobDescription); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescription)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.JobDescriptionURL == "" {
		result.JobDescriptionURL = defaults.JobDescriptionURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.OCRBinary == "" {
		result.OCRBinary = defaults.OCRBinary
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
