package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfigFile(t, `{
		"resume_dir": "/data/resumes",
		"job_description": "/data/job.txt",
		"workers": 4,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/resumes", cfg.ResumeDir)
	assert.Equal(t, "/data/job.txt", cfg.JobDescription)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, "{not json")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("jd"), 0644))

	cfg := &Config{
		JobDescription:    jobPath,
		JobDescriptionURL: "https://example.com/job",
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingJobDescriptionFile(t *testing.T) {
	cfg := &Config{JobDescription: filepath.Join(t.TempDir(), "missing.txt")}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidate_RejectsBadURL(t *testing.T) {
	cfg := &Config{JobDescriptionURL: "::not-a-url::"}

	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsWorkersOutOfRange(t *testing.T) {
	cfg := &Config{Workers: 500}

	require.Error(t, cfg.Validate())
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{ResumeDir: "/override", Verbose: true}
	defaults := Config{
		ResumeDir: "/default/resumes",
		Output:    "resume_scores.xlsx",
		Workers:   1,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "/override", merged.ResumeDir)
	assert.Equal(t, "resume_scores.xlsx", merged.Output)
	assert.Equal(t, 1, merged.Workers)
	assert.True(t, merged.Verbose)
}
