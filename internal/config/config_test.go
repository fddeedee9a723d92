package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"resume": "",
		"snippet_width": 60,
		"session_ttl_mins": 15,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 60, cfg.SnippetWidth)
	assert.Equal(t, 15, cfg.SessionTTLMins)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{SnippetWidth: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{SessionTTLMins: -5}
	assert.Error(t, cfg.Validate())

	cfg = &Config{EmbedParallel: -2}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{Resume: "/nonexistent/resume.pdf"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")

	cfg = &Config{Gazetteer: "/nonexistent/phrases.json"}
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gazetteer file not found")
}

func TestValidate_ExistingFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte("text"), 0644))

	cfg := &Config{Resume: tmpFile}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Resume: "mine.pdf", SnippetWidth: 30}
	defaults := Config{Resume: "default.pdf", Job: "job.txt", SnippetWidth: 40, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "mine.pdf", merged.Resume)
	assert.Equal(t, "job.txt", merged.Job)
	assert.Equal(t, 30, merged.SnippetWidth)
	assert.True(t, merged.Verbose)
}

func TestLoadEnv_APIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")
	t.Setenv("RESUME_MATCHER_VERBOSE", "true")

	cfg := &Config{}
	cfg.LoadEnv()

	assert.Equal(t, "test-key-123", cfg.APIKey)
	assert.True(t, cfg.Verbose)
}
