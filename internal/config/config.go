// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`    // Path to resume file (txt, pdf, or html)
	Job       string `json:"job,omitempty"`       // Path to job posting text file
	Gazetteer string `json:"gazetteer,omitempty"` // Path to a custom keyword phrase list

	// Behavior
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed debug information
	SnippetWidth    int    `json:"snippet_width,omitempty"`    // Context window around first keyword occurrence
	SessionTTLMins  int    `json:"session_ttl_mins,omitempty"` // Minutes before an idle session expires
	EmbedParallel   int    `json:"embed_parallel,omitempty"`   // Concurrent embedding calls per ranking request
	DisableSemantic bool   `json:"disable_semantic,omitempty"` // Skip the LLM matching fallback (exact-only)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// LoadEnv overlays environment variables onto the config, loading a .env
// file first if one exists. Environment values win over file values.
func (c *Config) LoadEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("RESUME_MATCHER_VERBOSE"); v != "" {
		c.Verbose, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RESUME_MATCHER_SESSION_TTL_MINS"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil {
			c.SessionTTLMins = mins
		}
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SnippetWidth < 0 {
		return fmt.Errorf("config error: 'snippet_width' must be non-negative")
	}
	if c.SessionTTLMins < 0 {
		return fmt.Errorf("config error: 'session_ttl_mins' must be non-negative")
	}
	if c.EmbedParallel < 0 {
		return fmt.Errorf("config error: 'embed_parallel' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Gazetteer != "" {
		if _, err := os.Stat(c.Gazetteer); os.IsNotExist(err) {
			return fmt.Errorf("config error: gazetteer file not found: %s", c.Gazetteer)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Gazetteer == "" {
		result.Gazetteer = defaults.Gazetteer
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SnippetWidth == 0 {
		result.SnippetWidth = defaults.SnippetWidth
	}
	if result.SessionTTLMins == 0 {
		result.SessionTTLMins = defaults.SessionTTLMins
	}
	if result.EmbedParallel == 0 {
		result.EmbedParallel = defaults.EmbedParallel
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.DisableSemantic {
		result.DisableSemantic = defaults.DisableSemantic
	}

	return result
}
