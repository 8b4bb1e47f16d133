// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/skills-copilot/internal/agent"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key (env GEMINI_API_KEY wins)
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed formatted output
	SampleData bool   `json:"sample_data,omitempty"` // Start with the sample-data override active

	// Server
	Port int `json:"port,omitempty"` // HTTP port for serve mode

	// Models maps agent ids (orchestrator, workforce-intelligence,
	// predictive-forecast) to Gemini model names.
	Models map[string]string `json:"models,omitempty"`
}

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

// ApplyEnv fills API key and port from the environment when unset in
// the file. Environment values win over file values for the API key so
// secrets stay out of config files.
func (c *Config) ApplyEnv() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.APIKey = key
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0,65535]")
	}

	for agentID := range c.Models {
		if !agent.KnownAgent(agentID) {
			return fmt.Errorf("config error: 'models' references unknown agent %q", agentID)
		}
	}

	return nil
}
