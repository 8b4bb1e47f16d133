package main

import (
	"context"
	"fmt"

	"github.com/jonathan/skills-copilot/internal/agent"
	"github.com/jonathan/skills-copilot/internal/config"
	"github.com/jonathan/skills-copilot/internal/dashboard"
)

// Shared flags, applied on top of an optional config file.
var (
	flagConfigPath string
	flagAPIKey     string
	flagSampleData bool
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolVar(&flagSampleData, "sample-data", false, "Use built-in sample data instead of calling agents")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// loadSessionConfig merges the config file, environment, and flags.
// Flags win over the environment, which wins over the file.
func loadSessionConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagSampleData {
		cfg.SampleData = true
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession builds a dashboard controller from the merged config. In
// sample-data mode no Gemini client is created and the returned cleanup
// is a no-op; otherwise the API key is required.
func newSession(ctx context.Context) (*dashboard.Controller, *config.Config, func(), error) {
	cfg, err := loadSessionConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.SampleData {
		controller := dashboard.NewController(nil)
		controller.SetSampleData(true)
		return controller, cfg, func() {}, nil
	}

	if cfg.APIKey == "" {
		return nil, nil, nil, fmt.Errorf("API key is required: set GEMINI_API_KEY, use --api-key, or pass --sample-data")
	}

	invoker, err := agent.NewGeminiInvoker(ctx, cfg.APIKey, cfg.Models)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	controller := dashboard.NewController(invoker)
	cleanup := func() { _ = invoker.Close() }
	return controller, cfg, cleanup, nil
}
