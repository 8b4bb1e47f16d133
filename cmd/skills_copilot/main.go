// Package main provides the entry point for the Skills Copilot CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skills_copilot",
	Short: "Workforce skills dashboard",
	Long:  "Skills Copilot runs AI-driven skills assessments, workforce intelligence reports, and talent forecasts against a multi-agent backend, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
