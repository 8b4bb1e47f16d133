package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skills-copilot/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <assessment|workforce|forecast> <payload.json>",
	Short: "Check an agent payload file against its JSON schema",
	Long: `Validates a saved agent payload against the canonical schema for its kind.
Useful when authoring sample payloads or debugging agent contract drift.`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	schemaName, path := args[0], args[1]

	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	if err := schemas.Validate(schemaName, document); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: valid %s payload\n", path, schemaName)
	return nil
}
