// Package schemas provides JSON Schema validation for the canonical
// agent payloads. Validation is diagnostic only: normalization never
// gates on it (every field is optional on the wire), but verbose CLI
// output and tests use it to flag upstream data-quality problems.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by Validate.
const (
	SchemaAssessment = "assessment"
	SchemaWorkforce  = "workforce"
	SchemaForecast   = "forecast"
)

// FieldError is a single validation finding at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the findings for one payload.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("payload validation failed:\n")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// Validate checks a JSON document against the named schema. A nil error
// means the document conforms; a *ValidationError lists every finding.
func Validate(schemaName string, document []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", schemaName, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
