// Package normalize reduces untrusted agent reply envelopes to the
// canonical payload types. The upstream envelope shape is inconsistent
// between success paths: the payload may sit under response.result, or
// directly under response, and either may be a JSON-encoded string
// instead of a structured object. Normalization performs the two-stage
// fallback, decodes string-encoded payloads once, and maps whatever
// survives onto the typed model with defensive defaults.
package normalize

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonathan/skills-copilot/internal/types"
)

// ExtractPayload locates the payload inside a reply envelope. It tries
// response.result first; when that is absent, nil, or an empty
// structured value it falls back to response. String candidates get one
// JSON decode attempt, keeping the raw string when decoding fails.
// A nil result means no usable payload was found.
func ExtractPayload(envelope any) any {
	env, ok := envelope.(map[string]any)
	if !ok {
		return nil
	}

	response := env["response"]
	candidate := decodeCandidate(fieldOf(response, "result"))
	if isEmptyValue(candidate) {
		candidate = decodeCandidate(response)
	}
	if isEmptyValue(candidate) {
		return nil
	}
	return candidate
}

// Assessment normalizes an orchestrator reply envelope.
func Assessment(envelope any) (*types.AssessmentResult, error) {
	var out types.AssessmentResult
	if err := decodePayload(envelope, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Workforce normalizes a workforce-intelligence reply envelope.
func Workforce(envelope any) (*types.WorkforceReport, error) {
	var out types.WorkforceReport
	if err := decodePayload(envelope, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast normalizes a predictive-forecast reply envelope.
func Forecast(envelope any) (*types.ForecastResult, error) {
	var out types.ForecastResult
	if err := decodePayload(envelope, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodePayload extracts the payload and maps it onto target. Fields
// with mismatched types are skipped rather than failing the decode;
// only a completely unusable payload is an error.
func decodePayload(envelope any, target any) error {
	payload := ExtractPayload(envelope)
	if payload == nil {
		return &ParseError{Message: "no usable payload in agent reply"}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return &ParseError{Message: "payload is not serializable", Cause: err}
	}

	if err := json.Unmarshal(raw, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Malformed sub-fields degrade to zero values.
			return nil
		}
		return &ParseError{Message: "payload does not match any canonical shape", Cause: err}
	}
	return nil
}

// decodeCandidate gives string candidates one JSON decode pass. LLM
// replies often arrive fenced in markdown code blocks, so fences are
// stripped before the attempt. Non-strings pass through unchanged.
func decodeCandidate(candidate any) any {
	s, ok := candidate.(string)
	if !ok {
		return candidate
	}

	cleaned := CleanJSONBlock(s)
	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return s
	}
	return decoded
}

// fieldOf reads a key from a loosely-typed object, returning nil for
// anything that is not an object.
func fieldOf(value any, key string) any {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return obj[key]
}

// isEmptyValue reports whether a candidate carries no payload: nil, an
// empty object, an empty array, or a blank string.
func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
