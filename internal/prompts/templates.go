// Package prompts holds the agent request templates. The templates live
// in an embedded JSON file keyed by agent purpose and carry {{.Key}}
// placeholders for the per-request values.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"
)

//go:embed agents.json
var templateData []byte

var (
	parseOnce sync.Once
	templates map[string]string
	parseErr  error
)

// Render returns the named template with every {{.Key}} placeholder
// replaced by its value from data. Placeholders without a value are left
// intact so a half-filled request is visible rather than silently blank.
func Render(name string, data map[string]string) (string, error) {
	parseOnce.Do(func() {
		parseErr = json.Unmarshal(templateData, &templates)
	})
	if parseErr != nil {
		return "", fmt.Errorf("parse agent templates: %w", parseErr)
	}

	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown agent template %q", name)
	}
	for key, value := range data {
		tmpl = strings.ReplaceAll(tmpl, "{{."+key+"}}", value)
	}
	return tmpl, nil
}

// MustRender is Render for templates that are known at compile time;
// a missing name is a programming error and panics.
func MustRender(name string, data map[string]string) string {
	out, err := Render(name, data)
	if err != nil {
		panic(err)
	}
	return out
}
