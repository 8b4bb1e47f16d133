package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultModel is used when no per-agent model is configured.
const defaultModel = "gemini-2.0-flash"

// GeminiInvoker implements Invoker on top of the Gemini API. Each agent
// id may map to a distinct model; replies are requested as JSON and
// wrapped in the platform envelope shape the normalizer expects.
type GeminiInvoker struct {
	client *genai.Client
	models map[string]string
}

// NewGeminiInvoker creates a Gemini-backed invoker. models maps agent
// ids to model names; missing entries fall back to the default model.
func NewGeminiInvoker(ctx context.Context, apiKey string, models map[string]string) (*GeminiInvoker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiInvoker{client: client, models: models}, nil
}

// Invoke sends the request to the agent's model and returns the reply
// wrapped as {result: <text>}. Transport and API errors surface through
// the Result discriminant, never as panics.
func (g *GeminiInvoker) Invoke(ctx context.Context, message, agentID string) Result {
	if !KnownAgent(agentID) {
		return Result{Error: fmt.Sprintf("unknown agent %q", agentID)}
	}

	modelName := g.models[agentID]
	if modelName == "" {
		modelName = defaultModel
	}

	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return Result{Error: fmt.Sprintf("agent call failed: %v", err)}
	}

	text, err := extractText(resp)
	if err != nil {
		return Result{Error: err.Error()}
	}

	return Result{
		Success:  true,
		Response: map[string]any{"result": text},
	}
}

// Close releases resources held by the underlying client.
func (g *GeminiInvoker) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
