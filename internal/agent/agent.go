// Package agent defines the external AI agent collaborator boundary:
// three fixed agent identifiers, the invocation contract, and a
// Gemini-backed implementation.
package agent

import "context"

// The three fixed agent identifiers.
const (
	AgentOrchestrator = "orchestrator"
	AgentWorkforce    = "workforce-intelligence"
	AgentForecast     = "predictive-forecast"
)

// KnownAgent reports whether agentID is one of the three fixed agents.
func KnownAgent(agentID string) bool {
	switch agentID {
	case AgentOrchestrator, AgentWorkforce, AgentForecast:
		return true
	}
	return false
}

// Result is the collaborator's reply discriminant. On success Response
// holds the loosely-typed reply envelope body; on failure Error holds a
// human-readable reason. Both outcomes are normal control flow for the
// caller.
type Result struct {
	Success  bool   `json:"success"`
	Response any    `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Invoker sends a natural-language request to an agent and reports the
// outcome. Implementations must honor ctx cancellation and must never
// panic on malformed replies; shape problems belong to normalization.
type Invoker interface {
	Invoke(ctx context.Context, message, agentID string) Result
}
