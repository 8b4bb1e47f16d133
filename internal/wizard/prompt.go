package wizard

import (
	"fmt"
	"strings"

	"github.com/jonathan/skills-copilot/internal/prompts"
)

// RequestMessage renders the collected inputs into the orchestrator
// request. The output is deterministic for identical inputs: skill areas
// and questions are emitted in their fixed declaration order, ratings as
// "N/5".
func (w *Wizard) RequestMessage() string {
	return prompts.MustRender("orchestrator-assessment", map[string]string{
		"CurrentRole":    w.currentRole,
		"TargetRole":     w.targetRole,
		"SelfEvaluation": w.evaluationSummary(),
	})
}

// evaluationSummary renders the self-evaluation block of the request.
func (w *Wizard) evaluationSummary() string {
	var sb strings.Builder

	sb.WriteString("Self-rated skills: ")
	for i, area := range SkillAreas {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s %d/%d", area.Label, w.evaluation.SkillRatings[area.ID], MaxRating))
	}
	sb.WriteString(".")

	for _, q := range ExperienceQuestions {
		if answer := w.evaluation.ExperienceAnswers[q.ID]; answer != "" {
			sb.WriteString(fmt.Sprintf(" %s: %s.", q.Prompt, answer))
		}
	}

	if note := strings.TrimSpace(w.evaluation.StrengthsNote); note != "" {
		sb.WriteString(" Self-described strengths: " + note + ".")
	}
	if note := strings.TrimSpace(w.evaluation.GrowthNote); note != "" {
		sb.WriteString(" Growth interests: " + note + ".")
	}

	return sb.String()
}
