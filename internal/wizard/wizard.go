package wizard

import (
	"fmt"

	"github.com/jonathan/skills-copilot/internal/types"
)

// Step is the wizard's current state.
type Step string

// Wizard steps. Forward transitions are guarded; backward transitions
// are always permitted and never discard entered values.
const (
	StepRoleSelection  Step = "role_selection"
	StepSelfEvaluation Step = "self_evaluation"
	StepReview         Step = "review"
	StepComplete       Step = "complete"
)

// Wizard drives the three-step self-assessment flow. The zero value is
// not usable; construct with New.
type Wizard struct {
	step        Step
	currentRole string
	targetRole  string
	evaluation  *types.SelfEvaluation
}

// New returns a wizard at the role-selection step with an empty
// evaluation.
func New() *Wizard {
	return &Wizard{
		step:       StepRoleSelection,
		evaluation: types.NewSelfEvaluation(),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// CurrentRole returns the selected current role.
func (w *Wizard) CurrentRole() string { return w.currentRole }

// TargetRole returns the selected target role.
func (w *Wizard) TargetRole() string { return w.targetRole }

// Evaluation returns a copy of the collected self-evaluation for display.
func (w *Wizard) Evaluation() *types.SelfEvaluation { return w.evaluation.Clone() }

// SetRoles records the role pair. Unknown roles are rejected. Changing
// either role after completion invalidates the completed assessment and
// returns the wizard to role selection: stale analysis must never be
// shown against a new role pair.
func (w *Wizard) SetRoles(currentRole, targetRole string) error {
	if currentRole != "" && !ValidRole(currentRole) {
		return fmt.Errorf("unknown current role %q", currentRole)
	}
	if targetRole != "" && !ValidRole(targetRole) {
		return fmt.Errorf("unknown target role %q", targetRole)
	}

	changed := currentRole != w.currentRole || targetRole != w.targetRole
	w.currentRole = currentRole
	w.targetRole = targetRole
	if changed && w.step == StepComplete {
		w.step = StepRoleSelection
	}
	return nil
}

// RateSkill records a 1-5 self-rating for a skill area.
func (w *Wizard) RateSkill(areaID string, rating int) error {
	if !knownArea(areaID) {
		return fmt.Errorf("unknown skill area %q", areaID)
	}
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating %d out of range [%d,%d]", rating, MinRating, MaxRating)
	}
	w.evaluation.SkillRatings[areaID] = rating
	return nil
}

// AnswerQuestion records the choice for an experience question.
func (w *Wizard) AnswerQuestion(questionID, choice string) error {
	for _, q := range ExperienceQuestions {
		if q.ID != questionID {
			continue
		}
		if !validChoice(q, choice) {
			return fmt.Errorf("invalid choice %q for question %q", choice, questionID)
		}
		w.evaluation.ExperienceAnswers[questionID] = choice
		return nil
	}
	return fmt.Errorf("unknown question %q", questionID)
}

// SetNotes records the optional strengths and growth free-text notes.
func (w *Wizard) SetNotes(strengths, growth string) {
	w.evaluation.StrengthsNote = strengths
	w.evaluation.GrowthNote = growth
}

// CanAdvance reports whether the guard for the next forward transition
// is satisfied.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepRoleSelection:
		return w.currentRole != "" && w.targetRole != ""
	case StepSelfEvaluation:
		return w.evaluationComplete()
	case StepReview:
		return true
	}
	return false
}

// Advance moves one step forward. A failed guard leaves the state
// unchanged; the caller surfaces this as a disabled transition, not an
// error banner.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	switch w.step {
	case StepRoleSelection:
		w.step = StepSelfEvaluation
	case StepSelfEvaluation:
		w.step = StepReview
	case StepReview:
		w.step = StepComplete
	}
	return true
}

// Back moves one step backward, preserving all entered values. Backing
// out of Complete returns to Review.
func (w *Wizard) Back() {
	switch w.step {
	case StepSelfEvaluation:
		w.step = StepRoleSelection
	case StepReview:
		w.step = StepSelfEvaluation
	case StepComplete:
		w.step = StepReview
	}
}

// Submit renders the request string and marks the wizard complete. It
// fails if the wizard has not reached the review step.
func (w *Wizard) Submit() (string, error) {
	if w.step != StepReview {
		return "", fmt.Errorf("cannot submit from step %q", w.step)
	}
	message := w.RequestMessage()
	w.step = StepComplete
	return message, nil
}

// evaluationComplete reports whether every skill area is rated and every
// experience question answered. Notes are optional.
func (w *Wizard) evaluationComplete() bool {
	for _, area := range SkillAreas {
		r, ok := w.evaluation.SkillRatings[area.ID]
		if !ok || r < MinRating || r > MaxRating {
			return false
		}
	}
	for _, q := range ExperienceQuestions {
		if w.evaluation.ExperienceAnswers[q.ID] == "" {
			return false
		}
	}
	return true
}

func knownArea(areaID string) bool {
	for _, area := range SkillAreas {
		if area.ID == areaID {
			return true
		}
	}
	return false
}
