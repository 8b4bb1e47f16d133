package types

// SelfEvaluation collects the wizard's self-assessment inputs. It is
// never sent to an agent verbatim; the wizard renders it into the
// assessment request prompt. Ratings are 1-5 per skill area, experience
// answers are one choice per question, and the two notes are optional
// free text.
type SelfEvaluation struct {
	SkillRatings      map[string]int    `json:"skill_ratings"`
	ExperienceAnswers map[string]string `json:"experience_answers"`
	StrengthsNote     string            `json:"strengths_note"`
	GrowthNote        string            `json:"growth_note"`
}

// NewSelfEvaluation returns an empty evaluation ready for the wizard.
func NewSelfEvaluation() *SelfEvaluation {
	return &SelfEvaluation{
		SkillRatings:      make(map[string]int),
		ExperienceAnswers: make(map[string]string),
	}
}

// Clone returns a deep copy so snapshots cannot alias wizard state.
func (e *SelfEvaluation) Clone() *SelfEvaluation {
	if e == nil {
		return nil
	}
	c := NewSelfEvaluation()
	for k, v := range e.SkillRatings {
		c.SkillRatings[k] = v
	}
	for k, v := range e.ExperienceAnswers {
		c.ExperienceAnswers[k] = v
	}
	c.StrengthsNote = e.StrengthsNote
	c.GrowthNote = e.GrowthNote
	return c
}
