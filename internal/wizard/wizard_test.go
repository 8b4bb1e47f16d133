package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeEvaluation(t *testing.T, w *Wizard) {
	t.Helper()
	for _, area := range SkillAreas {
		require.NoError(t, w.RateSkill(area.ID, 3))
	}
	for _, q := range ExperienceQuestions {
		require.NoError(t, w.AnswerQuestion(q.ID, q.Choices[0]))
	}
}

func TestNew_StartsAtRoleSelection(t *testing.T) {
	w := New()
	assert.Equal(t, StepRoleSelection, w.Step())
	assert.False(t, w.CanAdvance())
}

func TestSetRoles_RejectsUnknownRole(t *testing.T) {
	w := New()
	err := w.SetRoles("Software Engineer", "Chief Vibes Officer")
	assert.Error(t, err)
	assert.Equal(t, "", w.TargetRole())
}

func TestAdvance_BlockedWithoutBothRoles(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", ""))

	assert.False(t, w.Advance())
	assert.Equal(t, StepRoleSelection, w.Step())
}

func TestAdvance_BlockedUntilEvaluationComplete(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", "Tech Lead"))
	require.True(t, w.Advance())
	assert.Equal(t, StepSelfEvaluation, w.Step())

	// Rate everything but skip the questions.
	for _, area := range SkillAreas {
		require.NoError(t, w.RateSkill(area.ID, 4))
	}
	assert.False(t, w.Advance())
	assert.Equal(t, StepSelfEvaluation, w.Step())

	for _, q := range ExperienceQuestions {
		require.NoError(t, w.AnswerQuestion(q.ID, q.Choices[1]))
	}
	assert.True(t, w.Advance())
	assert.Equal(t, StepReview, w.Step())
}

func TestFullFlow(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Data Scientist", "ML Engineer"))
	require.True(t, w.Advance())

	completeEvaluation(t, w)
	w.SetNotes("strong math background", "production ML systems")
	require.True(t, w.Advance())
	require.Equal(t, StepReview, w.Step())

	message, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, StepComplete, w.Step())
	assert.Contains(t, message, "Data Scientist")
	assert.Contains(t, message, "ML Engineer")
}

func TestSubmit_OnlyFromReview(t *testing.T) {
	w := New()
	_, err := w.Submit()
	assert.Error(t, err)
	assert.Equal(t, StepRoleSelection, w.Step())
}

func TestRateSkill_Validation(t *testing.T) {
	w := New()
	assert.Error(t, w.RateSkill("technical", 0))
	assert.Error(t, w.RateSkill("technical", 6))
	assert.Error(t, w.RateSkill("underwater_basket_weaving", 3))
	assert.NoError(t, w.RateSkill("technical", 5))
}

func TestAnswerQuestion_Validation(t *testing.T) {
	w := New()
	assert.Error(t, w.AnswerQuestion("years_experience", "forever"))
	assert.Error(t, w.AnswerQuestion("favorite_color", "blue"))
	assert.NoError(t, w.AnswerQuestion("years_experience", "3-5 years"))
}

func TestBack_PreservesEnteredValues(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", "Tech Lead"))
	require.True(t, w.Advance())
	completeEvaluation(t, w)
	require.True(t, w.Advance())

	w.Back()
	assert.Equal(t, StepSelfEvaluation, w.Step())
	w.Back()
	assert.Equal(t, StepRoleSelection, w.Step())

	// Nothing was discarded: both guards still pass.
	assert.True(t, w.Advance())
	assert.True(t, w.Advance())
	assert.Equal(t, StepReview, w.Step())
	assert.Equal(t, "Tech Lead", w.TargetRole())
}

func TestBack_FromComplete(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", "Tech Lead"))
	require.True(t, w.Advance())
	completeEvaluation(t, w)
	require.True(t, w.Advance())
	_, err := w.Submit()
	require.NoError(t, err)

	w.Back()
	assert.Equal(t, StepReview, w.Step())
}

func TestSetRoles_ChangeAfterCompleteResets(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", "Tech Lead"))
	require.True(t, w.Advance())
	completeEvaluation(t, w)
	require.True(t, w.Advance())
	_, err := w.Submit()
	require.NoError(t, err)
	require.Equal(t, StepComplete, w.Step())

	require.NoError(t, w.SetRoles("Software Engineer", "Engineering Manager"))
	assert.Equal(t, StepRoleSelection, w.Step())

	// Re-setting the identical pair does not reset.
	require.True(t, w.Advance())
	require.True(t, w.Advance())
	_, err = w.Submit()
	require.NoError(t, err)
	require.NoError(t, w.SetRoles("Software Engineer", "Engineering Manager"))
	assert.Equal(t, StepComplete, w.Step())
}

func TestEvaluation_ReturnsCopy(t *testing.T) {
	w := New()
	require.NoError(t, w.RateSkill("technical", 4))

	snapshot := w.Evaluation()
	snapshot.SkillRatings["technical"] = 1

	again := w.Evaluation()
	assert.Equal(t, 4, again.SkillRatings["technical"])
}
