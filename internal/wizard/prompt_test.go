package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMessage_InterpolatesRolesAndRatings(t *testing.T) {
	w := New()
	require.NoError(t, w.SetRoles("Software Engineer", "Tech Lead"))
	require.NoError(t, w.RateSkill("technical", 3))
	require.NoError(t, w.RateSkill("leadership", 1))
	require.NoError(t, w.RateSkill("communication", 5))
	require.NoError(t, w.RateSkill("strategy", 2))
	require.NoError(t, w.RateSkill("problem_solving", 4))
	require.NoError(t, w.RateSkill("execution", 3))
	require.NoError(t, w.AnswerQuestion("years_experience", "6-10 years"))

	message := w.RequestMessage()
	assert.Contains(t, message, "from Software Engineer to Tech Lead")
	assert.Contains(t, message, "Technical Depth 3/5")
	assert.Contains(t, message, "Leadership 1/5")
	assert.Contains(t, message, "Communication 5/5")
	assert.Contains(t, message, "Years of professional experience: 6-10 years")
	assert.NotContains(t, message, "{{.")
}

func TestRequestMessage_Deterministic(t *testing.T) {
	build := func() string {
		w := New()
		require.NoError(t, w.SetRoles("Data Scientist", "ML Engineer"))
		for _, area := range SkillAreas {
			require.NoError(t, w.RateSkill(area.ID, 4))
		}
		for _, q := range ExperienceQuestions {
			require.NoError(t, w.AnswerQuestion(q.ID, q.Choices[0]))
		}
		w.SetNotes("optimization", "distributed training")
		return w.RequestMessage()
	}

	assert.Equal(t, build(), build())
}

func TestRequestMessage_SkillOrderFixed(t *testing.T) {
	w := New()
	// Rate in reverse declaration order; output order must not change.
	for i := len(SkillAreas) - 1; i >= 0; i-- {
		require.NoError(t, w.RateSkill(SkillAreas[i].ID, 2))
	}

	message := w.RequestMessage()
	last := -1
	for _, area := range SkillAreas {
		idx := strings.Index(message, area.Label)
		assert.Greater(t, idx, last, "area %s out of order", area.ID)
		last = idx
	}
}

func TestRequestMessage_NotesOptional(t *testing.T) {
	w := New()
	message := w.RequestMessage()
	assert.NotContains(t, message, "Self-described strengths")
	assert.NotContains(t, message, "Growth interests")

	w.SetNotes("mentoring", "public speaking")
	message = w.RequestMessage()
	assert.Contains(t, message, "Self-described strengths: mentoring.")
	assert.Contains(t, message, "Growth interests: public speaking.")
}
