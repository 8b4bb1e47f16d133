package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skills-copilot/internal/types"
)

func TestLargestGaps_SortsDescending(t *testing.T) {
	points := []types.SkillPoint{
		{SkillName: "Communication", CurrentScore: 80, RequiredScore: 85}, // gap 5
		{SkillName: "System Design", CurrentScore: 40, RequiredScore: 85}, // gap 45
		{SkillName: "Kubernetes", CurrentScore: 55, RequiredScore: 80},    // gap 25
	}

	ranked := LargestGaps(points)
	require.Len(t, ranked, 3)
	assert.Equal(t, "System Design", ranked[0].SkillName)
	assert.Equal(t, "Kubernetes", ranked[1].SkillName)
	assert.Equal(t, "Communication", ranked[2].SkillName)

	// Input order untouched.
	assert.Equal(t, "Communication", points[0].SkillName)
}

func TestLargestGaps_TiesKeepWireOrder(t *testing.T) {
	points := []types.SkillPoint{
		{SkillName: "First", CurrentScore: 50, RequiredScore: 70},
		{SkillName: "Second", CurrentScore: 30, RequiredScore: 50},
		{SkillName: "Third", CurrentScore: 10, RequiredScore: 30},
	}

	ranked := LargestGaps(points)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{ranked[0].SkillName, ranked[1].SkillName, ranked[2].SkillName})
}

func TestTopStrengths(t *testing.T) {
	points := []types.SkillPoint{
		{SkillName: "A", CurrentScore: 40},
		{SkillName: "B", CurrentScore: 90},
		{SkillName: "C", CurrentScore: 70},
	}

	ranked := TopStrengths(points)
	assert.Equal(t, "B", ranked[0].SkillName)
	assert.Equal(t, "C", ranked[1].SkillName)
	assert.Equal(t, "A", ranked[2].SkillName)
}

func TestTopGapSkill(t *testing.T) {
	assert.Equal(t, "", TopGapSkill(nil))

	points := []types.SkillPoint{
		{SkillName: "A", CurrentScore: 70, RequiredScore: 80},
		{SkillName: "B", CurrentScore: 20, RequiredScore: 90},
	}
	assert.Equal(t, "B", TopGapSkill(points))
}

func TestOrderedActivities(t *testing.T) {
	path := types.LearningPath{
		Activities: []types.Activity{
			{Title: "Advanced course", Sequence: 3},
			{Title: "Fundamentals", Sequence: 1},
			{Title: "Workshop", Sequence: 2},
		},
	}

	ordered := OrderedActivities(path)
	require.Len(t, ordered, 3)
	assert.Equal(t, "Fundamentals", ordered[0].Title)
	assert.Equal(t, "Workshop", ordered[1].Title)
	assert.Equal(t, "Advanced course", ordered[2].Title)

	// Original slice keeps wire order.
	assert.Equal(t, "Advanced course", path.Activities[0].Title)
}
