package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skills-copilot/internal/types"
)

func TestClassifyGap_Thresholds(t *testing.T) {
	tests := []struct {
		gap  int
		want Classification
	}{
		{gap: 50, want: ClassCritical},
		{gap: 31, want: ClassCritical},
		{gap: 30, want: ClassImportant},
		{gap: 16, want: ClassImportant},
		{gap: 15, want: ClassEnhancement},
		{gap: 1, want: ClassEnhancement},
		{gap: 0, want: ClassEnhancement},
		{gap: -10, want: ClassEnhancement},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyGap(tt.gap), "gap %d", tt.gap)
	}
}

func TestClassifyGap_Monotonic(t *testing.T) {
	// A larger gap must never classify less severely.
	prev := ClassifyGap(-5)
	for gap := -4; gap <= 60; gap++ {
		cur := ClassifyGap(gap)
		assert.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "gap %d", gap)
		prev = cur
	}
}

func TestEntryClassification_PrefersAgentValue(t *testing.T) {
	entry := types.GapEntry{SkillName: "Kubernetes", Delta: 5, Classification: "Critical"}
	assert.Equal(t, ClassCritical, EntryClassification(entry))

	entry.Classification = "  important  "
	assert.Equal(t, ClassImportant, EntryClassification(entry))

	entry.Classification = "ENHANCEMENT"
	assert.Equal(t, ClassEnhancement, EntryClassification(entry))
}

func TestEntryClassification_FallsBackToDelta(t *testing.T) {
	entry := types.GapEntry{SkillName: "Kubernetes", Delta: 35}
	assert.Equal(t, ClassCritical, EntryClassification(entry))

	entry.Classification = "severe" // unknown label
	assert.Equal(t, ClassCritical, EntryClassification(entry))

	entry.Delta = 20
	assert.Equal(t, ClassImportant, EntryClassification(entry))
}

func TestPointClassification(t *testing.T) {
	p := types.SkillPoint{SkillName: "System Design", CurrentScore: 40, RequiredScore: 85}
	assert.Equal(t, ClassCritical, PointClassification(p))

	p.CurrentScore = 84
	assert.Equal(t, ClassEnhancement, PointClassification(p))
}

func TestRecomputeGapSummary(t *testing.T) {
	gaps := []types.GapEntry{
		{SkillName: "A", Classification: "critical"},
		{SkillName: "B", Delta: 40},
		{SkillName: "C", Classification: "important"},
		{SkillName: "D", Delta: 10},
		{SkillName: "E", Delta: 16},
	}

	summary := RecomputeGapSummary(gaps)
	assert.Equal(t, types.GapSummary{CriticalCount: 2, ImportantCount: 2, EnhancementCount: 1}, summary)
}

func TestRecomputeGapSummary_Empty(t *testing.T) {
	assert.Equal(t, types.GapSummary{}, RecomputeGapSummary(nil))
}

func TestGapSummaryConsistent(t *testing.T) {
	result := &types.AssessmentResult{
		GapHeatmap: []types.GapEntry{
			{SkillName: "A", Classification: "critical"},
			{SkillName: "B", Classification: "enhancement"},
		},
		GapSummary: types.GapSummary{CriticalCount: 1, EnhancementCount: 1},
	}
	assert.True(t, GapSummaryConsistent(result))

	result.GapSummary.CriticalCount = 3
	assert.False(t, GapSummaryConsistent(result))

	assert.True(t, GapSummaryConsistent(nil))
}
