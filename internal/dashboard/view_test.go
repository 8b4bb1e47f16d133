package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skills-copilot/internal/metrics"
	"github.com/jonathan/skills-copilot/internal/types"
)

func TestBuildAssessmentView_DerivedMetrics(t *testing.T) {
	view := buildAssessmentView(SampleAssessment())

	assert.Equal(t, metrics.BandModerate, view.ReadinessBand)
	assert.NotEmpty(t, view.Narrative)

	// Largest gap first: Strategic Planning (35 -> 80).
	require.NotEmpty(t, view.LargestGaps)
	assert.Equal(t, "Strategic Planning", view.LargestGaps[0].SkillName)

	// Top strength first: Code Review (80).
	require.NotEmpty(t, view.TopStrengths)
	assert.Equal(t, "Code Review", view.TopStrengths[0].SkillName)

	// Activities in sequence order.
	for i := 1; i < len(view.Activities); i++ {
		assert.LessOrEqual(t, view.Activities[i-1].Sequence, view.Activities[i].Sequence)
	}

	// The sample's own gap summary matches the recomputed one.
	assert.True(t, view.Consistent)
	assert.Equal(t, types.GapSummary{CriticalCount: 3, ImportantCount: 3, EnhancementCount: 2}, view.GapSummary)
}

func TestBuildAssessmentView_InconsistentSummaryFlagged(t *testing.T) {
	result := SampleAssessment()
	result.GapSummary.CriticalCount = 99

	view := buildAssessmentView(result)
	assert.False(t, view.Consistent)
	// The recomputed summary is exposed, not the agent's.
	assert.Equal(t, 3, view.GapSummary.CriticalCount)
}

func TestBuildWorkforceView_HeatmapAndCoverage(t *testing.T) {
	report := SampleWorkforce()
	view := buildWorkforceView(report)

	assert.Equal(t, []string{"Cloud Architecture", "AI/ML", "Security", "Leadership"}, view.Heatmap.Skills)
	require.Len(t, view.Heatmap.Rows, 4)

	require.Len(t, view.Coverage, len(report.ShortageIndex))
	// AI/ML Engineering: 34 of 120.
	assert.Equal(t, 28, view.Coverage[0])
}

func TestBuildForecastView_ConfidencePercent(t *testing.T) {
	forecast := SampleForecast()
	view := buildForecastView(forecast)

	require.Len(t, view.ConfidencePct, len(forecast.HiringVsUpskilling))
	for i, strategy := range forecast.HiringVsUpskilling {
		assert.Equal(t, int(strategy.Confidence*100+0.5), view.ConfidencePct[i])
		assert.GreaterOrEqual(t, view.ConfidencePct[i], 0)
		assert.LessOrEqual(t, view.ConfidencePct[i], 100)
	}
	assert.NotEmpty(t, view.Narrative)
}

func TestSampleAccessors_ReturnFreshCopies(t *testing.T) {
	a := SampleAssessment()
	a.EmployeeName = "mutated"
	assert.Equal(t, "Alex Morgan", SampleAssessment().EmployeeName)

	w := SampleWorkforce()
	w.SkillHeatmap[0].Skills[0].Proficiency = -1
	assert.Equal(t, 72, SampleWorkforce().SkillHeatmap[0].Skills[0].Proficiency)

	f := SampleForecast()
	f.Scenario = "mutated"
	assert.NotEqual(t, "mutated", SampleForecast().Scenario)
}
