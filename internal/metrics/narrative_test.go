package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skills-copilot/internal/types"
)

func TestAssessmentNarrative_Bands(t *testing.T) {
	result := &types.AssessmentResult{
		ReadinessScore: 85,
		SkillRadar: []types.SkillPoint{
			{SkillName: "System Design", CurrentScore: 40, RequiredScore: 85},
			{SkillName: "Communication", CurrentScore: 80, RequiredScore: 85},
		},
		GapHeatmap: []types.GapEntry{
			{SkillName: "System Design", Classification: "critical"},
		},
	}

	strong := AssessmentNarrative(result)
	assert.Contains(t, strong, "strong at 85%")
	assert.Contains(t, strong, "System Design")
	assert.Contains(t, strong, "1 critical gap(s)")

	result.ReadinessScore = 68
	assert.Contains(t, AssessmentNarrative(result), "moderate at 68%")

	result.ReadinessScore = 25
	assert.Contains(t, AssessmentNarrative(result), "early at 25%")
}

func TestAssessmentNarrative_NoRadarData(t *testing.T) {
	result := &types.AssessmentResult{ReadinessScore: 50}
	narrative := AssessmentNarrative(result)
	assert.Contains(t, narrative, "your target skills")

	assert.Equal(t, "", AssessmentNarrative(nil))
}

func TestForecastNarrative(t *testing.T) {
	forecast := &types.ForecastResult{
		ShortageForecasts: []types.ShortageForecast{
			{SkillName: "MLOps", GapAt18Months: -12},
			{SkillName: "Generative AI", GapAt18Months: -45},
		},
		ReadinessProjections: []types.ReadinessPoint{
			{Month: 6, ReadinessPercentage: 58},
			{Month: 18, ReadinessPercentage: 72},
		},
	}

	narrative := ForecastNarrative(forecast)
	assert.Contains(t, narrative, "72%")
	assert.Contains(t, narrative, "month 18")
	// The deepest 18-month deficit drives the callout.
	assert.Contains(t, narrative, "Generative AI")
}

func TestForecastNarrative_Empty(t *testing.T) {
	assert.Equal(t, "", ForecastNarrative(nil))
	assert.Equal(t, "", ForecastNarrative(&types.ForecastResult{}))
}
