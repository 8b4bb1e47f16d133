package metrics

import (
	"fmt"

	"github.com/jonathan/skills-copilot/internal/types"
)

// AssessmentNarrative selects the radar-summary sentence for an
// assessment. The decision table keys on readiness band: Strong gets a
// consolidation message, Moderate a targeted-gap message, and the two
// lower bands share a foundational message. The top-gap skill and the
// critical gap count are interpolated.
func AssessmentNarrative(result *types.AssessmentResult) string {
	if result == nil {
		return ""
	}

	topGap := TopGapSkill(result.SkillRadar)
	if topGap == "" {
		topGap = "your target skills"
	}
	critical := RecomputeGapSummary(result.GapHeatmap).CriticalCount

	switch ReadinessBand(result.ReadinessScore) {
	case BandStrong:
		return fmt.Sprintf("Readiness is strong at %d%%; consolidate %s to close out the remaining %d critical gap(s).",
			result.ReadinessScore, topGap, critical)
	case BandModerate:
		return fmt.Sprintf("Readiness is moderate at %d%%; prioritize %s, the largest of %d critical gap(s).",
			result.ReadinessScore, topGap, critical)
	default:
		return fmt.Sprintf("Readiness is early at %d%%; build foundations in %s before tackling the %d critical gap(s).",
			result.ReadinessScore, topGap, critical)
	}
}

// ForecastNarrative selects the forecast-summary sentence from the final
// projected readiness point. An empty projection yields "".
func ForecastNarrative(forecast *types.ForecastResult) string {
	if forecast == nil || len(forecast.ReadinessProjections) == 0 {
		return ""
	}

	last := forecast.ReadinessProjections[len(forecast.ReadinessProjections)-1]
	score := int(last.ReadinessPercentage)
	worst := worstShortageSkill(forecast.ShortageForecasts)
	if worst == "" {
		worst = "forecast skills"
	}

	switch ReadinessBand(score) {
	case BandStrong:
		return fmt.Sprintf("Projected readiness reaches %d%% by month %d; sustain investment in %s.", score, last.Month, worst)
	case BandModerate:
		return fmt.Sprintf("Projected readiness reaches %d%% by month %d; %s remains the binding constraint.", score, last.Month, worst)
	default:
		return fmt.Sprintf("Projected readiness stalls at %d%% by month %d; %s needs immediate intervention.", score, last.Month, worst)
	}
}

// worstShortageSkill returns the skill with the deepest 18-month deficit.
func worstShortageSkill(forecasts []types.ShortageForecast) string {
	name := ""
	worst := 0
	for _, f := range forecasts {
		if f.SkillName == "" {
			continue
		}
		if name == "" || f.GapAt18Months < worst {
			name = f.SkillName
			worst = f.GapAt18Months
		}
	}
	return name
}
