package dashboard

import (
	"github.com/jonathan/skills-copilot/internal/metrics"
	"github.com/jonathan/skills-copilot/internal/types"
	"github.com/jonathan/skills-copilot/internal/wizard"
)

// Snapshot is the read-only view model handed to the presentation
// layer: current selection, per-slot agent status, and the per-view
// payloads with their derived metrics. When the sample-data override is
// active every payload is the built-in sample, regardless of live state.
type Snapshot struct {
	ActiveView    View                   `json:"active_view"`
	ActiveSection Section                `json:"active_section"`
	SampleData    bool                   `json:"sample_data"`
	Agents        map[string]AgentStatus `json:"agents"`
	WizardStep    wizard.Step            `json:"wizard_step"`

	Assessment *AssessmentView `json:"assessment,omitempty"`
	Workforce  *WorkforceView  `json:"workforce,omitempty"`
	Forecast   *ForecastView   `json:"forecast,omitempty"`

	ContentSummary types.ContentSummary `json:"content_summary"`
}

// AssessmentView is the employee-view payload plus derived metrics.
type AssessmentView struct {
	Result        *types.AssessmentResult `json:"result"`
	ReadinessBand metrics.Band            `json:"readiness_band"`
	Narrative     string                  `json:"narrative"`
	LargestGaps   []types.SkillPoint      `json:"largest_gaps"`
	TopStrengths  []types.SkillPoint      `json:"top_strengths"`
	Activities    []types.Activity        `json:"activities"`
	// GapSummary is recomputed from the heatmap detail; Consistent
	// reports whether the agent's own summary agrees with it.
	GapSummary types.GapSummary `json:"gap_summary"`
	Consistent bool             `json:"gap_summary_consistent"`
}

// WorkforceView is the manager-view payload plus derived metrics.
type WorkforceView struct {
	Report  *types.WorkforceReport `json:"report"`
	Heatmap metrics.HeatmapMatrix  `json:"heatmap"`
	// Coverage holds the shortage progress ratio per shortage entry,
	// aligned by index.
	Coverage []int `json:"coverage"`
}

// ForecastView is the forecast payload plus derived metrics.
type ForecastView struct {
	Forecast  *types.ForecastResult `json:"forecast"`
	Narrative string                `json:"narrative"`
	// ConfidencePct holds each talent strategy's confidence as a
	// rounded percentage, aligned by index.
	ConfidencePct []int `json:"confidence_pct"`
}

// Snapshot assembles the current view model. The returned structure is
// detached from controller state except for the shared payload pointers,
// which the presentation layer treats as read-only.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		ActiveView:     c.activeView,
		ActiveSection:  c.activeSection,
		SampleData:     c.sampleData,
		Agents:         make(map[string]AgentStatus, len(c.slots)),
		WizardStep:     c.wizard.Step(),
		ContentSummary: c.library.Summary(),
	}
	for id, s := range c.slots {
		snap.Agents[id] = s
	}

	assessment, workforce, forecast := c.assessment, c.workforce, c.forecast
	if c.sampleData {
		assessment, workforce, forecast = SampleAssessment(), SampleWorkforce(), SampleForecast()
	}

	if assessment != nil {
		snap.Assessment = buildAssessmentView(assessment)
	}
	if workforce != nil {
		snap.Workforce = buildWorkforceView(workforce)
	}
	if forecast != nil {
		snap.Forecast = buildForecastView(forecast)
	}
	return snap
}

func buildAssessmentView(result *types.AssessmentResult) *AssessmentView {
	return &AssessmentView{
		Result:        result,
		ReadinessBand: metrics.ReadinessBand(result.ReadinessScore),
		Narrative:     metrics.AssessmentNarrative(result),
		LargestGaps:   metrics.LargestGaps(result.SkillRadar),
		TopStrengths:  metrics.TopStrengths(result.SkillRadar),
		Activities:    metrics.OrderedActivities(result.LearningPath),
		GapSummary:    metrics.RecomputeGapSummary(result.GapHeatmap),
		Consistent:    metrics.GapSummaryConsistent(result),
	}
}

func buildWorkforceView(report *types.WorkforceReport) *WorkforceView {
	coverage := make([]int, len(report.ShortageIndex))
	for i, s := range report.ShortageIndex {
		coverage[i] = metrics.ShortageCoverage(s)
	}
	return &WorkforceView{
		Report:   report,
		Heatmap:  metrics.BuildHeatmapMatrix(report.SkillHeatmap),
		Coverage: coverage,
	}
}

func buildForecastView(forecast *types.ForecastResult) *ForecastView {
	confidence := make([]int, len(forecast.HiringVsUpskilling))
	for i, s := range forecast.HiringVsUpskilling {
		confidence[i] = int(s.Confidence*100 + 0.5)
	}
	return &ForecastView{
		Forecast:      forecast,
		Narrative:     metrics.ForecastNarrative(forecast),
		ConfidencePct: confidence,
	}
}
