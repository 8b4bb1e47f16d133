// Package dashboard owns the session state behind the skills co-pilot
// UI: the three agent slots, the assessment wizard, the content library,
// section selection, and the sample-data override. All mutation goes
// through a single Controller, which serializes access.
package dashboard

// View is the top-level dashboard perspective.
type View string

// Views.
const (
	ViewEmployee View = "employee"
	ViewManager  View = "manager"
)

// Section identifies one dashboard screen.
type Section string

// Employee sections.
const (
	SectionAssessment   Section = "assessment"
	SectionRadar        Section = "radar"
	SectionGaps         Section = "gaps"
	SectionLearningPath Section = "learning-path"
	SectionMobility     Section = "mobility"
	SectionROI          Section = "roi"
)

// Manager sections.
const (
	SectionWorkforceOverview Section = "wf-overview"
	SectionHeatmap           Section = "wf-heatmap"
	SectionShortage          Section = "wf-shortage"
	SectionFunnel            Section = "wf-funnel"
	SectionEffectiveness     Section = "wf-effectiveness"
	SectionDeptROI           Section = "wf-roi"
	SectionUnderperforming   Section = "wf-underperforming"
	SectionForecast          Section = "pred-forecast"
)

// SectionInfo describes one entry of the navigation catalog.
type SectionInfo struct {
	ID    Section `json:"id"`
	Label string  `json:"label"`
	View  View    `json:"view"`
	Group string  `json:"group,omitempty"`
	// NeedsAssessment marks employee sections that stay disabled until
	// assessment data (live or sample) is available.
	NeedsAssessment bool `json:"needs_assessment,omitempty"`
}

// Sections is the full navigation catalog in display order.
var Sections = []SectionInfo{
	{ID: SectionAssessment, Label: "Skill Assessment", View: ViewEmployee},
	{ID: SectionRadar, Label: "Skill Radar & Readiness", View: ViewEmployee, NeedsAssessment: true},
	{ID: SectionGaps, Label: "Gap Analysis", View: ViewEmployee, NeedsAssessment: true},
	{ID: SectionLearningPath, Label: "Learning Path", View: ViewEmployee, NeedsAssessment: true},
	{ID: SectionMobility, Label: "Career Mobility", View: ViewEmployee, NeedsAssessment: true},
	{ID: SectionROI, Label: "ROI Metrics", View: ViewEmployee, NeedsAssessment: true},
	{ID: SectionWorkforceOverview, Label: "Workforce Overview", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionHeatmap, Label: "Skill Heatmap", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionShortage, Label: "Shortage Index", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionFunnel, Label: "Readiness Funnel", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionEffectiveness, Label: "Effectiveness Analytics", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionDeptROI, Label: "ROI by Department", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionUnderperforming, Label: "Underperforming Programs", View: ViewManager, Group: "Workforce Intelligence"},
	{ID: SectionForecast, Label: "Predictive Forecast", View: ViewManager, Group: "Predictive Analytics"},
}

// sectionInfo looks up a catalog entry by id.
func sectionInfo(id Section) (SectionInfo, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionInfo{}, false
}
