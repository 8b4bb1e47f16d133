// Package types provides type definitions for structured data used throughout the skills-copilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AssessmentResult is the canonical payload returned by the orchestrator
// agent for a single-employee skill gap assessment. The JSON tags follow
// the agent contract; every field is optional on the wire and decodes to
// its zero value when absent or malformed.
type AssessmentResult struct {
	ReadinessScore  int             `json:"overall_readiness_score"`
	EmployeeName    string          `json:"employee_name"`
	CurrentRole     string          `json:"current_role"`
	TargetRole      string          `json:"target_role"`
	SkillRadar      []SkillPoint    `json:"skill_radar_data"`
	GapHeatmap      []GapEntry      `json:"gap_heatmap"`
	LearningPath    LearningPath    `json:"learning_path"`
	MobilityMatches []MobilityMatch `json:"mobility_matches"`
	ROIMetrics      ROIMetrics      `json:"roi_metrics"`
	GapSummary      GapSummary      `json:"gap_summary"`
}

// SkillPoint is one axis of the skill radar: current vs required proficiency.
type SkillPoint struct {
	SkillName     string `json:"skill_name"`
	CurrentScore  int    `json:"current_score"`
	RequiredScore int    `json:"required_score"`
}

// GapEntry is one cell of the gap heatmap with the agent-supplied
// classification. When the classification is empty, consumers derive it
// from Delta via metrics.ClassifyGap.
type GapEntry struct {
	SkillName      string `json:"skill_name"`
	Category       string `json:"category"`
	Delta          int    `json:"delta"`
	Classification string `json:"classification"`
}

// LearningPath is the personalized activity sequence for closing gaps.
type LearningPath struct {
	MomentumScore int        `json:"momentum_score"`
	TotalWeeks    int        `json:"total_weeks"`
	Activities    []Activity `json:"activities"`
}

// Activity is a single learning-path step. Sequence orders activities;
// ties keep wire order.
type Activity struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Skill    string `json:"skill"`
	Hours    int    `json:"hours"`
	Sequence int    `json:"sequence"`
}

// MobilityMatch is an internal role opening matched against the employee.
type MobilityMatch struct {
	RoleTitle  string   `json:"role_title"`
	Department string   `json:"department"`
	Readiness  int      `json:"readiness"`
	GapSkills  []string `json:"gap_skills"`
}

// ROIMetrics are the learning-investment indicators for the employee view.
type ROIMetrics struct {
	EffectivenessScore  float64 `json:"effectiveness_score"`
	AcquisitionVelocity float64 `json:"acquisition_velocity"`
	ProgramROI          float64 `json:"program_roi"`
	RetentionLift       float64 `json:"retention_lift"`
}

// GapSummary carries the agent's own count of gaps per classification.
// The agent's counts are displayed as-is; metrics.RecomputeGapSummary
// cross-checks them against the heatmap detail.
type GapSummary struct {
	CriticalCount    int `json:"critical_count"`
	ImportantCount   int `json:"important_count"`
	EnhancementCount int `json:"enhancement_count"`
}
