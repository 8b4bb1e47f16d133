package types

// WorkforceReport is the canonical payload returned by the
// workforce-intelligence agent for the org-wide manager view.
type WorkforceReport struct {
	SummaryCards    SummaryCards           `json:"summary_cards"`
	SkillHeatmap    []DepartmentSkills     `json:"skill_heatmap"`
	ShortageIndex   []Shortage             `json:"shortage_index"`
	ReadinessFunnel []RoleFunnel           `json:"readiness_funnel"`
	Effectiveness   EffectivenessAnalytics `json:"effectiveness_analytics"`
	ROIByDepartment []DepartmentROI        `json:"roi_by_department"`
	Underperforming []Program              `json:"underperforming_programs"`
}

// SummaryCards are the four headline numbers of the workforce overview.
type SummaryCards struct {
	TotalEmployeesAssessed int `json:"total_employees_assessed"`
	CriticalSkillGaps      int `json:"critical_skill_gaps"`
	AvgReadinessScore      int `json:"avg_readiness_score"`
	LearningROIPercentage  int `json:"learning_roi_percentage"`
}

// DepartmentSkills is one heatmap row: a department and its skill
// proficiencies. Departments are not guaranteed to report the same skill
// set; metrics.BuildHeatmapMatrix computes the union.
type DepartmentSkills struct {
	Department string             `json:"department"`
	Skills     []SkillProficiency `json:"skills"`
}

// SkillProficiency is one heatmap cell.
type SkillProficiency struct {
	SkillName   string `json:"skill_name"`
	Proficiency int    `json:"proficiency"`
	GapSeverity string `json:"gap_severity"`
}

// Shortage describes a skill with a supply-demand mismatch.
type Shortage struct {
	SkillName             string   `json:"skill_name"`
	ShortageSeverity      string   `json:"shortage_severity"`
	AffectedDepartments   []string `json:"affected_departments"`
	EmployeesWithSkill    int      `json:"employees_with_skill"`
	EmployeesNeedingSkill int      `json:"employees_needing_skill"`
}

// RoleFunnel is the readiness distribution for one target role. The four
// buckets are cohort percentages; upstream does not guarantee they sum
// to 100.
type RoleFunnel struct {
	Role        string `json:"role"`
	NotReady    int    `json:"not_ready"`
	Developing  int    `json:"developing"`
	NearlyReady int    `json:"nearly_ready"`
	Ready       int    `json:"ready"`
}

// EffectivenessAnalytics are org-wide L&D impact metrics.
type EffectivenessAnalytics struct {
	AdoptionRate           float64 `json:"adoption_rate"`
	CompletionRate         float64 `json:"completion_rate"`
	AvgSkillLift           float64 `json:"avg_skill_lift"`
	PerformanceCorrelation float64 `json:"performance_correlation"`
	RetentionCorrelation   float64 `json:"retention_correlation"`
	PromotionAcceleration  float64 `json:"promotion_acceleration"`
}

// DepartmentROI is learning investment vs returns for one department.
type DepartmentROI struct {
	Department    string  `json:"department"`
	Investment    float64 `json:"investment"`
	Returns       float64 `json:"returns"`
	ROIPercentage float64 `json:"roi_percentage"`
}

// Program is a learning program flagged for review or replacement.
type Program struct {
	ProgramName    string  `json:"program_name"`
	CompletionRate float64 `json:"completion_rate"`
	SkillLift      float64 `json:"skill_lift"`
	Cost           float64 `json:"cost"`
	Recommendation string  `json:"recommendation"`
}
