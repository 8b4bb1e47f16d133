package dashboard

import "github.com/jonathan/skills-copilot/internal/types"

// SampleAssessment returns the fixed built-in assessment payload used by
// the sample-data override. Fresh copies are returned so callers cannot
// mutate the canned data.
func SampleAssessment() *types.AssessmentResult {
	return &types.AssessmentResult{
		ReadinessScore: 68,
		EmployeeName:   "Alex Morgan",
		CurrentRole:    "Software Engineer",
		TargetRole:     "Tech Lead",
		SkillRadar: []types.SkillPoint{
			{SkillName: "System Design", CurrentScore: 65, RequiredScore: 90},
			{SkillName: "Team Leadership", CurrentScore: 45, RequiredScore: 85},
			{SkillName: "Architecture", CurrentScore: 70, RequiredScore: 95},
			{SkillName: "Code Review", CurrentScore: 80, RequiredScore: 90},
			{SkillName: "Mentoring", CurrentScore: 50, RequiredScore: 80},
			{SkillName: "Stakeholder Mgmt", CurrentScore: 40, RequiredScore: 75},
			{SkillName: "Performance Tuning", CurrentScore: 75, RequiredScore: 85},
			{SkillName: "Strategic Planning", CurrentScore: 35, RequiredScore: 80},
		},
		GapHeatmap: []types.GapEntry{
			{SkillName: "Team Leadership", Category: "Leadership", Delta: 40, Classification: "Critical"},
			{SkillName: "Strategic Planning", Category: "Leadership", Delta: 45, Classification: "Critical"},
			{SkillName: "Stakeholder Mgmt", Category: "Communication", Delta: 35, Classification: "Critical"},
			{SkillName: "System Design", Category: "Technical", Delta: 25, Classification: "Important"},
			{SkillName: "Architecture", Category: "Technical", Delta: 25, Classification: "Important"},
			{SkillName: "Mentoring", Category: "Leadership", Delta: 30, Classification: "Important"},
			{SkillName: "Code Review", Category: "Technical", Delta: 10, Classification: "Enhancement"},
			{SkillName: "Performance Tuning", Category: "Technical", Delta: 10, Classification: "Enhancement"},
		},
		LearningPath: types.LearningPath{
			MomentumScore: 72,
			TotalWeeks:    24,
			Activities: []types.Activity{
				{Title: "Leadership Foundations Masterclass", Type: "Course", Skill: "Team Leadership", Hours: 20, Sequence: 1},
				{Title: "System Design Interview Prep", Type: "Workshop", Skill: "System Design", Hours: 15, Sequence: 2},
				{Title: "Lead a Cross-Team Feature", Type: "Stretch Assignment", Skill: "Stakeholder Mgmt", Hours: 40, Sequence: 3},
				{Title: "AWS Solutions Architect Certification", Type: "Certification", Skill: "Architecture", Hours: 30, Sequence: 4},
				{Title: "Mentor Two Junior Engineers", Type: "On-the-Job", Skill: "Mentoring", Hours: 24, Sequence: 5},
				{Title: "Strategic Technical Planning Workshop", Type: "Workshop", Skill: "Strategic Planning", Hours: 12, Sequence: 6},
			},
		},
		MobilityMatches: []types.MobilityMatch{
			{RoleTitle: "Tech Lead - Platform", Department: "Engineering", Readiness: 72, GapSkills: []string{"Strategic Planning", "Team Leadership"}},
			{RoleTitle: "Senior Engineer - Architecture", Department: "Infrastructure", Readiness: 85, GapSkills: []string{"Stakeholder Mgmt"}},
			{RoleTitle: "Engineering Manager - Mobile", Department: "Product Engineering", Readiness: 55, GapSkills: []string{"Team Leadership", "Strategic Planning", "Stakeholder Mgmt"}},
		},
		ROIMetrics: types.ROIMetrics{EffectivenessScore: 78, AcquisitionVelocity: 3.2, ProgramROI: 245, RetentionLift: 18},
		GapSummary: types.GapSummary{CriticalCount: 3, ImportantCount: 3, EnhancementCount: 2},
	}
}

// SampleWorkforce returns the fixed built-in workforce report.
func SampleWorkforce() *types.WorkforceReport {
	return &types.WorkforceReport{
		SummaryCards: types.SummaryCards{TotalEmployeesAssessed: 847, CriticalSkillGaps: 156, AvgReadinessScore: 64, LearningROIPercentage: 312},
		SkillHeatmap: []types.DepartmentSkills{
			{Department: "Engineering", Skills: []types.SkillProficiency{
				{SkillName: "Cloud Architecture", Proficiency: 72, GapSeverity: "Low"},
				{SkillName: "AI/ML", Proficiency: 45, GapSeverity: "Critical"},
				{SkillName: "Security", Proficiency: 58, GapSeverity: "High"},
				{SkillName: "Leadership", Proficiency: 52, GapSeverity: "High"},
			}},
			{Department: "Product", Skills: []types.SkillProficiency{
				{SkillName: "Cloud Architecture", Proficiency: 35, GapSeverity: "Critical"},
				{SkillName: "AI/ML", Proficiency: 40, GapSeverity: "Critical"},
				{SkillName: "Security", Proficiency: 30, GapSeverity: "Critical"},
				{SkillName: "Leadership", Proficiency: 68, GapSeverity: "Low"},
			}},
			{Department: "Data Science", Skills: []types.SkillProficiency{
				{SkillName: "Cloud Architecture", Proficiency: 55, GapSeverity: "High"},
				{SkillName: "AI/ML", Proficiency: 82, GapSeverity: "Low"},
				{SkillName: "Security", Proficiency: 48, GapSeverity: "High"},
				{SkillName: "Leadership", Proficiency: 45, GapSeverity: "Critical"},
			}},
			{Department: "DevOps", Skills: []types.SkillProficiency{
				{SkillName: "Cloud Architecture", Proficiency: 88, GapSeverity: "Low"},
				{SkillName: "AI/ML", Proficiency: 30, GapSeverity: "Critical"},
				{SkillName: "Security", Proficiency: 75, GapSeverity: "Low"},
				{SkillName: "Leadership", Proficiency: 42, GapSeverity: "Critical"},
			}},
		},
		ShortageIndex: []types.Shortage{
			{SkillName: "AI/ML Engineering", ShortageSeverity: "Critical", AffectedDepartments: []string{"Engineering", "Product", "DevOps"}, EmployeesWithSkill: 34, EmployeesNeedingSkill: 120},
			{SkillName: "Cybersecurity", ShortageSeverity: "High", AffectedDepartments: []string{"Engineering", "Data Science"}, EmployeesWithSkill: 45, EmployeesNeedingSkill: 95},
			{SkillName: "Cloud Native", ShortageSeverity: "Medium", AffectedDepartments: []string{"Product", "Data Science"}, EmployeesWithSkill: 78, EmployeesNeedingSkill: 110},
			{SkillName: "Leadership & Mgmt", ShortageSeverity: "High", AffectedDepartments: []string{"Engineering", "Data Science", "DevOps"}, EmployeesWithSkill: 52, EmployeesNeedingSkill: 88},
		},
		ReadinessFunnel: []types.RoleFunnel{
			{Role: "Senior Engineer", NotReady: 25, Developing: 45, NearlyReady: 20, Ready: 10},
			{Role: "Tech Lead", NotReady: 40, Developing: 30, NearlyReady: 18, Ready: 12},
			{Role: "Eng Manager", NotReady: 55, Developing: 25, NearlyReady: 12, Ready: 8},
			{Role: "Data Scientist", NotReady: 30, Developing: 35, NearlyReady: 22, Ready: 13},
			{Role: "Product Manager", NotReady: 20, Developing: 40, NearlyReady: 25, Ready: 15},
		},
		Effectiveness: types.EffectivenessAnalytics{AdoptionRate: 78, CompletionRate: 65, AvgSkillLift: 23, PerformanceCorrelation: 0.72, RetentionCorrelation: 0.68, PromotionAcceleration: 34},
		ROIByDepartment: []types.DepartmentROI{
			{Department: "Engineering", Investment: 450000, Returns: 1350000, ROIPercentage: 200},
			{Department: "Product", Investment: 280000, Returns: 820000, ROIPercentage: 193},
			{Department: "Data Science", Investment: 320000, Returns: 1100000, ROIPercentage: 244},
			{Department: "DevOps", Investment: 180000, Returns: 590000, ROIPercentage: 228},
			{Department: "Design", Investment: 150000, Returns: 380000, ROIPercentage: 153},
		},
		Underperforming: []types.Program{
			{ProgramName: "Legacy Java Migration Track", CompletionRate: 32, SkillLift: 8, Cost: 85000, Recommendation: "Replace with modern cloud-native curriculum"},
			{ProgramName: "Basic SQL Bootcamp", CompletionRate: 45, SkillLift: 12, Cost: 42000, Recommendation: "Merge with Data Engineering pathway"},
			{ProgramName: "Generic Leadership 101", CompletionRate: 28, SkillLift: 5, Cost: 65000, Recommendation: "Replace with role-specific leadership modules"},
		},
	}
}

// SampleForecast returns the fixed built-in forecast payload.
func SampleForecast() *types.ForecastResult {
	return &types.ForecastResult{
		Scenario:      "Rapid AI/ML adoption across all product lines requiring 40% workforce upskilling in generative AI, MLOps, and responsible AI practices",
		HorizonMonths: 18,
		ShortageForecasts: []types.ShortageForecast{
			{SkillName: "Generative AI", CurrentSupply: 15, ProjectedDemand: 85, GapAt6Months: -35, GapAt12Months: -55, GapAt18Months: -70, Severity: "Critical"},
			{SkillName: "MLOps", CurrentSupply: 22, ProjectedDemand: 60, GapAt6Months: -20, GapAt12Months: -30, GapAt18Months: -38, Severity: "High"},
			{SkillName: "Responsible AI", CurrentSupply: 8, ProjectedDemand: 45, GapAt6Months: -18, GapAt12Months: -28, GapAt18Months: -37, Severity: "Critical"},
			{SkillName: "Data Engineering", CurrentSupply: 40, ProjectedDemand: 65, GapAt6Months: -10, GapAt12Months: -18, GapAt18Months: -25, Severity: "Medium"},
			{SkillName: "Cloud ML Services", CurrentSupply: 30, ProjectedDemand: 55, GapAt6Months: -12, GapAt12Months: -20, GapAt18Months: -25, Severity: "High"},
		},
		HiringVsUpskilling: []types.TalentStrategy{
			{SkillName: "Generative AI", HireCost: 185000, HireTimeMonths: 4, UpskillCost: 12000, UpskillTimeMonths: 6, Recommendation: "Hybrid: Hire 30%, Upskill 70%", Confidence: 0.82},
			{SkillName: "MLOps", HireCost: 165000, HireTimeMonths: 3, UpskillCost: 8500, UpskillTimeMonths: 4, Recommendation: "Upskill Priority", Confidence: 0.88},
			{SkillName: "Responsible AI", HireCost: 195000, HireTimeMonths: 5, UpskillCost: 6000, UpskillTimeMonths: 3, Recommendation: "Upskill Priority", Confidence: 0.91},
			{SkillName: "Data Engineering", HireCost: 155000, HireTimeMonths: 3, UpskillCost: 9000, UpskillTimeMonths: 5, Recommendation: "Upskill Priority", Confidence: 0.85},
			{SkillName: "Cloud ML Services", HireCost: 170000, HireTimeMonths: 3, UpskillCost: 7500, UpskillTimeMonths: 4, Recommendation: "Hybrid: Hire 20%, Upskill 80%", Confidence: 0.87},
		},
		ReadinessProjections: []types.ReadinessPoint{
			{Month: 0, ReadinessPercentage: 32, ConfidenceLower: 30, ConfidenceUpper: 34},
			{Month: 3, ReadinessPercentage: 42, ConfidenceLower: 38, ConfidenceUpper: 46},
			{Month: 6, ReadinessPercentage: 55, ConfidenceLower: 49, ConfidenceUpper: 61},
			{Month: 9, ReadinessPercentage: 65, ConfidenceLower: 57, ConfidenceUpper: 73},
			{Month: 12, ReadinessPercentage: 74, ConfidenceLower: 64, ConfidenceUpper: 84},
			{Month: 15, ReadinessPercentage: 82, ConfidenceLower: 70, ConfidenceUpper: 94},
			{Month: 18, ReadinessPercentage: 88, ConfidenceLower: 74, ConfidenceUpper: 100},
		},
		Recommendations: []types.Recommendation{
			{Title: "Launch AI Academy Program", Description: "Create an internal AI Academy with tiered learning paths for Generative AI, MLOps, and Responsible AI.", Priority: "Critical", Impact: "High", Timeline: "0-3 months"},
			{Title: "Hire Strategic AI Leaders", Description: "Recruit 5-8 senior AI practitioners to serve as technical leads and internal trainers.", Priority: "High", Impact: "High", Timeline: "1-4 months"},
			{Title: "Establish AI Ethics Board", Description: "Form a cross-functional Responsible AI committee to develop governance frameworks.", Priority: "Critical", Impact: "Medium", Timeline: "0-2 months"},
			{Title: "Cloud ML Infrastructure Investment", Description: "Upgrade cloud infrastructure to support ML workloads and training environments.", Priority: "Medium", Impact: "High", Timeline: "2-6 months"},
		},
	}
}
