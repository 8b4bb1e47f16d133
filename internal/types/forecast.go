package types

// ForecastResult is the canonical payload returned by the
// predictive-forecast agent for a user-supplied business scenario.
type ForecastResult struct {
	Scenario             string             `json:"scenario"`
	HorizonMonths        int                `json:"forecast_horizon_months"`
	ShortageForecasts    []ShortageForecast `json:"skill_shortage_forecasts"`
	HiringVsUpskilling   []TalentStrategy   `json:"hiring_vs_upskilling"`
	ReadinessProjections []ReadinessPoint   `json:"readiness_projections"`
	Recommendations      []Recommendation   `json:"strategic_recommendations"`
}

// ShortageForecast projects one skill's supply-demand gap at the 6, 12,
// and 18 month marks. Gap values are zero or negative (deficits).
type ShortageForecast struct {
	SkillName       string `json:"skill_name"`
	CurrentSupply   int    `json:"current_supply"`
	ProjectedDemand int    `json:"projected_demand"`
	GapAt6Months    int    `json:"gap_at_6_months"`
	GapAt12Months   int    `json:"gap_at_12_months"`
	GapAt18Months   int    `json:"gap_at_18_months"`
	Severity        string `json:"severity"`
}

// TalentStrategy compares hiring against upskilling for one skill.
// Confidence is in [0,1] and rendered as a percentage.
type TalentStrategy struct {
	SkillName         string  `json:"skill_name"`
	HireCost          float64 `json:"hire_cost"`
	HireTimeMonths    int     `json:"hire_time_months"`
	UpskillCost       float64 `json:"upskill_cost"`
	UpskillTimeMonths int     `json:"upskill_time_months"`
	Recommendation    string  `json:"recommendation"`
	Confidence        float64 `json:"confidence"`
}

// ReadinessPoint is one point of the readiness trajectory with its
// confidence band. Months are non-decreasing in a well-formed payload
// and ConfidenceLower <= ReadinessPercentage <= ConfidenceUpper.
type ReadinessPoint struct {
	Month               int     `json:"month"`
	ReadinessPercentage float64 `json:"readiness_percentage"`
	ConfidenceLower     float64 `json:"confidence_lower"`
	ConfidenceUpper     float64 `json:"confidence_upper"`
}

// Recommendation is one strategic action item from the forecast.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Impact      string `json:"impact"`
	Timeline    string `json:"timeline"`
}
