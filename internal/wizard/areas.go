// Package wizard implements the multi-step self-assessment flow that
// gates the orchestrator request: role selection, skill self-ratings,
// and a review step that renders the collected inputs into a
// deterministic natural-language request.
package wizard

// Roles is the fixed role enumeration offered for current and target
// role selection.
var Roles = []string{
	"Software Engineer", "Senior Software Engineer", "Tech Lead", "Engineering Manager",
	"Product Manager", "Senior Product Manager", "Data Scientist", "Senior Data Scientist",
	"ML Engineer", "DevOps Engineer", "Cloud Architect", "UX Designer",
	"Senior UX Designer", "QA Engineer", "Security Engineer", "Business Analyst",
	"Project Manager", "VP of Engineering",
}

// ValidRole reports whether role is part of the fixed enumeration.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SkillArea is a self-rated competency dimension.
type SkillArea struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SkillAreas lists the rated dimensions in the order they appear in the
// rendered request. The order is fixed to keep the request deterministic.
var SkillAreas = []SkillArea{
	{ID: "technical", Label: "Technical Depth"},
	{ID: "leadership", Label: "Leadership"},
	{ID: "communication", Label: "Communication"},
	{ID: "strategy", Label: "Strategic Thinking"},
	{ID: "problem_solving", Label: "Problem Solving"},
	{ID: "execution", Label: "Execution & Delivery"},
}

// Rating bounds for skill areas.
const (
	MinRating = 1
	MaxRating = 5
)

// ExperienceQuestion is a single-choice background question.
type ExperienceQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

// ExperienceQuestions lists the background questions in rendered order.
var ExperienceQuestions = []ExperienceQuestion{
	{
		ID:      "years_experience",
		Prompt:  "Years of professional experience",
		Choices: []string{"0-2 years", "3-5 years", "6-10 years", "10+ years"},
	},
	{
		ID:      "team_size",
		Prompt:  "Largest team you have led or coordinated",
		Choices: []string{"None", "2-5 people", "6-10 people", "10+ people"},
	},
	{
		ID:      "project_scope",
		Prompt:  "Typical scope of projects you deliver",
		Choices: []string{"Individual tasks", "Single team features", "Cross-team initiatives", "Org-wide programs"},
	},
}

// validChoice reports whether answer is one of the question's choices.
func validChoice(q ExperienceQuestion, answer string) bool {
	for _, c := range q.Choices {
		if c == answer {
			return true
		}
	}
	return false
}
