package metrics

import "github.com/jonathan/skills-copilot/internal/types"

// HeatmapCell is one department x skill cell of the materialized matrix.
type HeatmapCell struct {
	SkillName   string
	Proficiency int
	Severity    string
	Reported    bool
}

// HeatmapRow is one department's cells, aligned to the matrix skill order.
type HeatmapRow struct {
	Department string
	Cells      []HeatmapCell
}

// HeatmapMatrix is the full department x skill matrix. Skills holds the
// column order shared by every row.
type HeatmapMatrix struct {
	Skills []string
	Rows   []HeatmapRow
}

// Proficiency color bands for heatmap cells.
const (
	ProficiencyHigh     = 75
	ProficiencyModerate = 55
	ProficiencyLow      = 35
)

// ProficiencyBand returns the display band for a proficiency value:
// "high" (>=75), "moderate" (>=55), "low" (>=35), "critical" otherwise.
func ProficiencyBand(proficiency int) string {
	switch {
	case proficiency >= ProficiencyHigh:
		return "high"
	case proficiency >= ProficiencyModerate:
		return "moderate"
	case proficiency >= ProficiencyLow:
		return "low"
	default:
		return "critical"
	}
}

// BuildHeatmapMatrix materializes the department x skill matrix.
// Departments do not all report the same skills, so the column set is
// the union of skill names in first-seen order; a department missing a
// skill gets a zero-proficiency, lowest-band cell marked unreported.
func BuildHeatmapMatrix(departments []types.DepartmentSkills) HeatmapMatrix {
	var skills []string
	seen := make(map[string]bool)
	for _, dept := range departments {
		for _, s := range dept.Skills {
			if s.SkillName != "" && !seen[s.SkillName] {
				seen[s.SkillName] = true
				skills = append(skills, s.SkillName)
			}
		}
	}

	rows := make([]HeatmapRow, 0, len(departments))
	for _, dept := range departments {
		byName := make(map[string]types.SkillProficiency, len(dept.Skills))
		for _, s := range dept.Skills {
			if _, dup := byName[s.SkillName]; !dup {
				byName[s.SkillName] = s
			}
		}

		cells := make([]HeatmapCell, 0, len(skills))
		for _, name := range skills {
			if s, ok := byName[name]; ok {
				cells = append(cells, HeatmapCell{
					SkillName:   name,
					Proficiency: s.Proficiency,
					Severity:    s.GapSeverity,
					Reported:    true,
				})
				continue
			}
			cells = append(cells, HeatmapCell{SkillName: name, Severity: ProficiencyBand(0)})
		}
		rows = append(rows, HeatmapRow{Department: dept.Department, Cells: cells})
	}

	return HeatmapMatrix{Skills: skills, Rows: rows}
}
