package metrics

import "github.com/jonathan/skills-copilot/internal/types"

// ShortageRatio returns have/need as a 0-100 progress value, rounded to
// the nearest integer. The denominator is clamped to a minimum of 1 so a
// zero-need shortage reports 0 instead of dividing by zero. Negative
// counts are treated as 0.
func ShortageRatio(have, need int) int {
	if have < 0 {
		have = 0
	}
	if need < 1 {
		if have == 0 {
			return 0
		}
		need = 1
	}
	ratio := (have*100 + need/2) / need
	if ratio > 100 {
		ratio = 100
	}
	return ratio
}

// ShortageCoverage returns the progress ratio for one shortage entry.
func ShortageCoverage(s types.Shortage) int {
	return ShortageRatio(s.EmployeesWithSkill, s.EmployeesNeedingSkill)
}
