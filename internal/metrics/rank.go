package metrics

import (
	"sort"

	"github.com/jonathan/skills-copilot/internal/types"
)

// LargestGaps returns the skill points sorted by required - current,
// descending. The sort is stable so ties keep wire order.
func LargestGaps(points []types.SkillPoint) []types.SkillPoint {
	ranked := make([]types.SkillPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		gi := ranked[i].RequiredScore - ranked[i].CurrentScore
		gj := ranked[j].RequiredScore - ranked[j].CurrentScore
		return gi > gj
	})
	return ranked
}

// TopStrengths returns the skill points sorted by current score,
// descending, ties keeping wire order.
func TopStrengths(points []types.SkillPoint) []types.SkillPoint {
	ranked := make([]types.SkillPoint, len(points))
	copy(ranked, points)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CurrentScore > ranked[j].CurrentScore
	})
	return ranked
}

// TopGapSkill names the skill with the largest gap, or "" when there are
// no skill points.
func TopGapSkill(points []types.SkillPoint) string {
	if len(points) == 0 {
		return ""
	}
	return LargestGaps(points)[0].SkillName
}

// OrderedActivities returns learning-path activities sorted by sequence,
// ties keeping wire order.
func OrderedActivities(path types.LearningPath) []types.Activity {
	ordered := make([]types.Activity, len(path.Activities))
	copy(ordered, path.Activities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})
	return ordered
}
