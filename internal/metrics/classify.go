// Package metrics computes all dashboard-visible derived analytics from
// the canonical payload types. Every function is pure and total: missing
// or malformed inputs produce documented defaults, never panics.
package metrics

import (
	"strings"

	"github.com/jonathan/skills-copilot/internal/types"
)

// Classification is the severity of a skill gap.
type Classification string

// Gap classifications, ordered Enhancement < Important < Critical.
const (
	ClassEnhancement Classification = "Enhancement"
	ClassImportant   Classification = "Important"
	ClassCritical    Classification = "Critical"
)

// Gap classification thresholds.
const (
	criticalGapThreshold  = 30
	importantGapThreshold = 15
)

// ClassifyGap derives a classification from a numeric gap. Used wherever
// the agent omits an explicit classification: gap > 30 is Critical,
// 15 < gap <= 30 is Important, everything else is Enhancement.
func ClassifyGap(gap int) Classification {
	switch {
	case gap > criticalGapThreshold:
		return ClassCritical
	case gap > importantGapThreshold:
		return ClassImportant
	default:
		return ClassEnhancement
	}
}

// Rank returns the ordering rank of a classification, Enhancement lowest.
func (c Classification) Rank() int {
	switch c {
	case ClassCritical:
		return 2
	case ClassImportant:
		return 1
	default:
		return 0
	}
}

// EntryClassification resolves a gap entry's classification, preferring
// the agent-supplied value and falling back to the threshold table.
// Agent values are matched case-insensitively.
func EntryClassification(entry types.GapEntry) Classification {
	switch strings.ToLower(strings.TrimSpace(entry.Classification)) {
	case "critical":
		return ClassCritical
	case "important":
		return ClassImportant
	case "enhancement":
		return ClassEnhancement
	}
	return ClassifyGap(entry.Delta)
}

// PointClassification classifies a radar skill point directly from
// required - current, independent of the gap_heatmap array.
func PointClassification(p types.SkillPoint) Classification {
	return ClassifyGap(p.RequiredScore - p.CurrentScore)
}

// RecomputeGapSummary counts heatmap entries per classification. The
// agent ships its own gap_summary; a mismatch against this recomputation
// indicates an upstream data-quality problem, not a local error.
func RecomputeGapSummary(gaps []types.GapEntry) types.GapSummary {
	var summary types.GapSummary
	for _, gap := range gaps {
		switch EntryClassification(gap) {
		case ClassCritical:
			summary.CriticalCount++
		case ClassImportant:
			summary.ImportantCount++
		default:
			summary.EnhancementCount++
		}
	}
	return summary
}

// GapSummaryConsistent reports whether the agent-supplied summary matches
// the counts recomputed from the heatmap detail.
func GapSummaryConsistent(result *types.AssessmentResult) bool {
	if result == nil {
		return true
	}
	return result.GapSummary == RecomputeGapSummary(result.GapHeatmap)
}
