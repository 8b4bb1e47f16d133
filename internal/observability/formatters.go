// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skills-copilot/internal/metrics"
	"github.com/jonathan/skills-copilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAssessment outputs a human-readable summary of an assessment result.
func (p *Printer) PrintAssessment(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Employee:  %s\n", result.EmployeeName))
	sb.WriteString(fmt.Sprintf("Path:      %s → %s\n", result.CurrentRole, result.TargetRole))
	sb.WriteString(fmt.Sprintf("Readiness: %d%% (%s)\n", result.ReadinessScore, metrics.ReadinessBand(result.ReadinessScore)))
	sb.WriteString("\n")

	gaps := metrics.LargestGaps(result.SkillRadar)
	if len(gaps) > 0 {
		sb.WriteString("Largest gaps:\n")
		count := min(len(gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			g := gaps[i]
			gap := g.RequiredScore - g.CurrentScore
			sb.WriteString(fmt.Sprintf("  • %s (%d → %d, gap %d, %s)\n",
				g.SkillName, g.CurrentScore, g.RequiredScore, gap, metrics.ClassifyGap(gap)))
		}
		if len(gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gaps)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	summary := metrics.RecomputeGapSummary(result.GapHeatmap)
	sb.WriteString(fmt.Sprintf("Gaps: %d critical, %d important, %d enhancement\n",
		summary.CriticalCount, summary.ImportantCount, summary.EnhancementCount))
	if !metrics.GapSummaryConsistent(result) {
		sb.WriteString("(agent gap_summary disagrees with heatmap detail)\n")
	}
	sb.WriteString(fmt.Sprintf("Learning path: %d weeks, momentum %d\n",
		result.LearningPath.TotalWeeks, result.LearningPath.MomentumScore))

	p.printBox("SKILL ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWorkforce outputs a summary of a workforce intelligence report.
func (p *Printer) PrintWorkforce(report *types.WorkforceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Assessed:      %d employees\n", report.SummaryCards.TotalEmployeesAssessed))
	sb.WriteString(fmt.Sprintf("Critical gaps: %d\n", report.SummaryCards.CriticalSkillGaps))
	sb.WriteString(fmt.Sprintf("Avg readiness: %d%%\n", report.SummaryCards.AvgReadinessScore))
	sb.WriteString(fmt.Sprintf("Learning ROI:  %d%%\n", report.SummaryCards.LearningROIPercentage))

	if len(report.ShortageIndex) > 0 {
		sb.WriteString("\nShortages:\n")
		count := min(len(report.ShortageIndex), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := report.ShortageIndex[i]
			sb.WriteString(fmt.Sprintf("  • %s: %d/%d covered (%d%%, %s)\n",
				s.SkillName, s.EmployeesWithSkill, s.EmployeesNeedingSkill,
				metrics.ShortageCoverage(s), s.ShortageSeverity))
		}
		if len(report.ShortageIndex) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.ShortageIndex)-maxItemsToShow))
		}
	}

	matrix := metrics.BuildHeatmapMatrix(report.SkillHeatmap)
	if len(matrix.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nHeatmap: %d departments x %d skills\n", len(matrix.Rows), len(matrix.Skills)))
	}

	p.printBox("WORKFORCE INTELLIGENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintForecast outputs a summary of a capability forecast.
func (p *Printer) PrintForecast(forecast *types.ForecastResult) {
	if forecast == nil {
		return
	}

	var sb strings.Builder

	scenario := forecast.Scenario
	if len(scenario) > 50 {
		scenario = scenario[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Scenario: %s\n", scenario))
	sb.WriteString(fmt.Sprintf("Horizon:  %d months\n", forecast.HorizonMonths))

	if len(forecast.ShortageForecasts) > 0 {
		sb.WriteString("\nShortage forecasts (18 mo):\n")
		count := min(len(forecast.ShortageForecasts), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := forecast.ShortageForecasts[i]
			sb.WriteString(fmt.Sprintf("  • %s: %d (%s)\n", f.SkillName, f.GapAt18Months, f.Severity))
		}
	}

	if len(forecast.HiringVsUpskilling) > 0 {
		sb.WriteString("\nStrategies:\n")
		count := min(len(forecast.HiringVsUpskilling), 3)
		for i := 0; i < count; i++ {
			s := forecast.HiringVsUpskilling[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s (hire %s vs upskill %s)\n",
				s.SkillName, s.Recommendation, FormatCurrency(s.HireCost), FormatCurrency(s.UpskillCost)))
		}
	}

	if narrative := metrics.ForecastNarrative(forecast); narrative != "" {
		sb.WriteString("\n" + narrative + "\n")
	}

	p.printBox("CAPABILITY FORECAST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContentSummary outputs the library partition counts.
func (p *Printer) PrintContentSummary(summary types.ContentSummary) {
	content := fmt.Sprintf("Total: %d\nVideos: %d\nDocuments & PDFs: %d\nWebsites: %d",
		summary.Total, summary.Videos, summary.Documents, summary.Websites)
	p.printBox("CONTENT LIBRARY", content)
}

// FormatCurrency renders a dollar amount compactly: $1.4M, $450K, $75.
func FormatCurrency(val float64) string {
	switch {
	case val >= 1000000:
		return fmt.Sprintf("$%.1fM", val/1000000)
	case val >= 1000:
		return fmt.Sprintf("$%.0fK", val/1000)
	default:
		return fmt.Sprintf("$%.0f", val)
	}
}
