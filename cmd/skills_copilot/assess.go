package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skills-copilot/internal/dashboard"
	"github.com/jonathan/skills-copilot/internal/observability"
	"github.com/jonathan/skills-copilot/internal/wizard"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a skills assessment through the orchestrator agent",
	Long: `Walks the assessment wizard non-interactively: sets the current and target
roles, records self-ratings and experience answers, then submits the rendered
request to the orchestrator agent and prints the assessment.

Ratings default to 3/5 and experience answers default to the first choice
unless overridden.`,
	RunE: runAssess,
}

var (
	assessCurrentRole string
	assessTargetRole  string
	assessRatings     []string
	assessAnswers     []string
	assessStrengths   string
	assessGrowth      string
)

func init() {
	assessCmd.Flags().StringVar(&assessCurrentRole, "current-role", "", "Current role (required)")
	assessCmd.Flags().StringVar(&assessTargetRole, "target-role", "", "Target role (required)")
	assessCmd.Flags().StringArrayVar(&assessRatings, "rating", nil, "Skill self-rating as area=1..5 (repeatable, e.g. --rating technical=4)")
	assessCmd.Flags().StringArrayVar(&assessAnswers, "answer", nil, "Experience answer as question=choice (repeatable)")
	assessCmd.Flags().StringVar(&assessStrengths, "strengths", "", "Free-text strengths note")
	assessCmd.Flags().StringVar(&assessGrowth, "growth", "", "Free-text growth-areas note")
	_ = assessCmd.MarkFlagRequired("current-role")
	_ = assessCmd.MarkFlagRequired("target-role")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	controller, cfg, cleanup, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := controller.SetRoles(assessCurrentRole, assessTargetRole); err != nil {
		return err
	}
	if err := controller.AdvanceWizard(); err != nil {
		return err
	}

	if err := applyRatings(controller, assessRatings); err != nil {
		return err
	}
	if err := applyAnswers(controller, assessAnswers); err != nil {
		return err
	}
	controller.SetNotes(assessStrengths, assessGrowth)
	if err := controller.AdvanceWizard(); err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stdout, "Agent request:\n%s\n\n", controller.RequestMessage())
	}

	if err := controller.SubmitAssessment(ctx); err != nil {
		return err
	}

	snap := controller.Snapshot()
	if snap.Assessment == nil {
		return fmt.Errorf("no assessment data returned")
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAssessment(snap.Assessment.Result)
	fmt.Fprintf(os.Stdout, "Readiness: %s\n%s\n", snap.Assessment.ReadinessBand, snap.Assessment.Narrative)
	return nil
}

// applyRatings rates every skill area, using 3/5 for areas the user did
// not override.
func applyRatings(controller *dashboard.Controller, overrides []string) error {
	ratings := make(map[string]int, len(wizard.SkillAreas))
	for _, area := range wizard.SkillAreas {
		ratings[area.ID] = 3
	}
	for _, raw := range overrides {
		areaID, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --rating %q, expected area=1..5", raw)
		}
		rating, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid --rating %q: %w", raw, err)
		}
		if _, known := ratings[areaID]; !known {
			return fmt.Errorf("unknown skill area %q", areaID)
		}
		ratings[areaID] = rating
	}
	for _, area := range wizard.SkillAreas {
		if err := controller.RateSkill(area.ID, ratings[area.ID]); err != nil {
			return err
		}
	}
	return nil
}

// applyAnswers answers every experience question, defaulting to the
// first choice.
func applyAnswers(controller *dashboard.Controller, overrides []string) error {
	answers := make(map[string]string, len(wizard.ExperienceQuestions))
	for _, q := range wizard.ExperienceQuestions {
		answers[q.ID] = q.Choices[0]
	}
	for _, raw := range overrides {
		questionID, choice, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid --answer %q, expected question=choice", raw)
		}
		if _, known := answers[questionID]; !known {
			return fmt.Errorf("unknown question %q", questionID)
		}
		answers[questionID] = choice
	}
	for _, q := range wizard.ExperienceQuestions {
		if err := controller.AnswerQuestion(q.ID, answers[q.ID]); err != nil {
			return err
		}
	}
	return nil
}
