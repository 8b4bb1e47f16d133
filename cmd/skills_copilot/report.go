package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skills-copilot/internal/observability"
)

var workforceCmd = &cobra.Command{
	Use:   "workforce",
	Short: "Fetch the workforce intelligence report",
	RunE:  runWorkforce,
}

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Run a predictive talent forecast for a scenario",
	RunE:  runForecast,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch the workforce report and a forecast in parallel",
	RunE:  runReport,
}

var (
	forecastScenario string
	reportScenario   string
)

func init() {
	forecastCmd.Flags().StringVar(&forecastScenario, "scenario", "", "Scenario to project, e.g. \"Expansion into AI products\" (required)")
	_ = forecastCmd.MarkFlagRequired("scenario")
	reportCmd.Flags().StringVar(&reportScenario, "scenario", "Steady growth", "Scenario for the forecast half of the report")
	rootCmd.AddCommand(workforceCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(reportCmd)
}

func runWorkforce(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	controller, _, cleanup, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := controller.RefreshWorkforce(ctx); err != nil {
		return err
	}

	snap := controller.Snapshot()
	if snap.Workforce == nil {
		return fmt.Errorf("no workforce data returned")
	}
	observability.NewPrinter(os.Stdout).PrintWorkforce(snap.Workforce.Report)
	return nil
}

func runForecast(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	controller, _, cleanup, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := controller.RunForecast(ctx, forecastScenario); err != nil {
		return err
	}

	snap := controller.Snapshot()
	if snap.Forecast == nil {
		return fmt.Errorf("no forecast data returned")
	}
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintForecast(snap.Forecast.Forecast)
	fmt.Fprintln(os.Stdout, snap.Forecast.Narrative)
	return nil
}

func runReport(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	controller, _, cleanup, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := controller.RefreshManagerData(ctx, reportScenario); err != nil {
		return err
	}

	snap := controller.Snapshot()
	printer := observability.NewPrinter(os.Stdout)
	if snap.Workforce != nil {
		printer.PrintWorkforce(snap.Workforce.Report)
	}
	if snap.Forecast != nil {
		printer.PrintForecast(snap.Forecast.Forecast)
	}
	return nil
}
