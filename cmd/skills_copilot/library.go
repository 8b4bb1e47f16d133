package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skills-copilot/internal/ingest"
	"github.com/jonathan/skills-copilot/internal/observability"
	"github.com/jonathan/skills-copilot/internal/types"
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the training content library",
}

var libraryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate a content item and preview its catalog entry",
	Long: `Validates a content item the way the dashboard does before cataloging it.
For website content with no explicit title, the page is fetched and its
title and description are read from the HTML metadata.`,
	RunE: runLibraryAdd,
}

var (
	libraryURL         string
	libraryType        string
	libraryTitle       string
	libraryDescription string
	libraryDepartments []string
	libraryRoles       []string
)

func init() {
	libraryAddCmd.Flags().StringVar(&libraryURL, "url", "", "Content URL (required)")
	libraryAddCmd.Flags().StringVar(&libraryType, "type", string(types.ContentWebsite), "Content type: video, document, pdf, or website")
	libraryAddCmd.Flags().StringVar(&libraryTitle, "title", "", "Title (fetched from page metadata for websites when empty)")
	libraryAddCmd.Flags().StringVar(&libraryDescription, "description", "", "Description")
	libraryAddCmd.Flags().StringArrayVar(&libraryDepartments, "department", nil, "Department tag (repeatable)")
	libraryAddCmd.Flags().StringArrayVar(&libraryRoles, "role", nil, "Role tag (repeatable)")
	_ = libraryAddCmd.MarkFlagRequired("url")
	libraryCmd.AddCommand(libraryAddCmd)
	rootCmd.AddCommand(libraryCmd)
}

func runLibraryAdd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	controller, cfg, cleanup, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	form := types.NewContentItem{
		Title:       libraryTitle,
		Description: libraryDescription,
		Type:        types.ContentType(libraryType),
		URL:         libraryURL,
		Departments: libraryDepartments,
		Roles:       libraryRoles,
	}

	if form.Title == "" && form.Type == types.ContentWebsite {
		meta, err := ingest.FetchMetadata(ctx, form.URL)
		if err != nil {
			return fmt.Errorf("failed to read page metadata: %w", err)
		}
		form.Title = meta.Title
		if form.Description == "" {
			form.Description = meta.Description
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Fetched metadata: %q\n", meta.Title)
		}
	}

	item, err := controller.AddContent(form)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Added %s (%s)\n  %s\n  id: %s\n", item.Title, item.Type, item.URL, item.ID)
	observability.NewPrinter(os.Stdout).PrintContentSummary(controller.ContentSummary())
	return nil
}
