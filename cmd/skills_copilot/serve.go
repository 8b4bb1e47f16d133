package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/skills-copilot/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the dashboard, assessment wizard, workforce reports, forecasts, and content library as REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	controller, cfg, cleanup, err := newSession(context.Background())
	if err != nil {
		return err
	}
	defer cleanup()

	port := servePort
	if cfg.Port != 0 && !cmd.Flags().Changed("port") {
		port = cfg.Port
	}

	srv := server.New(server.Config{Port: port}, controller)
	return srv.Start()
}
