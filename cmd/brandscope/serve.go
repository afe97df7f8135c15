package main

import (
	"github.com/spf13/cobra"

	"github.com/mathieu/brandscope/internal/config"
	"github.com/mathieu/brandscope/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server for the dashboard",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	application, err := buildApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer application.close()

	srv := server.New(cfg.Port, application.orchestrator, application.registry, application.logger)
	return srv.Start()
}
