package main

import (
	"fmt"

	"github.com/gsabatini/match-engine/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for evaluating matches and managing candidate and position records.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	registry, err := activeRegistry()
	if err != nil {
		return err
	}

	// The database is optional: without it the server still evaluates inline
	// requests, it just cannot store records or rank stored positions.
	databaseURL := viper.GetString("database.url")
	if databaseURL == "" {
		log.Warn("no database configured, record and match endpoints will respond 503")
	}

	cfg := server.Config{
		Port:        viper.GetInt("server.port"),
		DatabaseURL: databaseURL,
		Registry:    registry,
		Engine:      engineConfig(),
		Logger:      log,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
