package main

import (
	"fmt"
	"os"

	"github.com/freelanceguard/freelance-guard/internal/config"
	"github.com/freelanceguard/freelance-guard/internal/promo"
	"github.com/freelanceguard/freelance-guard/internal/server"
	"github.com/freelanceguard/freelance-guard/internal/types"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the /analyze and /verify-code endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*loaded)
	}

	if cfg.DatabaseURL == "" {
		// Optional: without it the server keeps the catalog in memory.
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	var catalog []types.CodeRecord
	if cfg.Codes != "" {
		loaded, err := promo.LoadCatalog(cfg.Codes)
		if err != nil {
			return err
		}
		catalog = loaded
	}

	port := servePort
	if cfg.Port != 0 && port == 8080 {
		port = cfg.Port
	}

	srv, err := server.New(server.Config{
		Port:            port,
		DatabaseURL:     cfg.DatabaseURL,
		APIKey:          apiKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Catalog:         catalog,
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
