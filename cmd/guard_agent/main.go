// Package main provides the entry point for the Freelance Guard HTTP API server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guard_agent",
	Short: "Freelance Guard client risk assessment",
	Long:  "Freelance Guard evaluates prospective client messages for freelancers and returns a structured risk assessment, with promo code gating for paid analyses.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
