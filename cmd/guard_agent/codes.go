package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the promo code catalog",
	Long:  "Print every catalog record with its usage state as JSON, including exhausted and inactive codes.",
	RunE:  runCodes,
}

var (
	codesDBURL   string
	codesCatalog string
)

func init() {
	codesCmd.Flags().StringVar(&codesDBURL, "db-url", "", "PostgreSQL connection string (overrides DATABASE_URL env var)")
	codesCmd.Flags().StringVar(&codesCatalog, "codes", "", "Path to a JSON catalog file (used when no database is configured)")

	rootCmd.AddCommand(codesCmd)
}

func runCodes(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, databaseURLFlagOrEnv(codesDBURL), codesCatalog)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list codes: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
