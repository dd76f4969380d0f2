package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/freelanceguard/freelance-guard/internal/db"
	"github.com/freelanceguard/freelance-guard/internal/observability"
	"github.com/freelanceguard/freelance-guard/internal/promo"
	"github.com/freelanceguard/freelance-guard/internal/types"
	"github.com/spf13/cobra"
)

var redeemCmd = &cobra.Command{
	Use:   "redeem",
	Short: "Redeem a promo code",
	Long:  "Attempt to consume one use of a promo code against the configured store and print the outcome as JSON.",
	RunE:  runRedeem,
}

var (
	redeemCode    string
	redeemDBURL   string
	redeemCatalog string
	redeemVerbose bool
)

func init() {
	redeemCmd.Flags().StringVarP(&redeemCode, "code", "c", "", "Promo code to redeem (required)")
	redeemCmd.Flags().StringVar(&redeemDBURL, "db-url", "", "PostgreSQL connection string (overrides DATABASE_URL env var)")
	redeemCmd.Flags().StringVar(&redeemCatalog, "codes", "", "Path to a JSON catalog file (used when no database is configured)")
	redeemCmd.Flags().BoolVarP(&redeemVerbose, "verbose", "v", false, "Print a formatted redemption summary")
	_ = redeemCmd.MarkFlagRequired("code")

	rootCmd.AddCommand(redeemCmd)
}

// openStore builds the redemption store: database-backed when a
// connection string is configured, in-memory otherwise. The returned
// closer releases the pool and is a no-op for the memory store.
func openStore(ctx context.Context, databaseURL, catalogPath string) (promo.Store, func(), error) {
	catalog := promo.DefaultCatalog()
	if catalogPath != "" {
		loaded, err := promo.LoadCatalog(catalogPath)
		if err != nil {
			return nil, nil, err
		}
		catalog = loaded
	}

	if databaseURL == "" {
		return promo.NewMemoryStore(catalog), func() {}, nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	store, err := promo.NewPostgresStore(ctx, database, catalog)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to initialize code store: %w", err)
	}
	return store, database.Close, nil
}

func databaseURLFlagOrEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

func runRedeem(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	store, closeStore, err := openStore(ctx, databaseURLFlagOrEnv(redeemDBURL), redeemCatalog)
	if err != nil {
		return err
	}

	// Closed before the exit paths below; os.Exit skips defers.
	result, redeemErr := store.Redeem(ctx, types.CanonicalCode(redeemCode))
	closeStore()
	if redeemErr != nil {
		return fmt.Errorf("failed to redeem code: %w", redeemErr)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	if redeemVerbose {
		observability.NewPrinter(os.Stderr).PrintRedemption(redeemCode, result)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
