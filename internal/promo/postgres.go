package promo

import (
	"context"

	"github.com/freelanceguard/freelance-guard/internal/db"
	"github.com/freelanceguard/freelance-guard/internal/types"
)

// PostgresStore backs the redemption contract with a durable catalog.
// Atomicity comes from a single conditional UPDATE per redemption, so
// concurrent attempts against the last remaining use serialize in the
// database rather than in this process.
type PostgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a store over an established connection pool,
// running the table migration and seeding the catalog. Existing rows
// keep their usage counts.
func NewPostgresStore(ctx context.Context, database *db.DB, catalog []types.CodeRecord) (*PostgresStore, error) {
	if err := database.Migrate(ctx); err != nil {
		return nil, err
	}

	seed := make([]types.CodeRecord, 0, len(catalog))
	for _, rec := range catalog {
		rec.Code = types.CanonicalCode(rec.Code)
		seed = append(seed, rec)
	}
	if err := database.SeedCodes(ctx, seed); err != nil {
		return nil, err
	}

	return &PostgresStore{db: database}, nil
}

// Lookup returns the record for a code, or nil when unknown.
func (s *PostgresStore) Lookup(ctx context.Context, code string) (*types.CodeRecord, error) {
	return s.db.GetCode(ctx, types.CanonicalCode(code))
}

// List returns every catalog record ordered by code.
func (s *PostgresStore) List(ctx context.Context) ([]types.CodeRecord, error) {
	return s.db.ListCodes(ctx)
}

// Redeem attempts to consume one use of a code.
func (s *PostgresStore) Redeem(ctx context.Context, code string) (*types.RedemptionResult, error) {
	canonical := types.CanonicalCode(code)

	rec, err := s.db.TryConsumeCode(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return types.SuccessResult(rec.DiscountPercent, rec.MaxUses-rec.UsesCount), nil
	}

	// Nothing was consumed; classify the rejection.
	rec, err = s.db.GetCode(ctx, canonical)
	if err != nil {
		return nil, err
	}
	switch {
	case rec == nil:
		return &types.RedemptionResult{Valid: false, Message: MsgUnknown}, nil
	case !rec.Active:
		return &types.RedemptionResult{Valid: false, Message: MsgInactive}, nil
	default:
		return &types.RedemptionResult{Valid: false, Message: MsgExhausted}, nil
	}
}
