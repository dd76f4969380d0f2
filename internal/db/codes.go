package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/freelanceguard/freelance-guard/internal/types"
	"github.com/jackc/pgx/v5"
)

// GetCode fetches a promo code record by its canonical code.
// Returns (nil, nil) when the code is not in the catalog.
func (db *DB) GetCode(ctx context.Context, code string) (*types.CodeRecord, error) {
	var rec types.CodeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT code, uses_count, max_uses, discount_percent, active
		 FROM promo_codes WHERE code = $1`,
		code,
	).Scan(&rec.Code, &rec.UsesCount, &rec.MaxUses, &rec.DiscountPercent, &rec.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get code: %w", err)
	}
	return &rec, nil
}

// TryConsumeCode atomically consumes one use of an active, non-exhausted
// code. The conditional UPDATE is the critical section: two concurrent
// attempts against the last remaining use cannot both succeed.
// Returns (nil, nil) when nothing was consumed; callers classify why
// via GetCode.
func (db *DB) TryConsumeCode(ctx context.Context, code string) (*types.CodeRecord, error) {
	var rec types.CodeRecord
	err := db.pool.QueryRow(ctx,
		`UPDATE promo_codes
		 SET uses_count = uses_count + 1, updated_at = NOW()
		 WHERE code = $1 AND active AND uses_count < max_uses
		 RETURNING code, uses_count, max_uses, discount_percent, active`,
		code,
	).Scan(&rec.Code, &rec.UsesCount, &rec.MaxUses, &rec.DiscountPercent, &rec.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume code: %w", err)
	}
	return &rec, nil
}

// SeedCodes inserts catalog records, leaving existing rows untouched so
// accumulated usage counts survive restarts.
func (db *DB) SeedCodes(ctx context.Context, records []types.CodeRecord) error {
	for _, rec := range records {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO promo_codes (code, uses_count, max_uses, discount_percent, active)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (code) DO NOTHING`,
			rec.Code, rec.UsesCount, rec.MaxUses, rec.DiscountPercent, rec.Active,
		)
		if err != nil {
			return fmt.Errorf("failed to seed code %s: %w", rec.Code, err)
		}
	}
	return nil
}

// ListCodes returns all catalog records ordered by code.
// Exhausted and inactive records are retained for auditability.
func (db *DB) ListCodes(ctx context.Context) ([]types.CodeRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT code, uses_count, max_uses, discount_percent, active
		 FROM promo_codes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list codes: %w", err)
	}
	defer rows.Close()

	var records []types.CodeRecord
	for rows.Next() {
		var rec types.CodeRecord
		if err := rows.Scan(&rec.Code, &rec.UsesCount, &rec.MaxUses, &rec.DiscountPercent, &rec.Active); err != nil {
			return nil, fmt.Errorf("failed to scan code: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
