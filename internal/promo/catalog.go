package promo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/freelanceguard/freelance-guard/internal/types"
)

// DefaultCatalog returns the codes provisioned at process start when no
// catalog file is configured.
func DefaultCatalog() []types.CodeRecord {
	return []types.CodeRecord{
		{Code: "BETA100", MaxUses: 250, DiscountPercent: 100, Active: true},
		{Code: "FRIEND50", MaxUses: 100, DiscountPercent: 50, Active: true},
		{Code: "FEEDBACK100", MaxUses: 50, DiscountPercent: 100, Active: true},
		// For later
		{Code: "LAUNCH25", MaxUses: 500, DiscountPercent: 25, Active: false},
	}
}

// LoadCatalog reads a code catalog from a JSON file.
func LoadCatalog(path string) ([]types.CodeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var catalog []types.CodeRecord
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for i, rec := range catalog {
		if rec.Code == "" {
			return nil, fmt.Errorf("catalog entry %d has no code", i)
		}
		if rec.MaxUses <= 0 {
			return nil, fmt.Errorf("catalog code %s: max_uses must be positive", rec.Code)
		}
		if rec.DiscountPercent < 0 || rec.DiscountPercent > 100 {
			return nil, fmt.Errorf("catalog code %s: discount_percent must be 0-100", rec.Code)
		}
		if rec.UsesCount < 0 {
			return nil, fmt.Errorf("catalog code %s: uses_count must be non-negative", rec.Code)
		}
	}

	return catalog, nil
}
