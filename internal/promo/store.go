// Package promo implements promotional code redemption: bounded,
// single-use-per-redemption counters behind a narrow store contract.
package promo

import (
	"context"
	"sort"
	"sync"

	"github.com/freelanceguard/freelance-guard/internal/types"
)

// Human-readable redemption outcome messages. Always present in the
// result regardless of validity.
const (
	MsgUnknown   = "Invalid code"
	MsgInactive  = "This code is not yet active"
	MsgExhausted = "Code has reached its usage limit"
)

// Store is the injected redemption store abstraction. Implementations
// must make Redeem's check-then-increment atomic per code key.
type Store interface {
	// Lookup returns the record for a code, or nil when unknown.
	// It never mutates state.
	Lookup(ctx context.Context, code string) (*types.CodeRecord, error)
	// Redeem attempts to consume one use of a code. Rejections are
	// routine outcomes carried in the result, not errors; the error
	// return is reserved for store failures.
	Redeem(ctx context.Context, code string) (*types.RedemptionResult, error)
	// List returns every catalog record ordered by code, including
	// exhausted and inactive ones.
	List(ctx context.Context) ([]types.CodeRecord, error)
}

// memoryRecord pairs a code record with its own lock so redemption is
// serialized per code key, not globally.
type memoryRecord struct {
	mu  sync.Mutex
	rec types.CodeRecord
}

// MemoryStore holds the code catalog in process memory. The catalog is
// fixed at construction; only usage counters mutate afterwards.
type MemoryStore struct {
	records map[string]*memoryRecord
}

// NewMemoryStore creates a store seeded with the given catalog.
// Codes are canonicalized; later duplicates overwrite earlier entries.
func NewMemoryStore(catalog []types.CodeRecord) *MemoryStore {
	records := make(map[string]*memoryRecord, len(catalog))
	for _, rec := range catalog {
		rec.Code = types.CanonicalCode(rec.Code)
		records[rec.Code] = &memoryRecord{rec: rec}
	}
	return &MemoryStore{records: records}
}

// Lookup returns a copy of the record for a code, or nil when unknown.
func (s *MemoryStore) Lookup(_ context.Context, code string) (*types.CodeRecord, error) {
	entry, ok := s.records[types.CanonicalCode(code)]
	if !ok {
		return nil, nil
	}
	entry.mu.Lock()
	rec := entry.rec
	entry.mu.Unlock()
	return &rec, nil
}

// Redeem attempts to consume one use of a code.
func (s *MemoryStore) Redeem(_ context.Context, code string) (*types.RedemptionResult, error) {
	entry, ok := s.records[types.CanonicalCode(code)]
	if !ok {
		return &types.RedemptionResult{Valid: false, Message: MsgUnknown}, nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.rec.Active {
		return &types.RedemptionResult{Valid: false, Message: MsgInactive}, nil
	}
	if entry.rec.Exhausted() {
		return &types.RedemptionResult{Valid: false, Message: MsgExhausted}, nil
	}

	entry.rec.UsesCount++
	return types.SuccessResult(entry.rec.DiscountPercent, entry.rec.MaxUses-entry.rec.UsesCount), nil
}

// List returns copies of every record ordered by code.
func (s *MemoryStore) List(_ context.Context) ([]types.CodeRecord, error) {
	records := make([]types.CodeRecord, 0, len(s.records))
	for _, entry := range s.records {
		entry.mu.Lock()
		records = append(records, entry.rec)
		entry.mu.Unlock()
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })
	return records, nil
}
