package promo

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/freelanceguard/freelance-guard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func testCatalog() []types.CodeRecord {
	return []types.CodeRecord{
		{Code: "BETA100", MaxUses: 250, DiscountPercent: 100, Active: true},
		{Code: "FRIEND50", MaxUses: 100, DiscountPercent: 50, Active: true},
		{Code: "LAUNCH25", MaxUses: 500, DiscountPercent: 25, Active: false},
	}
}

func TestRedeem_UnknownCode(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	result, err := store.Redeem(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, MsgUnknown, result.Message)
}

func TestRedeem_InactiveCode(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	// Inactive stays inactive no matter how often it is tried.
	for i := 0; i < 3; i++ {
		result, err := store.Redeem(context.Background(), "LAUNCH25")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Message, "not yet active")
	}

	rec, err := store.Lookup(context.Background(), "LAUNCH25")
	require.NoError(t, err)
	assert.Zero(t, rec.UsesCount, "rejected attempts must not advance the counter")
}

func TestRedeem_FullDiscountUnlocks(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	result, err := store.Redeem(context.Background(), "BETA100")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 100, result.Discount)
	require.NotNil(t, result.UsesRemaining)
	assert.Equal(t, 249, *result.UsesRemaining)
	assert.Contains(t, result.Message, "unlocked")
}

func TestRedeem_PartialDiscountMessage(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	result, err := store.Redeem(context.Background(), "FRIEND50")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 50, result.Discount)
	require.NotNil(t, result.UsesRemaining)
	assert.Equal(t, 99, *result.UsesRemaining)
	assert.Equal(t, "50% discount applied!", result.Message)
}

func TestRedeem_CaseInsensitive(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	for i, code := range []string{"beta100", "Beta100", " BETA100 "} {
		result, err := store.Redeem(context.Background(), code)
		require.NoError(t, err)
		assert.True(t, result.Valid, "code=%q", code)
		require.NotNil(t, result.UsesRemaining)
		assert.Equal(t, 249-i, *result.UsesRemaining)
	}
}

func TestRedeem_ExhaustionBoundary(t *testing.T) {
	store := NewMemoryStore([]types.CodeRecord{
		{Code: "TRIAL", MaxUses: 3, DiscountPercent: 100, Active: true},
	})

	for want := 2; want >= 0; want-- {
		result, err := store.Redeem(context.Background(), "TRIAL")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		require.NotNil(t, result.UsesRemaining)
		assert.Equal(t, want, *result.UsesRemaining)
	}

	// Cap reached; further attempts reject without advancing state.
	result, err := store.Redeem(context.Background(), "TRIAL")
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "usage limit")

	rec, err := store.Lookup(context.Background(), "TRIAL")
	require.NoError(t, err)
	assert.Equal(t, 3, rec.UsesCount)
}

func TestList_OrderedAndComplete(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	_, err := store.Redeem(context.Background(), "FRIEND50")
	require.NoError(t, err)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Ordered by code; inactive and consumed records included.
	assert.Equal(t, "BETA100", records[0].Code)
	assert.Equal(t, "FRIEND50", records[1].Code)
	assert.Equal(t, "LAUNCH25", records[2].Code)
	assert.Equal(t, 1, records[1].UsesCount)
	assert.False(t, records[2].Active)
}

// The final successful redemption still reports its remaining count;
// rejections never carry one.
func TestRedeem_UsesRemainingSerialization(t *testing.T) {
	store := NewMemoryStore([]types.CodeRecord{
		{Code: "LAST", MaxUses: 1, DiscountPercent: 100, Active: true},
	})

	result, err := store.Redeem(context.Background(), "LAST")
	require.NoError(t, err)
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"usesRemaining":0`)

	result, err = store.Redeem(context.Background(), "LAST")
	require.NoError(t, err)
	data, err = json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "usesRemaining")
}

// Two concurrent attempts against the last remaining use must produce
// exactly one success.
func TestRedeem_ExactlyOnceCapping(t *testing.T) {
	store := NewMemoryStore([]types.CodeRecord{
		{Code: "LASTONE", MaxUses: 1, DiscountPercent: 100, Active: true},
	})

	const attempts = 16
	var successes, rejections atomic.Int32

	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			result, err := store.Redeem(context.Background(), "LASTONE")
			if err != nil {
				return err
			}
			if result.Valid {
				successes.Add(1)
			} else {
				rejections.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(attempts-1), rejections.Load())

	rec, err := store.Lookup(context.Background(), "LASTONE")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.UsesCount, "counter never exceeds max_uses")
}

func TestRedeem_ConcurrentUnderCap(t *testing.T) {
	const workers = 32
	store := NewMemoryStore([]types.CodeRecord{
		{Code: "ROOMY", MaxUses: workers, DiscountPercent: 25, Active: true},
	})

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			result, err := store.Redeem(context.Background(), "ROOMY")
			if err != nil {
				return err
			}
			assert.True(t, result.Valid)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	rec, err := store.Lookup(context.Background(), "ROOMY")
	require.NoError(t, err)
	assert.Equal(t, workers, rec.UsesCount)
}

func TestLookup_UnknownReturnsNil(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	rec, err := store.Lookup(context.Background(), "GHOST")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore(testCatalog())

	rec, err := store.Lookup(context.Background(), "BETA100")
	require.NoError(t, err)
	rec.UsesCount = 999

	fresh, err := store.Lookup(context.Background(), "BETA100")
	require.NoError(t, err)
	assert.Zero(t, fresh.UsesCount, "lookup must not expose mutable store state")
}
