package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeRecord_Exhausted(t *testing.T) {
	tests := []struct {
		name string
		rec  CodeRecord
		want bool
	}{
		{name: "unused", rec: CodeRecord{UsesCount: 0, MaxUses: 250}, want: false},
		{name: "one remaining", rec: CodeRecord{UsesCount: 249, MaxUses: 250}, want: false},
		{name: "at limit", rec: CodeRecord{UsesCount: 250, MaxUses: 250}, want: true},
		{name: "over limit", rec: CodeRecord{UsesCount: 251, MaxUses: 250}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Exhausted())
		})
	}
}

func TestCanonicalCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"beta100", "BETA100"},
		{"Beta100", "BETA100"},
		{"  FRIEND50  ", "FRIEND50"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalCode(tt.input))
	}
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "Free analysis unlocked!", SuccessMessage(100))
	assert.Equal(t, "50% discount applied!", SuccessMessage(50))
	assert.Equal(t, "25% discount applied!", SuccessMessage(25))
}

func TestRedeemRequest_Validate(t *testing.T) {
	assert.NoError(t, (&RedeemRequest{Code: "BETA100"}).Validate())
	assert.Error(t, (&RedeemRequest{}).Validate())
}

func TestSuccessResult(t *testing.T) {
	result := SuccessResult(50, 99)
	assert.True(t, result.Valid)
	assert.Equal(t, 50, result.Discount)
	require.NotNil(t, result.UsesRemaining)
	assert.Equal(t, 99, *result.UsesRemaining)
	assert.Equal(t, "50% discount applied!", result.Message)
}

// The last use of a code still reports zero remaining; the field is
// only omitted on rejections.
func TestSuccessResult_ZeroRemainingSerializes(t *testing.T) {
	data, err := json.Marshal(SuccessResult(100, 0))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"usesRemaining":0`)
}

func TestRedemptionResult_OmitsZeroDiscount(t *testing.T) {
	data, err := json.Marshal(RedemptionResult{Valid: false, Message: "Invalid code"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "discount")
	assert.NotContains(t, raw, "usesRemaining")
	assert.Equal(t, "Invalid code", raw["message"])
}
