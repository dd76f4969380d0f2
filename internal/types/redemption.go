package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CodeRecord represents a promotional code and its usage state.
// UsesCount only ever increases and never exceeds MaxUses.
type CodeRecord struct {
	Code            string `json:"code"`
	UsesCount       int    `json:"uses_count"`
	MaxUses         int    `json:"max_uses"`
	DiscountPercent int    `json:"discount_percent"`
	Active          bool   `json:"active"`
}

// Exhausted reports whether the code has no uses remaining.
func (c *CodeRecord) Exhausted() bool {
	return c.UsesCount >= c.MaxUses
}

// RedemptionResult is the outcome of a redemption attempt.
// Message is always present and human-readable, valid or not.
// UsesRemaining is a pointer so a successful redemption always carries
// it, including 0 on the final use, while rejections omit it.
type RedemptionResult struct {
	Valid         bool   `json:"valid"`
	Discount      int    `json:"discount,omitempty"`
	UsesRemaining *int   `json:"usesRemaining,omitempty"`
	Message       string `json:"message"`
}

// SuccessResult builds the result for a consumed use.
func SuccessResult(discountPercent, usesRemaining int) *RedemptionResult {
	return &RedemptionResult{
		Valid:         true,
		Discount:      discountPercent,
		UsesRemaining: &usesRemaining,
		Message:       SuccessMessage(discountPercent),
	}
}

// RedeemRequest represents the request body for /verify-code.
type RedeemRequest struct {
	Code string `json:"code" validate:"required"`
}

// Validate validates the RedeemRequest using the validator.
func (r *RedeemRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CanonicalCode returns the code canonicalized for lookup.
// Matching is case-insensitive.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// SuccessMessage returns the human-readable message for a successful
// redemption at the given discount percentage.
func SuccessMessage(discountPercent int) string {
	if discountPercent == 100 {
		return "Free analysis unlocked!"
	}
	return fmt.Sprintf("%d%% discount applied!", discountPercent)
}
