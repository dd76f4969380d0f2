// Package types provides type definitions for structured data used throughout the freelance-guard system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Severity levels a red flag can carry.
const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
)

// MinMessageLength is the minimum trimmed length of a client message
// accepted for analysis.
const MinMessageLength = 10

// RedFlag represents a single detected risk pattern in a client message.
type RedFlag struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Evidence    string `json:"evidence"`
	Explanation string `json:"explanation"`
}

// Assessment is the structured risk assessment produced by the model
// after validation. Fields beyond OverallScore and RedFlags are trusted
// as-is when present and zero-valued when absent, except that the
// validator fills an absent GreenFlags with an empty slice so it
// serializes as an array.
type Assessment struct {
	OverallScore int       `json:"overallScore"`
	RedFlags     []RedFlag `json:"redFlags"`
	GreenFlags   []string  `json:"greenFlags"`
	Advice       string    `json:"advice"`
	Verdict      string    `json:"verdict"`
}

// AnalyzeRequest represents the request body for /analyze.
// Industry and experience default at the boundary when absent.
type AnalyzeRequest struct {
	Message     string `json:"message" validate:"required"`
	Industry    string `json:"industry,omitempty"`
	Experience  string `json:"experience,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TrimmedMessage returns the message with surrounding whitespace removed.
func (r *AnalyzeRequest) TrimmedMessage() string {
	return strings.TrimSpace(r.Message)
}
