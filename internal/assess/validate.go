package assess

import (
	"encoding/json"
	"strings"

	"github.com/freelanceguard/freelance-guard/internal/llm"
	"github.com/freelanceguard/freelance-guard/internal/schemas"
	"github.com/freelanceguard/freelance-guard/internal/types"
	topschemas "github.com/freelanceguard/freelance-guard/schemas"
)

// ValidateAssessment parses raw model output and verifies it conforms
// to the assessment schema. Fails closed: any violation rejects the
// whole assessment, never a partial one. On success values are returned
// unchanged (no coercion or clamping); an absent greenFlags array is
// normalized to empty so the result serializes back to a payload that
// itself validates.
func ValidateAssessment(raw string) (*types.Assessment, error) {
	cleaned := llm.CleanJSONBlock(strings.TrimSpace(raw))
	if cleaned == "" {
		return nil, &EmptyOutputError{}
	}

	// Distinguish unparseable output from parseable-but-wrong-shape
	// output before binding to the typed struct.
	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &MalformedOutputError{Cause: err}
	}

	if err := schemas.ValidateJSONString(topschemas.Assessment, cleaned); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	var assessment types.Assessment
	if err := json.Unmarshal([]byte(cleaned), &assessment); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	// A nil slice marshals as null, which the schema rejects.
	if assessment.GreenFlags == nil {
		assessment.GreenFlags = []string{}
	}

	return &assessment, nil
}
