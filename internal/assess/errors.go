package assess

import "fmt"

// InputTooShortError reports a client message below the minimum trimmed
// length. Client-correctable; surfaced verbatim at the boundary.
type InputTooShortError struct {
	Length int
	Min    int
}

func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("message too short: %d characters after trimming (minimum %d)", e.Length, e.Min)
}

// EmptyOutputError reports that the model returned no content.
type EmptyOutputError struct{}

func (e *EmptyOutputError) Error() string {
	return "model returned no content"
}

// MalformedOutputError reports model output that is not parseable JSON.
type MalformedOutputError struct {
	Cause error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model output is not valid JSON: %v", e.Cause)
	}
	return "model output is not valid JSON"
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError reports parseable model output that does not
// conform to the assessment schema.
type SchemaViolationError struct {
	Cause error
}

func (e *SchemaViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model output violates assessment schema: %v", e.Cause)
	}
	return "model output violates assessment schema"
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// AssessmentFailedError is the single uniform error surfaced to callers
// when the model call or output validation fails. The underlying cause
// is retained for operator logs and never included in the caller-facing
// message, so model internals stay out of the UI.
type AssessmentFailedError struct {
	Cause error
}

func (e *AssessmentFailedError) Error() string {
	return "assessment failed"
}

func (e *AssessmentFailedError) Unwrap() error {
	return e.Cause
}
