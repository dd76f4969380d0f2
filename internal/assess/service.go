package assess

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/freelanceguard/freelance-guard/internal/llm"
	"github.com/freelanceguard/freelance-guard/internal/types"
)

// Service orchestrates a risk assessment: prompt construction, a single
// model invocation, and output validation. No retries and no caching;
// callers decide whether to resubmit after a failure.
type Service struct {
	client llm.Client
	params llm.GenerationParams
}

// NewService creates a Service using the default generation parameters.
func NewService(client llm.Client) *Service {
	return &Service{
		client: client,
		params: llm.DefaultGenerationParams(),
	}
}

// NewServiceWithParams creates a Service with explicit generation parameters.
func NewServiceWithParams(client llm.Client, params llm.GenerationParams) *Service {
	return &Service{client: client, params: params}
}

// Assess evaluates a client message and returns a validated assessment.
// Returns *InputTooShortError before any model work when the trimmed
// message is under the minimum length, and *AssessmentFailedError for
// every model or validation failure. Failure detail is logged for
// operators and never carried in the caller-facing message.
func (s *Service) Assess(ctx context.Context, req EvaluationRequest) (*types.Assessment, error) {
	req.Message = strings.TrimSpace(req.Message)
	if n := utf8.RuneCountInString(req.Message); n < types.MinMessageLength {
		return nil, &InputTooShortError{Length: n, Min: types.MinMessageLength}
	}

	prompt := BuildPrompt(req)

	raw, err := s.client.GenerateJSON(ctx, prompt, s.params)
	if err != nil {
		log.Printf("Assessment model call failed (industry=%s experience=%s): %v", req.Industry, req.Experience, err)
		return nil, &AssessmentFailedError{Cause: err}
	}

	assessment, err := ValidateAssessment(raw)
	if err != nil {
		log.Printf("Assessment output rejected (industry=%s experience=%s): %v", req.Industry, req.Experience, err)
		return nil, &AssessmentFailedError{Cause: err}
	}

	return assessment, nil
}
