// Package assess implements the client-message risk assessment pipeline:
// prompt construction, model invocation, and validation of the model's
// structured output.
package assess

import (
	"github.com/freelanceguard/freelance-guard/internal/knowledge"
	"github.com/freelanceguard/freelance-guard/internal/prompts"
)

// EvaluationRequest is a fully resolved assessment request. Industry and
// experience have already been parsed at the boundary; the message is
// used verbatim.
type EvaluationRequest struct {
	Message     string
	Industry    knowledge.IndustryKey
	Experience  knowledge.ExperienceKey
	ProjectType string
}

// BuildPrompt composes the evaluation prompt from the industry
// knowledge base, the experience policy, and the request. Pure function
// of its inputs and the static reference tables.
func BuildPrompt(req EvaluationRequest) string {
	profile := knowledge.ProfileFor(req.Industry)
	policy := knowledge.PolicyFor(req.Experience)

	projectType := req.ProjectType
	if projectType == "" {
		projectType = "various projects"
	}

	template := prompts.MustGet("analysis.json", "analyze-client-message")
	return prompts.Format(template, map[string]string{
		"Industry":           string(req.Industry),
		"Experience":         string(req.Experience),
		"ProjectType":        projectType,
		"RedFlags":           profile.RedFlagPatterns,
		"GreenFlags":         profile.GreenFlagPatterns,
		"BudgetRanges":       profile.BudgetRanges,
		"ExperienceGuidance": policy.StrictnessGuidance,
		"ScoringGuidance":    knowledge.ScoringGuidance(req.Experience),
		"Message":            req.Message,
	})
}
