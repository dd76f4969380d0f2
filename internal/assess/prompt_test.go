package assess

import (
	"testing"

	"github.com/freelanceguard/freelance-guard/internal/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	req := EvaluationRequest{
		Message:     "Hi, I need a logo for $50 tomorrow",
		Industry:    knowledge.IndustryDesigner,
		Experience:  knowledge.ExperienceBeginner,
		ProjectType: "logo design",
	}

	prompt := BuildPrompt(req)

	assert.Contains(t, prompt, "beginner designer professional")
	assert.Contains(t, prompt, "working on logo design")
	assert.Contains(t, prompt, `Client message: "Hi, I need a logo for $50 tomorrow"`)
	// Industry reference text is inlined from the knowledge base.
	profile := knowledge.ProfileFor(knowledge.IndustryDesigner)
	assert.Contains(t, prompt, profile.RedFlagPatterns)
	assert.Contains(t, prompt, profile.GreenFlagPatterns)
	assert.Contains(t, prompt, profile.BudgetRanges)
	// Experience guidance and scoring instruction for beginners.
	assert.Contains(t, prompt, knowledge.PolicyFor(knowledge.ExperienceBeginner).StrictnessGuidance)
	assert.Contains(t, prompt, "Be more cautious - flag more issues")
	// Output contract is reproduced verbatim.
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, `"overallScore"`)
	assert.Contains(t, prompt, `"redFlags"`)
	// No leftover placeholders.
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildPrompt_DefaultProjectType(t *testing.T) {
	prompt := BuildPrompt(EvaluationRequest{
		Message:    "Looking for a full website rebuild",
		Industry:   knowledge.IndustryDeveloper,
		Experience: knowledge.ExperienceExpert,
	})

	assert.Contains(t, prompt, "working on various projects")
	assert.Contains(t, prompt, "Focus on major red flags only")
}

func TestBuildPrompt_IsDeterministic(t *testing.T) {
	req := EvaluationRequest{
		Message:    "We have a detailed brief and a $5000 budget",
		Industry:   knowledge.IndustryCopywriter,
		Experience: knowledge.ExperienceExperienced,
	}
	assert.Equal(t, BuildPrompt(req), BuildPrompt(req))
}
