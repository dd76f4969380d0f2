package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndustry_KnownKeys(t *testing.T) {
	for _, key := range Industries() {
		assert.Equal(t, key, ParseIndustry(string(key)))
	}
}

func TestParseIndustry_UnknownFallsBackToOther(t *testing.T) {
	for _, raw := range []string{"", "plumber", "DESIGNER", "dev"} {
		assert.Equal(t, IndustryOther, ParseIndustry(raw), "raw=%q", raw)
	}
}

// Unknown keys must behave identically to the other key.
func TestProfileFor_UnknownMatchesOther(t *testing.T) {
	other := ProfileFor(IndustryOther)
	assert.Equal(t, other, ProfileFor(ParseIndustry("astronaut")))
	assert.Equal(t, other, ProfileFor(IndustryKey("bogus")))
}

func TestProfileFor_EveryIndustryComplete(t *testing.T) {
	for _, key := range Industries() {
		profile := ProfileFor(key)
		assert.NotEmpty(t, profile.RedFlagPatterns, "industry %s", key)
		assert.NotEmpty(t, profile.GreenFlagPatterns, "industry %s", key)
		assert.NotEmpty(t, profile.BudgetRanges, "industry %s", key)
	}
}

func TestProfileFor_IndustrySpecificContent(t *testing.T) {
	assert.Contains(t, ProfileFor(IndustryDesigner).RedFlagPatterns, "Fiverr")
	assert.Contains(t, ProfileFor(IndustryDeveloper).BudgetRanges, "Web App")
	assert.Contains(t, ProfileFor(IndustryPhotographer).RedFlagPatterns, "Usage rights")
}

func TestParseExperience_KnownKeys(t *testing.T) {
	for _, key := range []ExperienceKey{ExperienceBeginner, ExperienceExperienced, ExperienceExpert} {
		parsed, err := ParseExperience(string(key))
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	}
}

// Unknown experience levels are a caller error, not a silent default.
func TestParseExperience_UnknownRejected(t *testing.T) {
	for _, raw := range []string{"", "novice", "Expert", "EXPERIENCED"} {
		_, err := ParseExperience(raw)
		require.Error(t, err, "raw=%q", raw)

		var unknown *UnknownExperienceError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, raw, unknown.Value)
	}
}

func TestPolicyFor_DistinctGuidancePerLevel(t *testing.T) {
	beginner := PolicyFor(ExperienceBeginner)
	experienced := PolicyFor(ExperienceExperienced)
	expert := PolicyFor(ExperienceExpert)

	assert.Contains(t, beginner.StrictnessGuidance, "more cautious")
	assert.Contains(t, experienced.StrictnessGuidance, "Balanced")
	assert.Contains(t, expert.StrictnessGuidance, "major red flags")
	assert.NotEqual(t, beginner, experienced)
	assert.NotEqual(t, experienced, expert)
}

func TestScoringGuidance(t *testing.T) {
	assert.Equal(t, "Be more cautious - flag more issues", ScoringGuidance(ExperienceBeginner))
	assert.Equal(t, "Focus on major red flags only", ScoringGuidance(ExperienceExpert))
	assert.Equal(t, "Balanced analysis appropriate for experienced professional", ScoringGuidance(ExperienceExperienced))
}
