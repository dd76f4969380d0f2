package knowledge

import "fmt"

// ExperienceKey identifies a freelancer experience level.
type ExperienceKey string

// Supported experience levels. Unlike industries there is no fallback:
// an unrecognized level is a caller error and must be rejected.
const (
	ExperienceBeginner    ExperienceKey = "beginner"
	ExperienceExperienced ExperienceKey = "experienced"
	ExperienceExpert      ExperienceKey = "expert"
)

// DefaultExperience is used when a request omits the experience entirely.
const DefaultExperience = ExperienceExperienced

// ExperiencePolicy holds the tone and strictness guidance for one
// experience level.
type ExperiencePolicy struct {
	StrictnessGuidance string
}

// UnknownExperienceError reports an experience value outside the fixed set.
type UnknownExperienceError struct {
	Value string
}

func (e *UnknownExperienceError) Error() string {
	return fmt.Sprintf("unknown experience level %q (expected beginner, experienced, or expert)", e.Value)
}

// ParseExperience resolves a raw experience string to a supported key.
// Returns an UnknownExperienceError for values outside the fixed set;
// there is no silent default here.
func ParseExperience(raw string) (ExperienceKey, error) {
	switch ExperienceKey(raw) {
	case ExperienceBeginner, ExperienceExperienced, ExperienceExpert:
		return ExperienceKey(raw), nil
	default:
		return "", &UnknownExperienceError{Value: raw}
	}
}

// PolicyFor returns the strictness guidance for an experience level.
// Total over the three valid keys; anything else gets the balanced
// experienced policy, but callers are expected to have gone through
// ParseExperience first.
func PolicyFor(key ExperienceKey) ExperiencePolicy {
	switch key {
	case ExperienceBeginner:
		return ExperiencePolicy{
			StrictnessGuidance: "Be more cautious with red flags. New freelancers should avoid risky clients while building their portfolio and reputation.",
		}
	case ExperienceExpert:
		return ExperiencePolicy{
			StrictnessGuidance: "Can handle more complex clients. Focus on major red flags that even experienced professionals should avoid.",
		}
	default:
		return ExperiencePolicy{
			StrictnessGuidance: "Balanced analysis. Can handle some challenging clients but should still avoid major red flags.",
		}
	}
}

// ScoringGuidance returns the per-level scoring instruction included in
// the analysis prompt.
func ScoringGuidance(key ExperienceKey) string {
	switch key {
	case ExperienceBeginner:
		return "Be more cautious - flag more issues"
	case ExperienceExpert:
		return "Focus on major red flags only"
	default:
		return "Balanced analysis appropriate for experienced professional"
	}
}
