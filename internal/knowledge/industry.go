// Package knowledge provides the static industry and experience reference
// tables used to build risk-assessment prompts.
package knowledge

// IndustryKey identifies a supported freelance industry.
type IndustryKey string

// Supported industries. Unknown keys resolve to IndustryOther.
const (
	IndustryDesigner     IndustryKey = "designer"
	IndustryDeveloper    IndustryKey = "developer"
	IndustryPhotographer IndustryKey = "photographer"
	IndustryConsultant   IndustryKey = "consultant"
	IndustryCopywriter   IndustryKey = "copywriter"
	IndustryOther        IndustryKey = "other"
)

// DefaultIndustry is used when a request omits the industry entirely.
const DefaultIndustry = IndustryDesigner

// IndustryProfile holds the reference text for one industry: the
// patterns that signal risk, the patterns that signal a well-prepared
// client, and typical budget ranges.
type IndustryProfile struct {
	RedFlagPatterns   string
	GreenFlagPatterns string
	BudgetRanges      string
}

// ParseIndustry resolves a raw industry string to a supported key.
// The mapping is total: anything outside the fixed set maps to
// IndustryOther so every request resolves to exactly one profile.
func ParseIndustry(raw string) IndustryKey {
	switch IndustryKey(raw) {
	case IndustryDesigner, IndustryDeveloper, IndustryPhotographer,
		IndustryConsultant, IndustryCopywriter, IndustryOther:
		return IndustryKey(raw)
	default:
		return IndustryOther
	}
}

// ProfileFor returns the reference profile for an industry key.
// Total over IndustryKey: keys outside the fixed set get the
// IndustryOther profile.
func ProfileFor(key IndustryKey) IndustryProfile {
	switch key {
	case IndustryDesigner:
		return IndustryProfile{
			RedFlagPatterns:   "Low budgets (under $500 for logos, under $2000 for websites), vague creative direction, unlimited revisions, 'make it pop', spec work requests, comparing to Fiverr prices",
			GreenFlagPatterns: "Clear brand guidelines, specific deliverables, realistic budgets, professional communication, reference materials provided",
			BudgetRanges:      "Logo: $500-5000, Website: $2000-15000, Brand Identity: $1500-8000",
		}
	case IndustryDeveloper:
		return IndustryProfile{
			RedFlagPatterns:   "Unrealistic timelines, scope creep, 'simple' projects that aren't simple, comparing to overseas developers, unclear requirements",
			GreenFlagPatterns: "Technical specifications provided, realistic timeline, understanding of development process, clear feature requirements",
			BudgetRanges:      "Website: $3000-25000, Web App: $10000-100000, Mobile App: $15000-200000",
		}
	case IndustryPhotographer:
		return IndustryProfile{
			RedFlagPatterns:   "Usage rights confusion, weather-dependent unrealistic expectations, 'just a few quick shots', trying to negotiate after seeing work",
			GreenFlagPatterns: "Clear usage requirements, backup date planning, professional timeline, understanding of photography process",
			BudgetRanges:      "Portrait: $200-800, Wedding: $1500-8000, Commercial: $500-5000",
		}
	case IndustryConsultant:
		return IndustryProfile{
			RedFlagPatterns:   "Undefined deliverables, expecting implementation not just strategy, hourly vs project confusion, 'quick advice' requests",
			GreenFlagPatterns: "Clear objectives defined, understanding consultant role, specific deliverables requested, realistic timeline",
			BudgetRanges:      "Strategy: $2000-15000, Process Improvement: $3000-25000, Training: $1000-10000",
		}
	case IndustryCopywriter:
		return IndustryProfile{
			RedFlagPatterns:   "'Just needs to sound professional', unlimited revisions, no brand guidelines, comparing to AI writing tools",
			GreenFlagPatterns: "Brand voice guidelines, target audience defined, specific copy requirements, realistic revision rounds",
			BudgetRanges:      "Website Copy: $800-5000, Blog Content: $100-500/post, Sales Pages: $500-3000",
		}
	default:
		return IndustryProfile{
			RedFlagPatterns:   "Vague scope, unrealistic budget expectations, poor communication, unrealistic timelines",
			GreenFlagPatterns: "Clear requirements, professional communication, realistic expectations, proper planning",
			BudgetRanges:      "Varies by industry and project complexity",
		}
	}
}

// Industries lists the supported industry keys in display order.
func Industries() []IndustryKey {
	return []IndustryKey{
		IndustryDesigner,
		IndustryDeveloper,
		IndustryPhotographer,
		IndustryConsultant,
		IndustryCopywriter,
		IndustryOther,
	}
}
