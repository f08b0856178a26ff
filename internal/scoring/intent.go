package scoring

import (
	"strings"

	"github.com/gsabatini/match-engine/internal/hierarchy"
	"github.com/gsabatini/match-engine/internal/types"
)

// computeMotivationsScore measures how many of the candidate's stated
// motivations the position's advertised attributes cover.
func computeMotivationsScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if len(c.Motivations) == 0 {
		return neutral(0.0, "candidate_motivations_missing")
	}
	if len(p.Attributes) == 0 {
		return neutral(0.3, "position_attributes_missing")
	}

	ratio, matched := overlap(termSet(p.Attributes), c.Motivations)
	details := map[string]any{"matched": matched}
	return ratio, 1.0, details
}

// roleFamily groups job titles into broad families for the role-mismatch
// check. The list is ordered: the first family with a matching keyword wins,
// so classification is deterministic for titles spanning families.
var roleFamilies = []struct {
	name     string
	keywords []string
}{
	{name: "engineering", keywords: []string{"engineer", "developer", "devops", "sre", "architect", "programmer"}},
	{name: "data", keywords: []string{"data", "analyst", "analytics", "scientist"}},
	{name: "product", keywords: []string{"product"}},
	{name: "design", keywords: []string{"designer", "design", "ux", "ui"}},
	{name: "sales", keywords: []string{"sales", "account executive", "business development"}},
	{name: "marketing", keywords: []string{"marketing", "seo", "brand", "communications"}},
	{name: "operations", keywords: []string{"operations", "supply chain", "logistics"}},
	{name: "finance", keywords: []string{"finance", "financial", "accounting", "controller", "treasury", "cfo"}},
	{name: "people", keywords: []string{"recruiter", "talent", "people", "human resources"}},
	{name: "support", keywords: []string{"support", "customer service", "helpdesk"}},
}

func detectRoleFamily(title string) string {
	text := strings.ToLower(title)
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, family := range roleFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(text, kw) {
				return family.name
			}
		}
	}
	return ""
}

// computeListeningReasonScore checks self-consistency: does this position
// concretely fix the thing that made the candidate listen? A candidate
// leaving over pay is not helped by a position capped below their salary,
// whatever the rest of the match says.
func computeListeningReasonScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	reason := c.Reason()
	details := map[string]any{"reason": string(reason)}

	switch reason {
	case types.ReasonCompensation:
		if c.CurrentSalary == nil || *c.CurrentSalary <= 0 || p.SalaryMax == nil {
			return neutral(0.2, "salary_data_missing")
		}
		if *p.SalaryMax > *c.CurrentSalary {
			details["addressed"] = "ceiling_above_current"
			return 1.0, 1.0, details
		}
		details["addressed"] = "none"
		return 0.2, 1.0, details

	case types.ReasonNoFlexibility:
		if p.HasAttribute(types.AttrFlexibility) || p.WorkMode == types.WorkModeHybrid || p.WorkMode == types.WorkModeRemote {
			details["addressed"] = "flexible_arrangement"
			return 1.0, 1.0, details
		}
		if p.WorkMode == "" && len(p.Attributes) == 0 {
			return neutral(0.2, "position_flexibility_unknown")
		}
		details["addressed"] = "none"
		return 0.2, 1.0, details

	case types.ReasonNoGrowth:
		if p.HasAttribute(types.AttrGrowth) {
			details["addressed"] = "growth_path"
			return 1.0, 1.0, details
		}
		if hierarchy.DetectPositionLevel(p) > hierarchy.DetectCandidateLevel(c) {
			details["addressed"] = "step_up"
			return 1.0, 1.0, details
		}
		details["addressed"] = "none"
		return 0.2, 1.0, details

	case types.ReasonRoleMismatch:
		candFamily := detectRoleFamily(c.CurrentTitle)
		posFamily := detectRoleFamily(p.Title)
		if candFamily == "" || posFamily == "" {
			return neutral(0.4, "role_family_unknown")
		}
		details["candidate_family"] = candFamily
		details["position_family"] = posFamily
		if candFamily != posFamily {
			details["addressed"] = "different_role"
			return 1.0, 1.0, details
		}
		details["addressed"] = "none"
		return 0.3, 1.0, details

	default:
		// No stated reason: nothing to be consistent with.
		return 0.5, 0.5, details
	}
}
