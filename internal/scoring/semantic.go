package scoring

import "github.com/gsabatini/match-engine/internal/types"

// Relative weights of the skill lists and the title bonus inside the
// semantic score.
const (
	requiredSkillsFactor  = 2.0
	preferredSkillsFactor = 1.0
	titleBonusMax         = 0.15
)

// computeSemanticScore measures lexical affinity between what the candidate
// offers and what the position asks for: required skills count double the
// preferred ones, and overlapping title tokens add a small bonus. Every
// intermediate is initialized before the first degradation branch so no
// partial state leaks into the details.
func computeSemanticScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	skillScore := 0.0
	titleBonus := 0.0
	confidence := 1.0
	matchedRequired := []string{}
	matchedPreferred := []string{}

	candSkills := termSet(c.Skills)
	if len(candSkills) == 0 {
		return neutral(0.0, "candidate_skills_missing")
	}

	required := p.RequiredSkills
	preferred := p.PreferredSkills
	if len(required) == 0 && len(preferred) == 0 {
		// Fall back to the position's raw keywords when it lists no skills.
		required = p.Keywords
		confidence = 0.7
	}
	if len(required) == 0 && len(preferred) == 0 {
		return neutral(0.0, "position_skills_missing")
	}

	// Weighted average of the two overlap ratios.
	weighted := 0.0
	factorSum := 0.0
	if len(required) > 0 {
		ratio, matched := overlap(candSkills, required)
		weighted += requiredSkillsFactor * ratio
		factorSum += requiredSkillsFactor
		matchedRequired = matched
	}
	if len(preferred) > 0 {
		ratio, matched := overlap(candSkills, preferred)
		weighted += preferredSkillsFactor * ratio
		factorSum += preferredSkillsFactor
		matchedPreferred = matched
	}
	skillScore = weighted / factorSum

	// Title affinity: shared tokens between current title and position title.
	posTokens := titleTokens(p.Title)
	if len(posTokens) > 0 && c.CurrentTitle != "" {
		candTokens := termSet(titleTokens(c.CurrentTitle))
		shared := 0
		for _, tok := range posTokens {
			if candTokens[tok] {
				shared++
			}
		}
		titleBonus = titleBonusMax * float64(shared) / float64(len(posTokens))
	}

	raw := clamp01(skillScore + titleBonus)
	details := map[string]any{
		"matched_required":  matchedRequired,
		"matched_preferred": matchedPreferred,
		"skill_score":       skillScore,
		"title_bonus":       titleBonus,
	}
	return raw, confidence, details
}
