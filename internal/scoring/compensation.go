package scoring

import "github.com/gsabatini/match-engine/internal/types"

// computeCompensationScore compares the candidate's desired salary with the
// position's band. Asking at or under the band is a full match; asking above
// it decays with the overshoot.
func computeCompensationScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if c.DesiredSalary == nil || *c.DesiredSalary <= 0 {
		return neutral(0.0, "desired_salary_missing")
	}
	if p.SalaryMin == nil && p.SalaryMax == nil {
		return neutral(0.0, "salary_band_missing")
	}

	desired := *c.DesiredSalary
	details := map[string]any{"desired": desired}
	if p.SalaryMin != nil {
		details["salary_min"] = *p.SalaryMin
	}
	if p.SalaryMax != nil {
		details["salary_max"] = *p.SalaryMax
	}

	// Within or under the band satisfies the ask; only the ceiling matters.
	if p.SalaryMax == nil || desired <= *p.SalaryMax {
		return 1.0, 1.0, details
	}

	ratio := *p.SalaryMax / desired
	if ratio < 0.2 {
		ratio = 0.2
	}
	details["ceiling_ratio"] = ratio
	return ratio, 1.0, details
}

// Expected raises at or under this fraction count as modest asks.
const modestRaise = 0.15

// computeCompProgressionScore compares the raise the candidate expects
// (desired vs current salary) with the raise the position can offer (band
// ceiling vs current salary). A pair with no usable salary data degrades to
// exactly 0.5 with zero confidence.
func computeCompProgressionScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if c.CurrentSalary == nil || *c.CurrentSalary <= 0 || c.DesiredSalary == nil || *c.DesiredSalary <= 0 {
		return neutral(0.0, "salary_history_missing")
	}

	current := *c.CurrentSalary
	expected := (*c.DesiredSalary - current) / current
	details := map[string]any{"expected_raise": expected}

	// Wanting the same or less is already satisfied.
	if expected <= 0 {
		return 1.0, 1.0, details
	}

	ceiling := p.SalaryMax
	if ceiling == nil {
		ceiling = p.SalaryMin
	}
	if ceiling == nil {
		return neutral(0.0, "position_ceiling_missing")
	}

	offered := (*ceiling - current) / current
	if offered < 0 {
		offered = 0
	}
	details["offered_raise"] = offered

	switch {
	case offered >= expected:
		return 1.0, 1.0, details
	case offered > 0:
		raw := offered / expected
		if raw < 0.4 {
			raw = 0.4
		}
		return raw, 1.0, details
	default:
		raw := 0.2
		if expected <= modestRaise {
			// A modest ask unmet still hurts less than an ambitious one.
			raw += 0.1
		}
		return raw, 1.0, details
	}
}
