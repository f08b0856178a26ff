package scoring

import "github.com/gsabatini/match-engine/internal/types"

// Per-year decay rates for landing outside a position's experience band.
// Being short on experience costs more per year than having too much.
const (
	underBandDecay = 0.25
	overBandDecay  = 0.10
)

// computeExperienceScore compares the candidate's years of experience with
// the position's band. Inside the band is a full match; outside it decays
// per missing or surplus year with a floor.
func computeExperienceScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if p.YearsMin <= 0 && p.YearsMax <= 0 {
		return neutral(0.3, "experience_band_missing")
	}

	years := c.YearsExperience
	details := map[string]any{"years": years, "years_min": p.YearsMin, "years_max": p.YearsMax}

	switch {
	case years < p.YearsMin:
		gap := p.YearsMin - years
		raw := 1.0 - underBandDecay*gap
		if raw < 0.2 {
			raw = 0.2
		}
		details["years_short"] = gap
		return raw, 1.0, details
	case p.YearsMax > 0 && years > p.YearsMax:
		gap := years - p.YearsMax
		raw := 1.0 - overBandDecay*gap
		if raw < 0.4 {
			raw = 0.4
		}
		details["years_over"] = gap
		return raw, 1.0, details
	default:
		return 1.0, 1.0, details
	}
}

// relatedSectors is a static adjacency table of sector families. Both
// directions are listed so lookup stays a flat scan.
var relatedSectors = map[string][]string{
	"fintech":       {"banking", "insurance", "payments"},
	"banking":       {"fintech", "insurance"},
	"insurance":     {"banking", "fintech"},
	"payments":      {"fintech", "ecommerce"},
	"ecommerce":     {"retail", "payments", "logistics"},
	"retail":        {"ecommerce", "consumer goods"},
	"logistics":     {"ecommerce", "manufacturing", "automotive"},
	"manufacturing": {"automotive", "logistics", "energy"},
	"automotive":    {"manufacturing", "logistics"},
	"energy":        {"utilities", "manufacturing"},
	"utilities":     {"energy"},
	"healthcare":    {"pharma", "biotech"},
	"pharma":        {"healthcare", "biotech"},
	"biotech":       {"pharma", "healthcare"},
	"media":         {"advertising", "gaming"},
	"advertising":   {"media", "ecommerce"},
	"gaming":        {"media", "software"},
	"software":      {"gaming", "consulting"},
	"consulting":    {"software"},
	"telco":         {"software", "media"},
}

func sectorsRelated(a, b string) bool {
	for _, rel := range relatedSectors[a] {
		if rel == b {
			return true
		}
	}
	return false
}

// computeSectorScore checks the candidate's sector history against the
// position's sector: exact beats related beats a generic openness.
func computeSectorScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	sector := normalizeTerm(p.Sector)
	if sector == "" {
		return neutral(0.2, "position_sector_missing")
	}

	details := map[string]any{"position_sector": sector}
	if len(c.Sectors) == 0 {
		if c.OpenToAnySector {
			details["match"] = "open_to_any"
			return 0.6, 0.8, details
		}
		return neutral(0.3, "candidate_sectors_missing")
	}

	related := false
	for _, cand := range c.Sectors {
		cs := normalizeTerm(cand)
		if cs == sector {
			details["match"] = "exact"
			return 1.0, 1.0, details
		}
		if sectorsRelated(cs, sector) {
			related = true
		}
	}
	if related {
		details["match"] = "related"
		return 0.7, 1.0, details
	}
	if c.OpenToAnySector {
		details["match"] = "open_to_any"
		return 0.6, 1.0, details
	}
	details["match"] = "none"
	return 0.25, 1.0, details
}

// statusScores maps candidate status to a base score and its variant when
// the position is urgent.
var statusScores = map[types.CandidateStatus][2]float64{
	// {not urgent, urgent}
	types.StatusActive:      {0.9, 1.0},
	types.StatusOpen:        {0.7, 0.75},
	types.StatusPassive:     {0.45, 0.35},
	types.StatusUnavailable: {0.1, 0.1},
}

// computeStatusScore rates how reachable the candidate is for this
// position's timeline. A passive candidate fits an urgent opening worse
// than a relaxed one.
func computeStatusScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	scores, known := statusScores[c.Status]
	if !known {
		return neutral(0.0, "candidate_status_missing")
	}

	urgent := p.Urgent()
	raw := scores[0]
	if urgent {
		raw = scores[1]
	}
	return raw, 1.0, map[string]any{"status": string(c.Status), "position_urgent": urgent}
}
