package scoring

import "github.com/gsabatini/match-engine/internal/types"

// computeLocationScore rates geographic compatibility on a categorical
// ladder: remote or same city, then province, then region, then the
// candidate's willingness to relocate. No travel-time math, no geocoding.
func computeLocationScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	details := map[string]any{}

	if p.WorkMode == types.WorkModeRemote {
		details["match"] = "remote_position"
		return 1.0, 1.0, details
	}
	if p.City == "" && p.Province == "" && p.Region == "" {
		return neutral(0.2, "position_location_missing")
	}
	if c.City == "" && c.Province == "" && c.Region == "" {
		if c.WillingToRelocate {
			details["match"] = "relocation"
			return 0.5, 0.9, details
		}
		return neutral(0.2, "candidate_location_missing")
	}

	switch {
	case sameTerm(c.City, p.City):
		details["match"] = "same_city"
		return 1.0, 1.0, details
	case sameTerm(c.Province, p.Province):
		details["match"] = "same_province"
		return 0.85, 1.0, details
	case sameTerm(c.Region, p.Region):
		details["match"] = "same_region"
		return 0.6, 1.0, details
	case c.WillingToRelocate:
		details["match"] = "relocation"
		return 0.5, 1.0, details
	default:
		details["match"] = "none"
		return 0.25, 1.0, details
	}
}

// Per-week decay when the candidate's notice period overruns the position's
// start window.
const noticeOverrunDecay = 0.15

// computeTimingScore compares the candidate's notice period with how soon
// the position needs someone.
func computeTimingScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if p.StartWithinWeeks == nil {
		// No deadline on the position side: any notice period works.
		return 1.0, 0.9, map[string]any{"match": "no_deadline"}
	}
	if c.NoticeWeeks == nil {
		return neutral(0.2, "candidate_notice_missing")
	}

	notice := *c.NoticeWeeks
	lead := *p.StartWithinWeeks
	details := map[string]any{"notice_weeks": notice, "start_within_weeks": lead}

	if notice <= lead {
		return 1.0, 1.0, details
	}

	overrun := float64(notice - lead)
	raw := 1.0 - noticeOverrunDecay*overrun
	if raw < 0.2 {
		raw = 0.2
	}
	details["overrun_weeks"] = overrun
	return raw, 1.0, details
}

// workModePair scores one desired mode against the offered one.
func workModePair(desired, offered types.WorkMode) float64 {
	if desired == offered {
		return 1.0
	}
	// Hybrid sits between the extremes and partially satisfies both.
	if desired == types.WorkModeHybrid || offered == types.WorkModeHybrid {
		return 0.6
	}
	// Onsite offered against a remote wish, or the reverse.
	return 0.2
}

// computeWorkModeScore rates the offered work mode against the candidate's
// desired modes, keeping the best pairing.
func computeWorkModeScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if p.WorkMode == "" {
		return neutral(0.2, "position_work_mode_missing")
	}

	details := map[string]any{"offered": string(p.WorkMode)}
	if len(c.DesiredWorkModes) == 0 {
		details["match"] = "no_preference"
		return 0.7, 0.8, details
	}

	best := 0.0
	for _, desired := range c.DesiredWorkModes {
		if s := workModePair(desired, p.WorkMode); s > best {
			best = s
		}
	}
	return best, 1.0, details
}

// computeContractScore rates the offered contract type against the
// candidate's preferences. Offering permanent to someone on fixed-term
// expectations is an upgrade, not a miss.
func computeContractScore(c *types.CandidateRecord, p *types.PositionRecord) (float64, float64, map[string]any) {
	if p.Contract == "" {
		return neutral(0.2, "position_contract_missing")
	}

	details := map[string]any{"offered": string(p.Contract)}
	if len(c.PreferredContracts) == 0 {
		details["match"] = "no_preference"
		return 0.7, 0.8, details
	}

	prefersFixedTerm := false
	for _, pref := range c.PreferredContracts {
		if pref == p.Contract {
			details["match"] = "preferred"
			return 1.0, 1.0, details
		}
		if pref == types.ContractFixedTerm {
			prefersFixedTerm = true
		}
	}
	if p.Contract == types.ContractPermanent && prefersFixedTerm {
		details["match"] = "permanent_upgrade"
		return 0.9, 1.0, details
	}
	details["match"] = "none"
	return 0.3, 1.0, details
}
