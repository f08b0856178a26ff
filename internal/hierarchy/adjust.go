package hierarchy

import "github.com/gsabatini/match-engine/internal/types"

// AdjusterConfig tunes how level gaps discount a raw match score.
type AdjusterConfig struct {
	// OverqualifiedPenalty applies per level when the candidate sits above
	// the position. Overqualified hires churn, so this is the steeper side.
	OverqualifiedPenalty float64
	// UnderqualifiedPenalty applies per level when the candidate sits below
	// the position.
	UnderqualifiedPenalty float64
	// MaxPenalty caps the total discount so a score is reduced, never erased.
	MaxPenalty float64
	// MismatchThreshold is the absolute level gap beyond which the pair is
	// flagged as a structural mismatch.
	MismatchThreshold int
}

// DefaultAdjusterConfig returns the standard adjustment parameters.
func DefaultAdjusterConfig() AdjusterConfig {
	return AdjusterConfig{
		OverqualifiedPenalty:  0.20,
		UnderqualifiedPenalty: 0.12,
		MaxPenalty:            0.8,
		MismatchThreshold:     2,
	}
}

// Adjustment is the outcome of applying hierarchy compatibility to a raw
// score.
type Adjustment struct {
	CandidateLevel types.HierarchicalLevel
	PositionLevel  types.HierarchicalLevel
	// Gap is candidate minus position: positive means overqualified.
	Gap      int
	Penalty  float64
	Mismatch bool
	Adjusted float64
}

// Adjust discounts a raw score in [0,1] by the level gap between candidate
// and position. A zero gap passes the score through untouched; the result
// never goes below zero.
func (cfg AdjusterConfig) Adjust(candidate, position types.HierarchicalLevel, raw float64) Adjustment {
	gap := int(candidate) - int(position)
	distance := gap
	if distance < 0 {
		distance = -distance
	}

	var perLevel float64
	switch {
	case gap > 0:
		perLevel = cfg.OverqualifiedPenalty
	case gap < 0:
		perLevel = cfg.UnderqualifiedPenalty
	}

	penalty := perLevel * float64(distance)
	if penalty > cfg.MaxPenalty {
		penalty = cfg.MaxPenalty
	}

	adjusted := raw * (1 - penalty)
	if adjusted < 0 {
		adjusted = 0
	}

	return Adjustment{
		CandidateLevel: candidate,
		PositionLevel:  position,
		Gap:            gap,
		Penalty:        penalty,
		Mismatch:       distance > cfg.MismatchThreshold,
		Adjusted:       adjusted,
	}
}
