// Package scoring implements the component scorers that judge one dimension
// of a candidate/position pair each. Scorers are pure functions: no I/O, no
// shared state, no errors. Missing input degrades a score to neutral 0.5
// with low confidence instead of failing the evaluation.
package scoring

import (
	"time"

	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

// scorerFunc computes one component's raw score in [0,1], the confidence in
// that score, and the evidence details behind it.
type scorerFunc func(c *types.CandidateRecord, p *types.PositionRecord) (raw, confidence float64, details map[string]any)

// scorers binds every component to its implementation. The array is indexed
// by Component, so a missing binding is a compile-visible gap, not a silent
// map miss.
var scorers = [weights.NumComponents]scorerFunc{
	weights.Semantic:        computeSemanticScore,
	weights.Compensation:    computeCompensationScore,
	weights.CompProgression: computeCompProgressionScore,
	weights.Experience:      computeExperienceScore,
	weights.Location:        computeLocationScore,
	weights.Sector:          computeSectorScore,
	weights.Contract:        computeContractScore,
	weights.Timing:          computeTimingScore,
	weights.WorkMode:        computeWorkModeScore,
	weights.Motivations:     computeMotivationsScore,
	weights.ListeningReason: computeListeningReasonScore,
	weights.Status:          computeStatusScore,
}

// Score runs one component scorer and assembles the complete ComponentScore:
// raw score, the weight the active matrix assigns, the boost over the base
// weight, and weighted = raw * weight exactly.
func Score(component weights.Component, c *types.CandidateRecord, p *types.PositionRecord, weight, base float64) types.ComponentScore {
	start := time.Now()
	raw, confidence, details := scorers[component](c, p)
	raw = clamp01(raw)
	return types.ComponentScore{
		Component:  component.String(),
		Raw:        raw,
		Weight:     weight,
		BaseWeight: base,
		Boost:      weight - base,
		Weighted:   raw * weight,
		Tier:       types.TierFor(raw),
		Confidence: clamp01(confidence),
		Details:    details,
		Elapsed:    time.Since(start),
	}
}

// neutral is the degraded outcome for missing input: the scorer abstains at
// 0.5 and says why in the details.
func neutral(confidence float64, reason string) (float64, float64, map[string]any) {
	return 0.5, confidence, map[string]any{"degraded": reason}
}
