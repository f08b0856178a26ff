// Package types provides the data model shared by the scoring, hierarchy, engine, and API layers.
package types

import "time"

// QualityTier classifies a score into a fixed ordered band.
type QualityTier string

// Quality tiers from best to worst.
const (
	TierExcellent  QualityTier = "excellent"
	TierGood       QualityTier = "good"
	TierAcceptable QualityTier = "acceptable"
	TierPoor       QualityTier = "poor"
)

// TierFor maps a score in [0,1] to its quality tier. The same classifier is
// used for component scores and for the overall score.
func TierFor(score float64) QualityTier {
	switch {
	case score > 0.8:
		return TierExcellent
	case score > 0.6:
		return TierGood
	case score >= 0.3:
		return TierAcceptable
	default:
		return TierPoor
	}
}

// Rank returns the tier's position for ordering, excellent first.
func (t QualityTier) Rank() int {
	switch t {
	case TierExcellent:
		return 0
	case TierGood:
		return 1
	case TierAcceptable:
		return 2
	default:
		return 3
	}
}

// ComponentScore is the full outcome of one component scorer: the raw score,
// the weight actually applied, how far that weight departs from the base
// matrix, and the evidence behind the number. Weighted is exactly Raw times
// Weight. Elapsed is measurement metadata, not part of the semantic result.
type ComponentScore struct {
	Component  string         `json:"component"`
	Raw        float64        `json:"raw"`
	Weight     float64        `json:"weight"`
	BaseWeight float64        `json:"base_weight"`
	Boost      float64        `json:"boost"`
	Weighted   float64        `json:"weighted"`
	Tier       QualityTier    `json:"tier"`
	Confidence float64        `json:"confidence"`
	Details    map[string]any `json:"details,omitempty"`
	Elapsed    time.Duration  `json:"elapsed_ns"`
}

// MatchResult is the complete, explainable outcome of evaluating one
// candidate against one position. The engine returns it by value and keeps
// no reference; identical inputs produce identical results except for the
// Elapsed measurement fields.
type MatchResult struct {
	CandidateID      string            `json:"candidate_id,omitempty"`
	PositionID       string            `json:"position_id,omitempty"`
	Overall          float64           `json:"overall"`
	RawScore         float64           `json:"raw_score"`
	Tier             QualityTier       `json:"tier"`
	Components       []ComponentScore  `json:"components"`
	CandidateLevel   HierarchicalLevel `json:"candidate_level"`
	PositionLevel    HierarchicalLevel `json:"position_level"`
	LevelGap         int               `json:"level_gap"`
	HierarchyPenalty float64           `json:"hierarchy_penalty"`
	LevelMismatch    bool              `json:"level_mismatch"`
	ListeningReason  ListeningReason   `json:"listening_reason"`
	Elapsed          time.Duration     `json:"elapsed_ns"`
}

// Component returns the named component score, or nil if absent.
func (r *MatchResult) Component(name string) *ComponentScore {
	for i := range r.Components {
		if r.Components[i].Component == name {
			return &r.Components[i]
		}
	}
	return nil
}

// NormalizeElapsed zeroes every Elapsed field. Two evaluations of the same
// inputs compare equal after normalization.
func (r *MatchResult) NormalizeElapsed() {
	r.Elapsed = 0
	for i := range r.Components {
		r.Components[i].Elapsed = 0
	}
}
