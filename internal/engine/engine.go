// Package engine aggregates the component scorers, the weight registry, and
// the hierarchy adjustment into full match evaluations.
package engine

import (
	"fmt"
	"time"

	"github.com/gsabatini/match-engine/internal/hierarchy"
	"github.com/gsabatini/match-engine/internal/scoring"
	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

// Config tunes an engine beyond its weight registry.
type Config struct {
	Adjuster hierarchy.AdjusterConfig
}

// Engine evaluates candidate/position pairs. It holds no per-evaluation
// state, so one engine serves concurrent callers.
type Engine struct {
	registry *weights.Registry
	adjuster hierarchy.AdjusterConfig
}

// New builds an engine with the default hierarchy adjustment parameters.
func New(registry *weights.Registry) (*Engine, error) {
	return NewWithConfig(registry, Config{Adjuster: hierarchy.DefaultAdjusterConfig()})
}

// NewWithConfig builds an engine with explicit adjustment parameters.
func NewWithConfig(registry *weights.Registry, cfg Config) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("weight registry is required")
	}
	return &Engine{registry: registry, adjuster: cfg.Adjuster}, nil
}

// Evaluate scores one candidate against one position. Both records must be
// non-nil; missing fields inside them degrade individual components instead
// of failing. The call is synchronous, deterministic, and does no I/O:
// identical inputs yield identical results apart from the Elapsed fields.
func (e *Engine) Evaluate(c *types.CandidateRecord, p *types.PositionRecord) types.MatchResult {
	start := time.Now()

	reason := c.Reason()
	matrix := e.registry.Matrix(reason)
	base := e.registry.Base()

	// Run every scorer in canonical order and sum the weighted scores.
	components := make([]types.ComponentScore, 0, weights.NumComponents)
	rawSum := 0.0
	for _, comp := range weights.Components() {
		cs := scoring.Score(comp, c, p, matrix.Weight(comp), base.Weight(comp))
		rawSum += cs.Weighted
		components = append(components, cs)
	}
	if rawSum < 0 {
		rawSum = 0
	} else if rawSum > 1 {
		rawSum = 1
	}

	candLevel := hierarchy.DetectCandidateLevel(c)
	posLevel := hierarchy.DetectPositionLevel(p)
	adj := e.adjuster.Adjust(candLevel, posLevel, rawSum)

	return types.MatchResult{
		CandidateID:      c.ID,
		PositionID:       p.ID,
		Overall:          adj.Adjusted,
		RawScore:         rawSum,
		Tier:             types.TierFor(adj.Adjusted),
		Components:       components,
		CandidateLevel:   candLevel,
		PositionLevel:    posLevel,
		LevelGap:         adj.Gap,
		HierarchyPenalty: adj.Penalty,
		LevelMismatch:    adj.Mismatch,
		ListeningReason:  reason,
		Elapsed:          time.Since(start),
	}
}
