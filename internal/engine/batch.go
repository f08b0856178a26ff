package engine

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gsabatini/match-engine/internal/types"
)

// DefaultBatchLimit bounds batch concurrency when the caller passes no limit.
const DefaultBatchLimit = 4

// EvaluateBatch evaluates the candidate against every position, fanning the
// independent evaluations out over at most limit goroutines (limit <= 0 uses
// DefaultBatchLimit). Results come back in input order regardless of which
// evaluation finished first.
func (e *Engine) EvaluateBatch(ctx context.Context, c *types.CandidateRecord, positions []*types.PositionRecord, limit int) ([]types.MatchResult, error) {
	if c == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	for i, p := range positions {
		if p == nil {
			return nil, fmt.Errorf("position %d is nil", i)
		}
	}
	if limit <= 0 {
		limit = DefaultBatchLimit
	}

	results := make([]types.MatchResult, len(positions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range positions {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = e.Evaluate(c, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch evaluation failed: %w", err)
	}
	return results, nil
}

// Rank returns a copy of the results sorted by overall score descending.
// Ties break on position id so equal scores still order deterministically.
func Rank(results []types.MatchResult) []types.MatchResult {
	ranked := make([]types.MatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Overall != ranked[j].Overall {
			return ranked[i].Overall > ranked[j].Overall
		}
		return ranked[i].PositionID < ranked[j].PositionID
	})
	return ranked
}
