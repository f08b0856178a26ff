package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  QualityTier
	}{
		{name: "well above excellent threshold", score: 0.95, want: TierExcellent},
		{name: "exactly 0.8 is good, not excellent", score: 0.8, want: TierGood},
		{name: "just above 0.8 is excellent", score: 0.8001, want: TierExcellent},
		{name: "exactly 0.6 is acceptable", score: 0.6, want: TierAcceptable},
		{name: "mid band is good", score: 0.7, want: TierGood},
		{name: "exactly 0.3 is acceptable", score: 0.3, want: TierAcceptable},
		{name: "below 0.3 is poor", score: 0.2999, want: TierPoor},
		{name: "zero is poor", score: 0, want: TierPoor},
		{name: "one is excellent", score: 1, want: TierExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.score))
		})
	}
}

func TestQualityTier_Rank_Ordering(t *testing.T) {
	assert.Less(t, TierExcellent.Rank(), TierGood.Rank())
	assert.Less(t, TierGood.Rank(), TierAcceptable.Rank())
	assert.Less(t, TierAcceptable.Rank(), TierPoor.Rank())
}

func TestHierarchicalLevel_String(t *testing.T) {
	assert.Equal(t, "junior", LevelJunior.String())
	assert.Equal(t, "confirmed", LevelConfirmed.String())
	assert.Equal(t, "senior", LevelSenior.String())
	assert.Equal(t, "manager", LevelManager.String())
	assert.Equal(t, "direction", LevelDirection.String())
	assert.Equal(t, "unknown", HierarchicalLevel(0).String())
	assert.Equal(t, "unknown", HierarchicalLevel(9).String())
}

func TestHierarchicalLevel_Valid(t *testing.T) {
	assert.True(t, LevelJunior.Valid())
	assert.True(t, LevelDirection.Valid())
	assert.False(t, HierarchicalLevel(0).Valid())
	assert.False(t, HierarchicalLevel(6).Valid())
}

func TestMatchResult_Component(t *testing.T) {
	r := MatchResult{
		Components: []ComponentScore{
			{Component: "semantic", Raw: 0.9},
			{Component: "timing", Raw: 0.4},
		},
	}

	got := r.Component("timing")
	require.NotNil(t, got)
	assert.Equal(t, 0.4, got.Raw)
	assert.Nil(t, r.Component("nonexistent"))
}

func TestMatchResult_NormalizeElapsed(t *testing.T) {
	r := MatchResult{
		Elapsed: 5 * time.Millisecond,
		Components: []ComponentScore{
			{Component: "semantic", Elapsed: time.Millisecond},
			{Component: "status", Elapsed: 2 * time.Microsecond},
		},
	}

	r.NormalizeElapsed()

	assert.Zero(t, r.Elapsed)
	for _, cs := range r.Components {
		assert.Zero(t, cs.Elapsed)
	}
}
