package weights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsabatini/match-engine/internal/types"
)

func TestNewRegistry_AllMatricesSumToOne(t *testing.T) {
	r := NewRegistry()

	for name, m := range r.Matrices() {
		assert.InDelta(t, 1.0, m.Sum(), SumTolerance, "matrix %s must sum to 1.0", name)
		assert.NoError(t, m.Validate(), "matrix %s", name)
	}
}

func TestRegistry_EveryReasonResolves(t *testing.T) {
	r := NewRegistry()

	for _, reason := range types.ListeningReasons() {
		m := r.Matrix(reason)
		assert.NoError(t, m.Validate(), "reason %s", reason)
	}
}

func TestRegistry_UnknownReasonFallsBackToBase(t *testing.T) {
	r := NewRegistry()

	got := r.Matrix("relocating_for_love")
	assert.Equal(t, r.Base(), got)

	// Base fallback means zero boost on every component.
	for _, c := range Components() {
		assert.Zero(t, r.Boost(c, "relocating_for_love"), "component %s", c)
	}
}

func TestRegistry_UnspecifiedUsesBase(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, r.Base(), r.Matrix(types.ReasonUnspecified))
	assert.Equal(t, r.Base(), r.Matrix(""))
}

func TestRegistry_Boost_ReflectsOverride(t *testing.T) {
	r := NewRegistry()

	// The compensation reason raises the compensation weight above base.
	boost := r.Boost(Compensation, types.ReasonCompensation)
	assert.Greater(t, boost, 0.0)
	assert.InDelta(t, 0.06, boost, 1e-9)

	// And lowers semantic below base.
	assert.Less(t, r.Boost(Semantic, types.ReasonCompensation), 0.0)
}

func TestNewRegistry_OverridesDifferFromBase(t *testing.T) {
	// Each built-in override is a genuinely different emphasis, not a copy.
	r := NewRegistry()
	base := r.Base()

	for _, reason := range types.ListeningReasons() {
		m := r.Matrix(reason)
		var moved float64
		for _, c := range Components() {
			moved += math.Abs(m.Weight(c) - base.Weight(c))
		}
		assert.Greater(t, moved, 0.0, "override %s should reweight at least one component", reason)
	}
}

func TestNewRegistryInternal_RejectsUnknownReasonKey(t *testing.T) {
	_, err := newRegistry(defaultBase, map[types.ListeningReason]Matrix{
		"quarter_life_crisis": defaultBase,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown listening reason")
}

func TestNewRegistryInternal_RejectsInvalidBase(t *testing.T) {
	bad := defaultBase
	bad[Semantic] += 0.5
	_, err := newRegistry(bad, defaultOverrides())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base matrix")
}
