package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// fullCandidate returns a candidate with every field populated so no scorer
// degrades.
func fullCandidate() *types.CandidateRecord {
	return &types.CandidateRecord{
		ID:                 "cand-1",
		FullName:           "Ada Moretti",
		CurrentTitle:       "Backend Developer",
		YearsExperience:    5,
		Skills:             []string{"go", "postgres", "kafka"},
		CurrentSalary:      fptr(45000),
		DesiredSalary:      fptr(50000),
		City:               "Milan",
		Province:           "MI",
		Region:             "Lombardy",
		Sectors:            []string{"fintech"},
		PreferredContracts: []types.ContractType{types.ContractPermanent},
		DesiredWorkModes:   []types.WorkMode{types.WorkModeHybrid},
		NoticeWeeks:        iptr(4),
		Motivations:        []string{"growth", "flexibility"},
		ListeningReason:    types.ReasonNoGrowth,
		Status:             types.StatusActive,
	}
}

func fullPosition() *types.PositionRecord {
	return &types.PositionRecord{
		ID:               "pos-1",
		Title:            "Backend Developer",
		Company:          "Acme",
		RequiredSkills:   []string{"go", "postgres"},
		PreferredSkills:  []string{"kafka"},
		YearsMin:         3,
		YearsMax:         8,
		SalaryMin:        fptr(45000),
		SalaryMax:        fptr(55000),
		City:             "Milan",
		Province:         "MI",
		Region:           "Lombardy",
		WorkMode:         types.WorkModeHybrid,
		Sector:           "fintech",
		Contract:         types.ContractPermanent,
		StartWithinWeeks: iptr(6),
		Attributes:       []string{types.AttrGrowth, types.AttrFlexibility},
	}
}

func TestNew_RequiresRegistry(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	e, err := New(weights.NewRegistry())
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestEvaluate_RawScoreIsSumOfWeightedScores(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	result := e.Evaluate(fullCandidate(), fullPosition())

	require.Len(t, result.Components, weights.NumComponents)
	var sum float64
	for _, cs := range result.Components {
		assert.Equal(t, cs.Raw*cs.Weight, cs.Weighted, "component %s", cs.Component)
		sum += cs.Weighted
	}
	assert.InDelta(t, sum, result.RawScore, 1e-9)
}

func TestEvaluate_ComponentsInCanonicalOrder(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	result := e.Evaluate(fullCandidate(), fullPosition())

	for i, comp := range weights.Components() {
		assert.Equal(t, comp.String(), result.Components[i].Component)
	}
}

func TestEvaluate_ReasonSelectsMatrix(t *testing.T) {
	reg := weights.NewRegistry()
	e, err := New(reg)
	require.NoError(t, err)

	c := fullCandidate()
	c.ListeningReason = types.ReasonCompensation
	result := e.Evaluate(c, fullPosition())

	assert.Equal(t, types.ReasonCompensation, result.ListeningReason)

	comp := result.Component("compensation")
	require.NotNil(t, comp)
	assert.InDelta(t, reg.Matrix(types.ReasonCompensation).Weight(weights.Compensation), comp.Weight, 1e-12)
	assert.Greater(t, comp.Boost, 0.0, "the compensation reason boosts the compensation weight")
}

func TestEvaluate_UnknownReasonUsesBaseVerbatim(t *testing.T) {
	reg := weights.NewRegistry()
	e, err := New(reg)
	require.NoError(t, err)

	c := fullCandidate()
	c.ListeningReason = "alien_abduction"
	result := e.Evaluate(c, fullPosition())

	assert.Equal(t, types.ReasonUnspecified, result.ListeningReason)
	for i, comp := range weights.Components() {
		cs := result.Components[i]
		assert.Equal(t, reg.Base().Weight(comp), cs.Weight, "component %s", cs.Component)
		assert.Zero(t, cs.Boost, "component %s", cs.Component)
	}
}

func TestEvaluate_NoGapMeansNoAdjustment(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	// Both sides classify as confirmed.
	result := e.Evaluate(fullCandidate(), fullPosition())

	assert.Equal(t, 0, result.LevelGap)
	assert.Zero(t, result.HierarchyPenalty)
	assert.Equal(t, result.RawScore, result.Overall)
	assert.False(t, result.LevelMismatch)
}

func TestEvaluate_DirectionVersusJuniorIsMismatch(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	// A senior financial-leadership profile against an entry-level opening.
	c := fullCandidate()
	c.CurrentTitle = "Chief Financial Officer"
	c.YearsExperience = 15

	p := fullPosition()
	p.Title = "Junior Accountant"
	p.YearsMin = 0
	p.YearsMax = 2

	result := e.Evaluate(c, p)

	assert.Equal(t, types.LevelDirection, result.CandidateLevel)
	assert.Equal(t, types.LevelJunior, result.PositionLevel)
	assert.True(t, result.LevelMismatch)
	assert.Less(t, result.Overall, result.RawScore, "the adjusted score must drop below the raw score")
	assert.Greater(t, result.HierarchyPenalty, 0.0)
}

func TestEvaluate_TierMatchesOverall(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	result := e.Evaluate(fullCandidate(), fullPosition())
	assert.Equal(t, types.TierFor(result.Overall), result.Tier)
}

func TestEvaluate_Idempotent(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	c := fullCandidate()
	p := fullPosition()

	first := e.Evaluate(c, p)
	second := e.Evaluate(c, p)

	// Elapsed fields are measurement metadata; everything else must be
	// bit-for-bit identical.
	first.NormalizeElapsed()
	second.NormalizeElapsed()
	assert.Equal(t, first, second)
}

func TestEvaluate_EmptyRecordsStayInRange(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	result := e.Evaluate(&types.CandidateRecord{}, &types.PositionRecord{})

	assert.GreaterOrEqual(t, result.Overall, 0.0)
	assert.LessOrEqual(t, result.Overall, 1.0)
	assert.GreaterOrEqual(t, result.RawScore, 0.0)
	assert.LessOrEqual(t, result.RawScore, 1.0)
	require.Len(t, result.Components, weights.NumComponents)
}

func TestEvaluate_IdsCarriedThrough(t *testing.T) {
	e, err := New(weights.NewRegistry())
	require.NoError(t, err)

	result := e.Evaluate(fullCandidate(), fullPosition())
	assert.Equal(t, "cand-1", result.CandidateID)
	assert.Equal(t, "pos-1", result.PositionID)
}
