package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_String(t *testing.T) {
	assert.Equal(t, "semantic", Semantic.String())
	assert.Equal(t, "comp_progression", CompProgression.String())
	assert.Equal(t, "listening_reason", ListeningReason.String())
	assert.Equal(t, "component(99)", Component(99).String())
}

func TestComponents_CanonicalOrder(t *testing.T) {
	comps := Components()
	require.Len(t, comps, NumComponents)
	assert.Equal(t, Semantic, comps[0])
	assert.Equal(t, Status, comps[NumComponents-1])

	// The order is the evaluation order; it must be stable.
	names := make([]string, 0, len(comps))
	for _, c := range comps {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{
		"semantic", "compensation", "comp_progression", "experience",
		"location", "sector", "contract", "timing",
		"work_mode", "motivations", "listening_reason", "status",
	}, names)
}

func TestParseComponent(t *testing.T) {
	c, err := ParseComponent("work_mode")
	require.NoError(t, err)
	assert.Equal(t, WorkMode, c)

	_, err = ParseComponent("charisma")
	assert.ErrorContains(t, err, "unknown component")
}

func TestMatrix_Validate(t *testing.T) {
	valid := defaultBase
	assert.NoError(t, valid.Validate())

	negative := defaultBase
	negative[Timing] = -0.01
	negative[Semantic] += 0.06 // keep the sum at 1.0 so negativity is what fails
	err := negative.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	short := defaultBase
	short[Semantic] -= 0.05
	err = short.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum")
}

func TestMatrix_Validate_Tolerance(t *testing.T) {
	m := defaultBase
	m[Status] += 5e-7 // inside the 1e-6 tolerance
	assert.NoError(t, m.Validate())

	m = defaultBase
	m[Status] += 1e-4 // outside
	assert.Error(t, m.Validate())
}

func TestMatrixFromMap_RequiresCompleteMatrix(t *testing.T) {
	complete := defaultBase.Map()
	m, err := MatrixFromMap(complete)
	require.NoError(t, err)
	assert.Equal(t, defaultBase, m)

	partial := defaultBase.Map()
	delete(partial, "timing")
	_, err = MatrixFromMap(partial)
	require.Error(t, err, "partial matrices must be rejected, not merged")

	unknown := defaultBase.Map()
	delete(unknown, "timing")
	unknown["charisma"] = 0.05
	_, err = MatrixFromMap(unknown)
	assert.ErrorContains(t, err, "unknown component")
}
