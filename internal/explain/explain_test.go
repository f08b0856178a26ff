package explain

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gsabatini/match-engine/internal/types"
)

func sampleResult() *types.MatchResult {
	return &types.MatchResult{
		CandidateID:      "cand-1",
		PositionID:       "pos-1",
		Overall:          0.704,
		RawScore:         0.8,
		Tier:             types.TierGood,
		ListeningReason:  types.ReasonNoGrowth,
		CandidateLevel:   types.LevelSenior,
		PositionLevel:    types.LevelManager,
		LevelGap:         -1,
		HierarchyPenalty: 0.12,
		Components: []types.ComponentScore{
			{Component: "semantic", Raw: 0.85, Weight: 0.22, Boost: 0.02, Weighted: 0.187},
			{Component: "compensation", Raw: 0.5, Weight: 0.10, Boost: 0, Weighted: 0.05,
				Details: map[string]any{"degraded": "desired_salary_missing"}},
			{Component: "listening_reason", Raw: 1.0, Weight: 0.04, Boost: -0.01, Weighted: 0.04},
		},
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "cand-1")
	assert.Contains(t, output, "pos-1")
	assert.Contains(t, output, "no_growth")
	assert.Contains(t, output, "0.704")
	assert.Contains(t, output, "good")
	assert.Contains(t, output, "12% for level gap -1")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintComponents(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintComponents(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "COMPONENT BREAKDOWN")
	assert.Contains(t, output, "semantic")
	assert.Contains(t, output, "0.85")
	// boosted component marked, degraded component flagged
	assert.Contains(t, output, "0.22+")
	assert.Contains(t, output, "0.04-")
	assert.Contains(t, output, "!")
	assert.Contains(t, output, "█")
}

func TestPrintHierarchy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintHierarchy(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "HIERARCHY")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "manager")
	assert.Contains(t, output, "underqualified")
	assert.Contains(t, output, "12%")
	assert.NotContains(t, output, "LEVEL MISMATCH")
}

func TestPrintHierarchy_Mismatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := sampleResult()
	r.CandidateLevel = types.LevelDirection
	r.PositionLevel = types.LevelJunior
	r.LevelGap = 4
	r.LevelMismatch = true

	p.PrintHierarchy(r)
	output := buf.String()

	assert.Contains(t, output, "overqualified")
	assert.Contains(t, output, "LEVEL MISMATCH")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{PositionID: "pos-a", Overall: 0.91, Tier: types.TierExcellent},
		{PositionID: "pos-b", Overall: 0.55, Tier: types.TierAcceptable, LevelMismatch: true},
	}

	p.PrintRanking(results)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES")
	assert.Contains(t, output, "#1  pos-a")
	assert.Contains(t, output, "#2  pos-b")
	assert.Contains(t, output, "0.910")
	assert.Contains(t, output, "⚠")
}

func TestPrintRanking_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{PositionID: "pos", Overall: 0.5, Tier: types.TierAcceptable}
	}

	p.PrintRanking(results)
	output := buf.String()

	assert.Contains(t, output, "and 3 more positions")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(nil)

	assert.Empty(t, buf.String())
}

func TestScoreBar(t *testing.T) {
	tests := []struct {
		score  float64
		filled int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.7, 10},
		{-0.2, 0},
	}

	for _, tt := range tests {
		bar := scoreBar(tt.score)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "score %v", tt.score)
		assert.Equal(t, barWidth-tt.filled, strings.Count(bar, "░"), "score %v", tt.score)
	}
}

func TestPrintVerbose_RendersAllPanels(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerbose(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "COMPONENT BREAKDOWN")
	assert.Contains(t, output, "HIERARCHY")
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
}
