package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gsabatini/match-engine/internal/types"
)

func TestComputeLocationScore_Ladder(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.CandidateRecord
		position  types.PositionRecord
		want      float64
	}{
		{
			name:      "remote position trumps geography",
			candidate: types.CandidateRecord{City: "Turin"},
			position:  types.PositionRecord{WorkMode: types.WorkModeRemote, City: "Palermo"},
			want:      1.0,
		},
		{
			name:      "same city",
			candidate: types.CandidateRecord{City: "Milan", Province: "MI", Region: "Lombardy"},
			position:  types.PositionRecord{City: "milan", Province: "MI", Region: "Lombardy"},
			want:      1.0,
		},
		{
			name:      "same province different city",
			candidate: types.CandidateRecord{City: "Legnano", Province: "MI", Region: "Lombardy"},
			position:  types.PositionRecord{City: "Milan", Province: "MI", Region: "Lombardy"},
			want:      0.85,
		},
		{
			name:      "same region different province",
			candidate: types.CandidateRecord{City: "Bergamo", Province: "BG", Region: "Lombardy"},
			position:  types.PositionRecord{City: "Milan", Province: "MI", Region: "Lombardy"},
			want:      0.6,
		},
		{
			name:      "relocation willingness",
			candidate: types.CandidateRecord{City: "Palermo", Province: "PA", Region: "Sicily", WillingToRelocate: true},
			position:  types.PositionRecord{City: "Milan", Province: "MI", Region: "Lombardy"},
			want:      0.5,
		},
		{
			name:      "no geographic overlap",
			candidate: types.CandidateRecord{City: "Palermo", Province: "PA", Region: "Sicily"},
			position:  types.PositionRecord{City: "Milan", Province: "MI", Region: "Lombardy"},
			want:      0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _, _ := computeLocationScore(&tt.candidate, &tt.position)
			assert.InDelta(t, tt.want, raw, 1e-9)
		})
	}
}

func TestComputeLocationScore_MissingData(t *testing.T) {
	raw, confidence, details := computeLocationScore(&types.CandidateRecord{City: "Milan"}, &types.PositionRecord{})
	assert.Equal(t, 0.5, raw)
	assert.InDelta(t, 0.2, confidence, 1e-9)
	assert.Equal(t, "position_location_missing", details["degraded"])

	raw, _, details = computeLocationScore(&types.CandidateRecord{WillingToRelocate: true}, &types.PositionRecord{City: "Milan"})
	assert.InDelta(t, 0.5, raw, 1e-9)
	assert.Equal(t, "relocation", details["match"])

	raw, confidence, details = computeLocationScore(&types.CandidateRecord{}, &types.PositionRecord{City: "Milan"})
	assert.Equal(t, 0.5, raw)
	assert.InDelta(t, 0.2, confidence, 1e-9)
	assert.Equal(t, "candidate_location_missing", details["degraded"])
}

func TestComputeTimingScore(t *testing.T) {
	tests := []struct {
		name   string
		notice *int
		start  *int
		want   float64
	}{
		{name: "notice inside window", notice: iptr(2), start: iptr(4), want: 1.0},
		{name: "immediate start", notice: iptr(0), start: iptr(1), want: 1.0},
		{name: "one week overrun", notice: iptr(5), start: iptr(4), want: 0.85},
		{name: "three weeks overrun", notice: iptr(7), start: iptr(4), want: 0.55},
		{name: "huge overrun floors at 0.2", notice: iptr(30), start: iptr(2), want: 0.2},
		{name: "no deadline accepts any notice", notice: iptr(12), start: nil, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.CandidateRecord{NoticeWeeks: tt.notice}
			p := &types.PositionRecord{StartWithinWeeks: tt.start}

			raw, _, _ := computeTimingScore(c, p)
			assert.InDelta(t, tt.want, raw, 1e-9)
		})
	}
}

func TestComputeTimingScore_MissingNotice(t *testing.T) {
	raw, confidence, details := computeTimingScore(&types.CandidateRecord{}, &types.PositionRecord{StartWithinWeeks: iptr(4)})

	assert.Equal(t, 0.5, raw)
	assert.InDelta(t, 0.2, confidence, 1e-9)
	assert.Equal(t, "candidate_notice_missing", details["degraded"])
}

func TestComputeWorkModeScore(t *testing.T) {
	tests := []struct {
		name    string
		desired []types.WorkMode
		offered types.WorkMode
		want    float64
	}{
		{name: "exact match", desired: []types.WorkMode{types.WorkModeRemote}, offered: types.WorkModeRemote, want: 1.0},
		{name: "hybrid softens a remote wish", desired: []types.WorkMode{types.WorkModeRemote}, offered: types.WorkModeHybrid, want: 0.6},
		{name: "hybrid wish meets onsite offer", desired: []types.WorkMode{types.WorkModeHybrid}, offered: types.WorkModeOnsite, want: 0.6},
		{name: "onsite offer against remote wish", desired: []types.WorkMode{types.WorkModeRemote}, offered: types.WorkModeOnsite, want: 0.2},
		{name: "best desired mode wins", desired: []types.WorkMode{types.WorkModeOnsite, types.WorkModeRemote}, offered: types.WorkModeRemote, want: 1.0},
		{name: "no preference", desired: nil, offered: types.WorkModeOnsite, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.CandidateRecord{DesiredWorkModes: tt.desired}
			p := &types.PositionRecord{WorkMode: tt.offered}

			raw, _, _ := computeWorkModeScore(c, p)
			assert.InDelta(t, tt.want, raw, 1e-9)
		})
	}
}

func TestComputeWorkModeScore_MissingOffered(t *testing.T) {
	raw, confidence, details := computeWorkModeScore(&types.CandidateRecord{DesiredWorkModes: []types.WorkMode{types.WorkModeRemote}}, &types.PositionRecord{})

	assert.Equal(t, 0.5, raw)
	assert.InDelta(t, 0.2, confidence, 1e-9)
	assert.Equal(t, "position_work_mode_missing", details["degraded"])
}

func TestComputeContractScore(t *testing.T) {
	tests := []struct {
		name      string
		preferred []types.ContractType
		offered   types.ContractType
		want      float64
	}{
		{name: "preferred type offered", preferred: []types.ContractType{types.ContractPermanent}, offered: types.ContractPermanent, want: 1.0},
		{name: "no preference", preferred: nil, offered: types.ContractFixedTerm, want: 0.7},
		{name: "permanent upgrade over fixed-term wish", preferred: []types.ContractType{types.ContractFixedTerm}, offered: types.ContractPermanent, want: 0.9},
		{name: "mismatched type", preferred: []types.ContractType{types.ContractPermanent}, offered: types.ContractFreelance, want: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &types.CandidateRecord{PreferredContracts: tt.preferred}
			p := &types.PositionRecord{Contract: tt.offered}

			raw, _, _ := computeContractScore(c, p)
			assert.InDelta(t, tt.want, raw, 1e-9)
		})
	}
}

func TestComputeContractScore_MissingOffered(t *testing.T) {
	raw, confidence, details := computeContractScore(&types.CandidateRecord{}, &types.PositionRecord{})

	assert.Equal(t, 0.5, raw)
	assert.InDelta(t, 0.2, confidence, 1e-9)
	assert.Equal(t, "position_contract_missing", details["degraded"])
}
