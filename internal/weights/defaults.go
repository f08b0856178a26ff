package weights

import "github.com/gsabatini/match-engine/internal/types"

// Built-in matrices. Each one is complete and sums to exactly 1.00; the
// registry re-validates them at construction. The base matrix applies when a
// candidate's listening reason is unspecified or unknown; each known reason
// fully replaces it.
var (
	defaultBase = Matrix{
		Semantic:        0.20,
		Compensation:    0.12,
		CompProgression: 0.08,
		Experience:      0.10,
		Location:        0.10,
		Sector:          0.08,
		Contract:        0.07,
		Timing:          0.05,
		WorkMode:        0.07,
		Motivations:     0.06,
		ListeningReason: 0.04,
		Status:          0.03,
	}

	// Leaving for money: compensation and progression carry the match.
	defaultCompensation = Matrix{
		Semantic:        0.16,
		Compensation:    0.18,
		CompProgression: 0.14,
		Experience:      0.08,
		Location:        0.08,
		Sector:          0.06,
		Contract:        0.06,
		Timing:          0.04,
		WorkMode:        0.06,
		Motivations:     0.06,
		ListeningReason: 0.05,
		Status:          0.03,
	}

	// Wrong role: what the work actually is dominates.
	defaultRoleMismatch = Matrix{
		Semantic:        0.26,
		Compensation:    0.08,
		CompProgression: 0.05,
		Experience:      0.10,
		Location:        0.08,
		Sector:          0.12,
		Contract:        0.05,
		Timing:          0.04,
		WorkMode:        0.06,
		Motivations:     0.09,
		ListeningReason: 0.04,
		Status:          0.03,
	}

	// Stuck in place: growth signals and fit outweigh pay.
	defaultNoGrowth = Matrix{
		Semantic:        0.22,
		Compensation:    0.10,
		CompProgression: 0.10,
		Experience:      0.12,
		Location:        0.07,
		Sector:          0.08,
		Contract:        0.05,
		Timing:          0.04,
		WorkMode:        0.05,
		Motivations:     0.10,
		ListeningReason: 0.04,
		Status:          0.03,
	}

	// Needs flexibility: work mode and location dominate.
	defaultNoFlexibility = Matrix{
		Semantic:        0.16,
		Compensation:    0.09,
		CompProgression: 0.05,
		Experience:      0.08,
		Location:        0.14,
		Sector:          0.06,
		Contract:        0.09,
		Timing:          0.05,
		WorkMode:        0.15,
		Motivations:     0.06,
		ListeningReason: 0.04,
		Status:          0.03,
	}
)

func defaultOverrides() map[types.ListeningReason]Matrix {
	return map[types.ListeningReason]Matrix{
		types.ReasonCompensation:  defaultCompensation,
		types.ReasonRoleMismatch:  defaultRoleMismatch,
		types.ReasonNoGrowth:      defaultNoGrowth,
		types.ReasonNoFlexibility: defaultNoFlexibility,
	}
}
