package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/gsabatini/match-engine/internal/types"
)

// StoredCandidate is a candidate record together with its storage metadata.
type StoredCandidate struct {
	ID        uuid.UUID             `json:"id"`
	Record    types.CandidateRecord `json:"record"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// StoredPosition is a position record together with its storage metadata.
type StoredPosition struct {
	ID        uuid.UUID            `json:"id"`
	Record    types.PositionRecord `json:"record"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// CandidateFilters holds optional filters for listing candidates.
type CandidateFilters struct {
	Status          string
	ListeningReason string
	Region          string
	Limit           int
}

// PositionFilters holds optional filters for listing positions.
type PositionFilters struct {
	Company string
	Sector  string
	Region  string
	Limit   int
}
