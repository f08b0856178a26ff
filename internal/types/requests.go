// Package types provides the data model shared by the scoring, hierarchy, engine, and API layers.
package types

import "github.com/go-playground/validator/v10"

// EvaluateRequest carries one inline candidate/position pair for scoring.
type EvaluateRequest struct {
	Candidate *CandidateRecord `json:"candidate" validate:"required"`
	Position  *PositionRecord  `json:"position" validate:"required"`
}

// BatchEvaluateRequest carries one candidate and the positions to rank it
// against. Limit bounds evaluation concurrency; zero means the server default.
type BatchEvaluateRequest struct {
	Candidate *CandidateRecord  `json:"candidate" validate:"required"`
	Positions []*PositionRecord `json:"positions" validate:"required,min=1,dive,required"`
	Limit     int               `json:"limit,omitempty" validate:"gte=0"`
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := validate.Struct(r.Candidate); err != nil {
		return err
	}
	return validate.Struct(r.Position)
}

// Validate validates the BatchEvaluateRequest using the validator.
func (r *BatchEvaluateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if err := validate.Struct(r.Candidate); err != nil {
		return err
	}
	for _, p := range r.Positions {
		if err := validate.Struct(p); err != nil {
			return err
		}
	}
	return nil
}
