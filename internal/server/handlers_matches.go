package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/store"
	"github.com/gsabatini/match-engine/internal/types"
)

// handleRankCandidate ranks a stored candidate against stored positions.
// Results are computed on demand and never persisted.
func (s *Server) handleRankCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	filters := store.PositionFilters{
		Company: r.URL.Query().Get("company"),
		Sector:  r.URL.Query().Get("sector"),
		Region:  r.URL.Query().Get("region"),
		Limit:   parseQueryInt(r, "positions", 100, 500),
	}
	positions, err := s.store.ListPositions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if len(positions) == 0 {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"candidate_id": candidateID,
			"matches":      []types.MatchResult{},
			"count":        0,
		})
		return
	}

	records := make([]*types.PositionRecord, len(positions))
	for i := range positions {
		records[i] = &positions[i].Record
	}

	limit := parseQueryInt(r, "limit", 0, maxBatchLimit)
	results, err := s.engine.EvaluateBatch(r.Context(), &candidate.Record, records, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Evaluation failed: "+err.Error())
		return
	}

	ranked := engine.Rank(results)
	if top := parseQueryInt(r, "top", 0, 0); top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"matches":      ranked,
		"count":        len(ranked),
	})
}

// handleEvaluatePair evaluates one stored candidate/position pair.
func (s *Server) handleEvaluatePair(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidate_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	positionID, err := uuid.Parse(r.PathValue("position_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	position, err := s.store.GetPosition(r.Context(), positionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Position not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := s.engine.Evaluate(&candidate.Record, &position.Record)
	s.jsonResponse(w, http.StatusOK, result)
}
