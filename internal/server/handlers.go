package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

// maxBatchLimit caps the per-request concurrency override.
const maxBatchLimit = 64

// parseQueryInt parses an integer query parameter with default and max values.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// handleEvaluate scores one inline candidate/position pair.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result := s.engine.Evaluate(req.Candidate, req.Position)
	s.jsonResponse(w, http.StatusOK, result)
}

// effectiveBatchLimit resolves the concurrency cap for a batch request.
// The limit query parameter overrides the body value; both are capped at
// maxBatchLimit.
func effectiveBatchLimit(r *http.Request, bodyLimit int) int {
	return parseQueryInt(r, "limit", min(bodyLimit, maxBatchLimit), maxBatchLimit)
}

// handleEvaluateBatch scores one candidate against many positions and
// returns the results ranked best-first. The limit query parameter
// overrides the request body's concurrency cap.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchEvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	limit := effectiveBatchLimit(r, req.Limit)

	results, err := s.engine.EvaluateBatch(r.Context(), req.Candidate, req.Positions, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Evaluation failed: "+err.Error())
		return
	}

	ranked := engine.Rank(results)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": req.Candidate.ID,
		"results":      ranked,
		"count":        len(ranked),
	})
}

// matrixView is the explainability payload for one weight matrix.
type matrixView struct {
	Weights map[string]float64 `json:"weights"`
	Boosts  map[string]float64 `json:"boosts,omitempty"`
}

// handleGetWeights exposes the active weight matrices and the per-reason
// boosts relative to the base matrix.
func (s *Server) handleGetWeights(w http.ResponseWriter, _ *http.Request) {
	components := make([]string, 0, weights.NumComponents)
	for _, c := range weights.Components() {
		components = append(components, c.String())
	}

	matrices := make(map[string]matrixView)
	for name, matrix := range s.registry.Matrices() {
		view := matrixView{Weights: matrix.Map()}
		if name != "base" {
			view.Boosts = make(map[string]float64, weights.NumComponents)
			for _, c := range weights.Components() {
				view.Boosts[c.String()] = s.registry.Boost(c, types.ListeningReason(name))
			}
		}
		matrices[name] = view
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"components": components,
		"matrices":   matrices,
	})
}
