package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gsabatini/match-engine/internal/store"
	"github.com/gsabatini/match-engine/internal/types"
)

// decodeCandidate reads and validates a candidate record from the request body.
func decodeCandidate(r *http.Request) (*types.CandidateRecord, error) {
	var record types.CandidateRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// handleCreateCandidate stores a new candidate record.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	record, err := decodeCandidate(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate: "+err.Error())
		return
	}
	if !s.requireStore(w) {
		return
	}

	stored, err := s.store.SaveCandidate(r.Context(), record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleListCandidates lists stored candidates with optional filters.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	filters := store.CandidateFilters{
		Status:          r.URL.Query().Get("status"),
		ListeningReason: r.URL.Query().Get("listening_reason"),
		Region:          r.URL.Query().Get("region"),
		Limit:           parseQueryInt(r, "limit", 50, 200),
	}

	candidates, err := s.store.ListCandidates(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// handleGetCandidate retrieves a candidate by ID.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	stored, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleUpdateCandidate replaces a stored candidate record.
func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	record, err := decodeCandidate(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate: "+err.Error())
		return
	}
	// The path wins over any ID carried in the body
	record.ID = id.String()

	if !s.requireStore(w) {
		return
	}

	if _, err := s.store.GetCandidate(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	stored, err := s.store.SaveCandidate(r.Context(), record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteCandidate removes a candidate by ID.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	if err := s.store.DeleteCandidate(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Candidate not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
