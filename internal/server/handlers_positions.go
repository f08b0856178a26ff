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

// decodePosition reads and validates a position record from the request body.
func decodePosition(r *http.Request) (*types.PositionRecord, error) {
	var record types.PositionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// handleCreatePosition stores a new position record.
func (s *Server) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	record, err := decodePosition(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position: "+err.Error())
		return
	}
	if !s.requireStore(w) {
		return
	}

	stored, err := s.store.SavePosition(r.Context(), record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleListPositions lists stored positions with optional filters.
func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}

	filters := store.PositionFilters{
		Company: r.URL.Query().Get("company"),
		Sector:  r.URL.Query().Get("sector"),
		Region:  r.URL.Query().Get("region"),
		Limit:   parseQueryInt(r, "limit", 50, 200),
	}

	positions, err := s.store.ListPositions(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": positions,
		"count":     len(positions),
	})
}

// handleGetPosition retrieves a position by ID.
func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	stored, err := s.store.GetPosition(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Position not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleUpdatePosition replaces a stored position record.
func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	record, err := decodePosition(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position: "+err.Error())
		return
	}
	// The path wins over any ID carried in the body
	record.ID = id.String()

	if !s.requireStore(w) {
		return
	}

	if _, err := s.store.GetPosition(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Position not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	stored, err := s.store.SavePosition(r.Context(), record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeletePosition removes a position by ID.
func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}
	if !s.requireStore(w) {
		return
	}

	if err := s.store.DeletePosition(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Position not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
