package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gsabatini/match-engine/internal/types"
)

// defaultListLimit bounds list queries when no limit is given.
const defaultListLimit = 50

// SaveCandidate inserts or updates a candidate record. A zero ID is
// replaced with a fresh UUID before the write.
func (s *Store) SaveCandidate(ctx context.Context, record *types.CandidateRecord) (*StoredCandidate, error) {
	if record == nil {
		return nil, fmt.Errorf("candidate record cannot be nil")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate ID %q: %w", record.ID, err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidate: %w", err)
	}

	stored := StoredCandidate{ID: id, Record: *record}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO candidates (id, full_name, status, listening_reason, region, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		     full_name = $2,
		     status = $3,
		     listening_reason = $4,
		     region = $5,
		     record = $6,
		     updated_at = NOW()
		 RETURNING created_at, updated_at`,
		id, record.FullName, string(record.Status), string(record.Reason()), record.Region, payload,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save candidate: %w", err)
	}

	return &stored, nil
}

// GetCandidate retrieves a candidate by ID. Returns ErrNotFound when the
// record does not exist.
func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (*StoredCandidate, error) {
	var (
		stored  StoredCandidate
		payload []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, record, created_at, updated_at FROM candidates WHERE id = $1`,
		id,
	).Scan(&stored.ID, &payload, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	if err := json.Unmarshal(payload, &stored.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate record: %w", err)
	}
	return &stored, nil
}

// DeleteCandidate removes a candidate by ID. Returns ErrNotFound when no
// row was deleted.
func (s *Store) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCandidates retrieves candidates matching the given filters, most
// recently updated first.
func (s *Store) ListCandidates(ctx context.Context, filters CandidateFilters) ([]StoredCandidate, error) {
	query, args := candidateListQuery(filters)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []StoredCandidate
	for rows.Next() {
		var (
			stored  StoredCandidate
			payload []byte
		)
		if err := rows.Scan(&stored.ID, &payload, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(payload, &stored.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate record: %w", err)
		}
		candidates = append(candidates, stored)
	}
	return candidates, nil
}

// candidateListQuery builds the filtered list query and its arguments.
func candidateListQuery(filters CandidateFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, record, created_at, updated_at FROM candidates WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.ListeningReason != "" {
		query += fmt.Sprintf(" AND listening_reason = $%d", argNum)
		args = append(args, filters.ListeningReason)
		argNum++
	}
	if filters.Region != "" {
		query += fmt.Sprintf(" AND region ILIKE $%d", argNum)
		args = append(args, filters.Region)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	return query, args
}
