package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gsabatini/match-engine/internal/types"
)

// SavePosition inserts or updates a position record. A zero ID is replaced
// with a fresh UUID before the write.
func (s *Store) SavePosition(ctx context.Context, record *types.PositionRecord) (*StoredPosition, error) {
	if record == nil {
		return nil, fmt.Errorf("position record cannot be nil")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid position ID %q: %w", record.ID, err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal position: %w", err)
	}

	stored := StoredPosition{ID: id, Record: *record}
	err = s.pool.QueryRow(ctx,
		`INSERT INTO positions (id, title, company, sector, region, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		     title = $2,
		     company = $3,
		     sector = $4,
		     region = $5,
		     record = $6,
		     updated_at = NOW()
		 RETURNING created_at, updated_at`,
		id, record.Title, record.Company, record.Sector, record.Region, payload,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save position: %w", err)
	}

	return &stored, nil
}

// GetPosition retrieves a position by ID. Returns ErrNotFound when the
// record does not exist.
func (s *Store) GetPosition(ctx context.Context, id uuid.UUID) (*StoredPosition, error) {
	var (
		stored  StoredPosition
		payload []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, record, created_at, updated_at FROM positions WHERE id = $1`,
		id,
	).Scan(&stored.ID, &payload, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	if err := json.Unmarshal(payload, &stored.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal position record: %w", err)
	}
	return &stored, nil
}

// DeletePosition removes a position by ID. Returns ErrNotFound when no row
// was deleted.
func (s *Store) DeletePosition(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPositions retrieves positions matching the given filters, most
// recently updated first.
func (s *Store) ListPositions(ctx context.Context, filters PositionFilters) ([]StoredPosition, error) {
	query, args := positionListQuery(filters)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []StoredPosition
	for rows.Next() {
		var (
			stored  StoredPosition
			payload []byte
		)
		if err := rows.Scan(&stored.ID, &payload, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		if err := json.Unmarshal(payload, &stored.Record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal position record: %w", err)
		}
		positions = append(positions, stored)
	}
	return positions, nil
}

// positionListQuery builds the filtered list query and its arguments.
func positionListQuery(filters PositionFilters) (string, []any) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, record, created_at, updated_at FROM positions WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.Sector != "" {
		query += fmt.Sprintf(" AND sector = $%d", argNum)
		args = append(args, filters.Sector)
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
