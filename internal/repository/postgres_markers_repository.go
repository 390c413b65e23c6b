package repository

import (
	"context"
	"database/sql"
	"fmt"

	"pnw-map/internal/domain/model"
	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
)

type PostgresMarkersRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresMarkersRepository(client *database.PostgreSQLClient) repository.MarkersRepository {
	return &PostgresMarkersRepository{
		client: client,
	}
}

func (r *PostgresMarkersRepository) Create(ctx context.Context, marker *model.Marker) (*model.Marker, error) {
	query := `INSERT INTO markers (user_id, latitude, longitude, description, color)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	created := *marker
	err := r.client.DB.QueryRowContext(ctx, query,
		marker.OwnerID, marker.Latitude, marker.Longitude, marker.Description, string(marker.Color),
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create marker: %w (%v)", model.ErrPersistence, err)
	}

	return &created, nil
}

func (r *PostgresMarkersRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Marker, error) {
	query := `SELECT id, user_id, latitude, longitude, description, color, created_at
	          FROM markers WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.client.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch markers for user %s: %w (%v)", ownerID, model.ErrPersistence, err)
	}
	defer rows.Close()

	var markers []model.Marker
	for rows.Next() {
		var m model.Marker
		var color string
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Latitude, &m.Longitude, &m.Description, &color, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan marker row: %w", err)
		}
		m.Color = model.MarkerColor(color)
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("marker row iteration failed: %w", err)
	}

	return markers, nil
}

func (r *PostgresMarkersRepository) Delete(ctx context.Context, id string) error {
	result, err := r.client.DB.ExecContext(ctx, `DELETE FROM markers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete marker %s: %w (%v)", id, model.ErrPersistence, err)
	}

	affected, err := result.RowsAffected()
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("marker %s does not exist: %w", id, model.ErrPersistence)
	}

	return nil
}
