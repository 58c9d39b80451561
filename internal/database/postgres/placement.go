package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kettlewell/stranded/internal/domain"
)

// PlacementRepository implements the world placement repository for PostgreSQL
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new PlacementRepository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{db: db}
}

// CreatePlacement inserts a new placement and fills in the generated ID and timestamp
func (r *PlacementRepository) CreatePlacement(ctx context.Context, placement *domain.Placement) error {
	query := `
		INSERT INTO placements (spot, item_name, placed_at)
		VALUES ($1, $2, NOW())
		RETURNING placement_id, placed_at
	`

	err := r.db.QueryRow(ctx, query, placement.Spot, placement.ItemName).
		Scan(&placement.ID, &placement.PlacedAt)
	if err != nil {
		return fmt.Errorf("failed to insert placement: %w", err)
	}

	return nil
}

// GetPlacementsBySpot returns the placements at a spot in placement order
func (r *PlacementRepository) GetPlacementsBySpot(ctx context.Context, spot string) ([]domain.Placement, error) {
	query := `
		SELECT placement_id, spot, item_name, placed_at
		FROM placements
		WHERE spot = $1
		ORDER BY placed_at, placement_id
	`

	rows, err := r.db.Query(ctx, query, spot)
	if err != nil {
		return nil, fmt.Errorf("failed to query placements: %w", err)
	}
	defer rows.Close()

	var placements []domain.Placement
	for rows.Next() {
		var p domain.Placement
		if err := rows.Scan(&p.ID, &p.Spot, &p.ItemName, &p.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan placement: %w", err)
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate placements: %w", err)
	}

	return placements, nil
}

// DeletePlacement removes a placement. Returns domain.ErrPlacementNotFound when absent.
func (r *PlacementRepository) DeletePlacement(ctx context.Context, placementID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM placements WHERE placement_id = $1`, placementID)
	if err != nil {
		return fmt.Errorf("failed to delete placement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlacementNotFound, placementID)
	}

	return nil
}
