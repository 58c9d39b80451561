package repository

import (
	"context"

	"github.com/kettlewell/stranded/internal/domain"
)

// Placement defines the interface for world placement persistence
type Placement interface {
	CreatePlacement(ctx context.Context, placement *domain.Placement) error
	GetPlacementsBySpot(ctx context.Context, spot string) ([]domain.Placement, error)
	DeletePlacement(ctx context.Context, placementID string) error
}
