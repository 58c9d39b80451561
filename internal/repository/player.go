package repository

import (
	"context"

	"github.com/kettlewell/stranded/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
}
