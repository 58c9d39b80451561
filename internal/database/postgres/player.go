package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kettlewell/stranded/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// CreatePlayer inserts a new player and fills in the generated ID and timestamps
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (username, food, water, gold, policy, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING player_id, created_at, updated_at
	`

	policy := player.Policy
	if policy == "" {
		policy = domain.PolicyAllowDeficit
	}

	err := r.db.QueryRow(ctx, query, player.Username, player.Food, player.Water, player.Gold, string(policy)).
		Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, player.Username)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}

	player.Policy = policy
	return nil
}

// GetPlayer fetches a player by ID. Returns domain.ErrPlayerNotFound when absent.
func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	query := `
		SELECT player_id, username, food, water, gold, policy, created_at, updated_at
		FROM players
		WHERE player_id = $1
	`
	return r.scanPlayer(r.db.QueryRow(ctx, query, playerID))
}

// GetPlayerByUsername fetches a player by username. Returns domain.ErrPlayerNotFound when absent.
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `
		SELECT player_id, username, food, water, gold, policy, created_at, updated_at
		FROM players
		WHERE username = $1
	`
	return r.scanPlayer(r.db.QueryRow(ctx, query, username))
}

// UpdatePlayer persists the player's resource counters
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET food = $1, water = $2, gold = $3, policy = $4, updated_at = NOW()
		WHERE player_id = $5
	`

	tag, err := r.db.Exec(ctx, query, player.Food, player.Water, player.Gold, string(player.Policy), player.ID)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, player.ID)
	}

	return nil
}

func (r *PlayerRepository) scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var policy string

	err := row.Scan(&p.ID, &p.Username, &p.Food, &p.Water, &p.Gold, &policy, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}

	p.Policy = domain.ResourcePolicy(policy)
	return &p, nil
}
