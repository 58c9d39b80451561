package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/event"
	"github.com/kettlewell/stranded/internal/logger"
	"github.com/kettlewell/stranded/internal/repository"
)

// MaxUsernameLength bounds registered usernames
const MaxUsernameLength = 32

// Service defines the interface for player operations
type Service interface {
	RegisterPlayer(ctx context.Context, username string, policy domain.ResourcePolicy) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, p *domain.Player) error
	Grant(ctx context.Context, playerID string, food, water, gold int) (*domain.Player, error)
}

// service implements the Service interface
type service struct {
	repo     repository.Player
	eventBus event.Bus
	cache    *playerCache
}

// NewService creates a new player service
func NewService(repo repository.Player, eventBus event.Bus, cacheConfig CacheConfig) Service {
	return &service{
		repo:     repo,
		eventBus: eventBus,
		cache:    newPlayerCache(cacheConfig),
	}
}

// RegisterPlayer creates a new player with zeroed counters
func (s *service) RegisterPlayer(ctx context.Context, username string, policy domain.ResourcePolicy) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("%w: username must be 1-%d characters", domain.ErrInvalidInput, MaxUsernameLength)
	}

	switch policy {
	case "":
		policy = domain.PolicyAllowDeficit
	case domain.PolicyAllowDeficit, domain.PolicyClampToZero:
	default:
		return nil, fmt.Errorf("%w: unknown resource policy %q", domain.ErrInvalidInput, policy)
	}

	p := &domain.Player{Username: username, Policy: policy}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		log.Error("Failed to create player", "error", err, "username", username)
		return nil, err
	}

	s.cache.Set(p)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewPlayerCreatedEvent(p.ID, p.Username)); err != nil {
			log.Warn("Failed to publish player created event", "error", err, "player_id", p.ID)
		}
	}

	log.Info("Player registered", "player_id", p.ID, "username", username)
	return p, nil
}

// GetPlayer returns the player by ID, served from cache when possible
func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if p, ok := s.cache.Get(playerID); ok {
		return p, nil
	}

	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(p)
	return p, nil
}

// GetPlayerByUsername returns the player by username. Always hits the
// repository; username lookups are rare compared to ID lookups.
func (s *service) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	p, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.cache.Set(p)
	return p, nil
}

// UpdatePlayer persists a modified player and refreshes the cache, so every
// write through this service keeps subsequent reads coherent. Callers that
// mutate counters outside Grant (the world's interaction flow) must persist
// through here rather than the repository.
func (s *service) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	if err := s.repo.UpdatePlayer(ctx, p); err != nil {
		logger.FromContext(ctx).Error("Failed to update player", "error", err, "player_id", p.ID)
		return err
	}

	s.cache.Set(p)
	return nil
}

// Grant adjusts a player's resource counters by the given deltas
// (admin/worldbuilding operation, routed through the player's policy)
func (s *service) Grant(ctx context.Context, playerID string, food, water, gold int) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	p.AddFood(food)
	p.AddWater(water)
	p.AddGold(gold)

	if err := s.UpdatePlayer(ctx, p); err != nil {
		return nil, err
	}

	log.Info("Resources granted", "player_id", playerID, "food", food, "water", water, "gold", gold)
	return p, nil
}
