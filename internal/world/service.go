package world

import (
	"context"
	"fmt"
	"strings"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/event"
	"github.com/kettlewell/stranded/internal/item"
	"github.com/kettlewell/stranded/internal/logger"
	"github.com/kettlewell/stranded/internal/metrics"
	"github.com/kettlewell/stranded/internal/player"
	"github.com/kettlewell/stranded/internal/repository"
)

// InteractResult describes what happened when a player interacted with a spot.
type InteractResult struct {
	Player   domain.Player `json:"player"`
	Messages []string      `json:"messages"`
	Applied  []string      `json:"applied"`
	Removed  []string      `json:"removed,omitempty"`
}

// Service defines the interface for world operations
type Service interface {
	PlaceItem(ctx context.Context, spot, itemName string) (*domain.Placement, error)
	ListPlacements(ctx context.Context, spot string) ([]domain.Placement, error)
	Interact(ctx context.Context, playerID, spot string) (*InteractResult, error)
}

// service implements the Service interface
type service struct {
	players    player.Service
	placements repository.Placement
	eventLog   repository.EventLog
	registry   *item.Registry
	eventBus   event.Bus
}

// NewService creates a new world service
func NewService(players player.Service, placements repository.Placement, eventLog repository.EventLog, registry *item.Registry, eventBus event.Bus) Service {
	return &service{
		players:    players,
		placements: placements,
		eventLog:   eventLog,
		registry:   registry,
		eventBus:   eventBus,
	}
}

// PlaceItem drops a catalog item at the named spot
func (s *service) PlaceItem(ctx context.Context, spot, itemName string) (*domain.Placement, error) {
	log := logger.FromContext(ctx)

	spot = strings.TrimSpace(spot)
	if spot == "" || len(spot) > MaxSpotLength {
		return nil, fmt.Errorf("%w: spot must be 1-%d characters", domain.ErrInvalidInput, MaxSpotLength)
	}

	if _, ok := s.registry.Get(itemName); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrItemNotFound, itemName)
	}

	placement := &domain.Placement{
		Spot:     spot,
		ItemName: itemName,
	}
	if err := s.placements.CreatePlacement(ctx, placement); err != nil {
		log.Error("Failed to create placement", "error", err, "spot", spot, "item", itemName)
		return nil, err
	}

	metrics.ItemsPlaced.WithLabelValues(itemName).Inc()
	s.logEntry(ctx, LogTypeItemPlaced, nil, map[string]interface{}{
		"placement_id": placement.ID,
		"spot":         spot,
		"item":         itemName,
	})

	log.Info("Item placed", "spot", spot, "item", itemName, "placement_id", placement.ID)
	return placement, nil
}

// ListPlacements returns the placements at a spot in placement order
func (s *service) ListPlacements(ctx context.Context, spot string) ([]domain.Placement, error) {
	return s.placements.GetPlacementsBySpot(ctx, spot)
}

// Interact applies every item placed at the spot to the player, in placement
// order. One-shot items are removed after applying; the updated player is
// persisted once at the end.
func (s *service) Interact(ctx context.Context, playerID, spot string) (*InteractResult, error) {
	log := logger.FromContext(ctx)

	p, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	placed, err := s.placements.GetPlacementsBySpot(ctx, spot)
	if err != nil {
		return nil, err
	}
	if len(placed) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrSpotEmpty, spot)
	}

	collector := &item.Collector{}
	notify := item.Tee(collector, item.LogNotifier{})

	result := &InteractResult{
		Applied: make([]string, 0, len(placed)),
	}

	for _, placement := range placed {
		it, ok := s.registry.Get(placement.ItemName)
		if !ok {
			// Placement refers to an item dropped from the catalog.
			// Skip it rather than failing the whole interaction.
			log.Warn("Placement references unknown item", "item", placement.ItemName, "placement_id", placement.ID)
			continue
		}

		def, _ := s.registry.GetDef(placement.ItemName)
		goldBefore := p.Gold

		it.Apply(ctx, p, notify)
		result.Applied = append(result.Applied, placement.ItemName)
		metrics.ItemsApplied.WithLabelValues(placement.ItemName).Inc()

		if def.Kind == domain.KindTrader {
			accepted := p.Gold != goldBefore
			if accepted {
				metrics.TradesAccepted.Inc()
			} else {
				metrics.TradesDeclined.Inc()
			}
			s.publish(ctx, event.NewTradeOutcomeEvent(playerID, accepted, p.Gold))
		}

		consumed := !it.Repeatable()
		if consumed {
			if err := s.placements.DeletePlacement(ctx, placement.ID); err != nil {
				log.Error("Failed to remove consumed placement", "error", err, "placement_id", placement.ID)
				return nil, err
			}
			result.Removed = append(result.Removed, placement.ItemName)
			metrics.ItemsConsumed.WithLabelValues(placement.ItemName).Inc()
		}
		s.publish(ctx, event.NewItemAppliedEvent(playerID, placement.ItemName, spot, consumed))
		if consumed {
			s.publish(ctx, event.NewItemConsumedEvent(playerID, placement.ItemName, spot))
		}
	}

	if err := s.players.UpdatePlayer(ctx, p); err != nil {
		log.Error("Failed to persist player after interaction", "error", err, "player_id", playerID)
		return nil, err
	}

	result.Player = *p
	result.Messages = collector.Lines()

	s.logEntry(ctx, LogTypeInteract, &playerID, map[string]interface{}{
		"spot":    spot,
		"applied": result.Applied,
		"removed": result.Removed,
		"food":    p.Food,
		"water":   p.Water,
		"gold":    p.Gold,
	})

	log.Info("Spot interaction complete",
		"player_id", playerID,
		"spot", spot,
		"applied", len(result.Applied),
		"removed", len(result.Removed))

	return result, nil
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "error", err, "type", e.Type)
	}
}

func (s *service) logEntry(ctx context.Context, logType string, playerID *string, payload map[string]interface{}) {
	if s.eventLog == nil {
		return
	}
	if err := s.eventLog.LogEvent(ctx, logType, playerID, payload); err != nil {
		logger.FromContext(ctx).Warn("Failed to write event log entry", "error", err, "type", logType)
	}
}
