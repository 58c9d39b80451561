package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kettlewell/stranded/internal/metrics"
)

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event types emitted by the item system
const (
	ItemApplied   Type = "item.applied"
	ItemConsumed  Type = "item.consumed"
	TradeAccepted Type = "trade.accepted"
	TradeDeclined Type = "trade.declined"
	PlayerCreated Type = "player.created"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// ItemAppliedPayloadV1 is the typed payload for item application events
type ItemAppliedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	ItemName  string `json:"item_name"`
	Spot      string `json:"spot,omitempty"`
	Consumed  bool   `json:"consumed"`
	Timestamp int64  `json:"timestamp"`
}

// TradeOutcomePayloadV1 is the typed payload for trade settlement events
type TradeOutcomePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Accepted  bool   `json:"accepted"`
	GoldAfter int    `json:"gold_after"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerCreatedPayloadV1 is the typed payload for player registration events
type PlayerCreatedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// NewItemAppliedEvent creates a new item application event
func NewItemAppliedEvent(playerID, itemName, spot string, consumed bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemApplied,
		Payload: ItemAppliedPayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Spot:      spot,
			Consumed:  consumed,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemConsumedEvent creates an event for a one-shot item being removed
// from the world after application
func NewItemConsumedEvent(playerID, itemName, spot string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemConsumed,
		Payload: ItemAppliedPayloadV1{
			PlayerID:  playerID,
			ItemName:  itemName,
			Spot:      spot,
			Consumed:  true,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTradeOutcomeEvent creates a trade accepted/declined event
func NewTradeOutcomeEvent(playerID string, accepted bool, goldAfter int) Event {
	eventType := TradeDeclined
	if accepted {
		eventType = TradeAccepted
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: TradeOutcomePayloadV1{
			PlayerID:  playerID,
			Accepted:  accepted,
			GoldAfter: goldAfter,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlayerCreatedEvent creates a player registration event
func NewPlayerCreatedEvent(playerID, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerCreated,
		Payload: PlayerCreatedPayloadV1{
			PlayerID:  playerID,
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously in
// subscription order; handler errors are aggregated, not fatal to other
// handlers.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
