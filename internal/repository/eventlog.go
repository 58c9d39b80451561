package repository

import (
	"context"
	"time"
)

// EventLog defines the interface for event logging storage
type EventLog interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, eventType string, playerID *string, payload map[string]interface{}) error

	// GetEventsByPlayer retrieves events for a specific player, newest first
	GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]EventLogEntry, error)
}

// EventLogEntry represents a logged event
type EventLogEntry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	PlayerID  *string                `json:"player_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}
