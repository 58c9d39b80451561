package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kettlewell/stranded/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, playerID *string, payload map[string]interface{}) error {
	query := `
		INSERT INTO event_log (event_type, player_id, payload)
		VALUES ($1, $2, $3)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, eventType, playerID, payloadJSON); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// GetEventsByPlayer retrieves events for a specific player, newest first
func (r *eventLogRepository) GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, event_type, player_id, payload, created_at
		FROM event_log
		WHERE player_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var entries []repository.EventLogEntry
	for rows.Next() {
		var entry repository.EventLogEntry
		var payloadJSON []byte

		if err := rows.Scan(&entry.ID, &entry.EventType, &entry.PlayerID, &payloadJSON, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if len(payloadJSON) > 0 {
			if err := json.Unmarshal(payloadJSON, &entry.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event payload: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return entries, nil
}
