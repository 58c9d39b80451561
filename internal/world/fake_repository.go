package world

import (
	"context"
	"fmt"
	"time"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/repository"
)

// FakePlacementRepository is a stateful in-memory implementation of
// repository.Placement for integration-style unit tests.
type FakePlacementRepository struct {
	placements []domain.Placement
	nextID     int
}

func NewFakePlacementRepository() *FakePlacementRepository {
	return &FakePlacementRepository{}
}

func (f *FakePlacementRepository) CreatePlacement(ctx context.Context, placement *domain.Placement) error {
	if placement.ID == "" {
		f.nextID++
		placement.ID = fmt.Sprintf("placement-%d", f.nextID)
	}
	placement.PlacedAt = time.Now().UTC()
	f.placements = append(f.placements, *placement)
	return nil
}

func (f *FakePlacementRepository) GetPlacementsBySpot(ctx context.Context, spot string) ([]domain.Placement, error) {
	var out []domain.Placement
	for _, p := range f.placements {
		if p.Spot == spot {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakePlacementRepository) DeletePlacement(ctx context.Context, placementID string) error {
	for i, p := range f.placements {
		if p.ID == placementID {
			f.placements = append(f.placements[:i], f.placements[i+1:]...)
			return nil
		}
	}
	return domain.ErrPlacementNotFound
}

// FakeEventLog captures logged events in memory.
type FakeEventLog struct {
	entries []repository.EventLogEntry
}

func NewFakeEventLog() *FakeEventLog {
	return &FakeEventLog{}
}

func (f *FakeEventLog) LogEvent(ctx context.Context, eventType string, playerID *string, payload map[string]interface{}) error {
	f.entries = append(f.entries, repository.EventLogEntry{
		ID:        int64(len(f.entries) + 1),
		EventType: eventType,
		PlayerID:  playerID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (f *FakeEventLog) GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	var out []repository.EventLogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := f.entries[i]
		if e.PlayerID != nil && *e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}
