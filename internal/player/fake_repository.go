package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kettlewell/stranded/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Player for integration-style unit tests. It lives in the
// player package so tests elsewhere can reuse it without import cycles.
type FakeRepository struct {
	players map[string]*domain.Player // keyed by player ID
	nextID  int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		players: make(map[string]*domain.Player),
	}
}

func (f *FakeRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	for _, p := range f.players {
		if strings.EqualFold(p.Username, player.Username) {
			return domain.ErrDuplicateUsername
		}
	}
	if player.ID == "" {
		f.nextID++
		player.ID = fmt.Sprintf("player-%d", f.nextID)
	}
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now
	stored := *player
	f.players[player.ID] = &stored
	return nil
}

func (f *FakeRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	p, ok := f.players[playerID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *FakeRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	for _, p := range f.players {
		if strings.EqualFold(p.Username, username) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrPlayerNotFound
}

func (f *FakeRepository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if _, ok := f.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	player.UpdatedAt = time.Now().UTC()
	stored := *player
	f.players[player.ID] = &stored
	return nil
}
