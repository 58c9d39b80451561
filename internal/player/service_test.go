package player

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/event"
)

func newTestService(t *testing.T) (Service, *FakeRepository, *event.MemoryBus) {
	t.Helper()
	repo := NewFakeRepository()
	bus := event.NewMemoryBus()
	svc := NewService(repo, bus, DefaultCacheConfig())
	return svc, repo, bus
}

func TestRegisterPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates player with zeroed counters", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		p, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "castaway", p.Username)
		assert.Equal(t, 0, p.Food)
		assert.Equal(t, 0, p.Water)
		assert.Equal(t, 0, p.Gold)
		assert.Equal(t, domain.PolicyAllowDeficit, p.Policy)
	})

	t.Run("accepts clamp policy", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		p, err := svc.RegisterPlayer(ctx, "castaway", domain.PolicyClampToZero)
		require.NoError(t, err)
		assert.Equal(t, domain.PolicyClampToZero, p.Policy)
	})

	t.Run("rejects unknown policy", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RegisterPlayer(ctx, "castaway", "saturate")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RegisterPlayer(ctx, "   ", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects overlong username", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RegisterPlayer(ctx, strings.Repeat("x", MaxUsernameLength+1), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		_, err = svc.RegisterPlayer(ctx, "castaway", "")
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("publishes player created event", func(t *testing.T) {
		svc, _, bus := newTestService(t)

		var received []event.Event
		bus.Subscribe(event.PlayerCreated, func(ctx context.Context, e event.Event) error {
			received = append(received, e)
			return nil
		})

		p, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		require.Len(t, received, 1)
		payload, ok := received[0].Payload.(event.PlayerCreatedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, p.ID, payload.PlayerID)
		assert.Equal(t, "castaway", payload.Username)
	})
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored player", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		got, err := svc.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "castaway", got.Username)
	})

	t.Run("serves repeated lookups from cache", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		// Remove from the repo; a cache hit still answers
		delete(repo.players, created.ID)

		got, err := svc.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.GetPlayer(ctx, "no-such-player")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestGetPlayerByUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.RegisterPlayer(ctx, "castaway", "")
	require.NoError(t, err)

	got, err := svc.GetPlayerByUsername(ctx, "castaway")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetPlayerByUsername(ctx, "stranger")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGrant(t *testing.T) {
	ctx := context.Background()

	t.Run("adjusts counters and persists", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		updated, err := svc.Grant(ctx, created.ID, 2, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Food)
		assert.Equal(t, 3, updated.Water)
		assert.Equal(t, 10, updated.Gold)

		stored, err := repo.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, stored.Gold)
	})

	t.Run("negative deltas may drive counters below zero", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		updated, err := svc.Grant(ctx, created.ID, -2, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, -2, updated.Food)
	})

	t.Run("clamp policy stops at zero", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", domain.PolicyClampToZero)
		require.NoError(t, err)

		updated, err := svc.Grant(ctx, created.ID, -2, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Food)
	})

	t.Run("refreshes the cache", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		_, err = svc.Grant(ctx, created.ID, 0, 0, 7)
		require.NoError(t, err)

		got, err := svc.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Gold)
	})

	t.Run("unknown player", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Grant(ctx, "no-such-player", 1, 1, 1)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}

func TestUpdatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and refreshes the cache", func(t *testing.T) {
		svc, repo, _ := newTestService(t)

		created, err := svc.RegisterPlayer(ctx, "castaway", "")
		require.NoError(t, err)

		// Warm the cache with the pre-update counters.
		_, err = svc.GetPlayer(ctx, created.ID)
		require.NoError(t, err)

		created.Water = 5
		require.NoError(t, svc.UpdatePlayer(ctx, created))

		stored, err := repo.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Water)

		got, err := svc.GetPlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Water)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		missing := &domain.Player{ID: "no-such-player", Username: "ghost"}
		err := svc.UpdatePlayer(ctx, missing)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})
}
