package item

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettlewell/stranded/internal/domain"
)

// fixedRolls returns a RollFunc that replays the given values in order.
// The trader draws giveFood, giveWater, goldAsked-1 per application.
func fixedRolls(t *testing.T, values ...int) RollFunc {
	t.Helper()
	i := 0
	return func(n int) int {
		require.Less(t, i, len(values), "trader drew more rolls than the test provided")
		v := values[i]
		i++
		require.Less(t, v, n, "stubbed roll out of range")
		return v
	}
}

func TestTrader_Apply_AcceptedScenario(t *testing.T) {
	// Offer (giveFood=2, giveWater=1, goldAsked=3) against gold=5
	trader := NewTrader(fixedRolls(t, 2, 1, 2))
	p := &domain.Player{Gold: 5, Food: 0, Water: 0}
	collector := &Collector{}

	trader.Apply(context.Background(), p, collector)

	assert.Equal(t, 2, p.Food)
	assert.Equal(t, 1, p.Water)
	assert.Equal(t, 2, p.Gold)
	require.Len(t, collector.Lines(), 2)
	assert.Contains(t, strings.ToLower(collector.Lines()[1]), "accepted")
}

func TestTrader_Apply_AffordabilityBoundaryInclusive(t *testing.T) {
	// gold == goldAsked exactly: trade goes through
	trader := NewTrader(fixedRolls(t, 1, 2, 2)) // goldAsked = 3
	p := &domain.Player{Gold: 3}
	collector := &Collector{}

	trader.Apply(context.Background(), p, collector)

	assert.Equal(t, 1, p.Food)
	assert.Equal(t, 2, p.Water)
	assert.Equal(t, 0, p.Gold)
	assert.Contains(t, strings.ToLower(collector.Lines()[1]), "accepted")
}

func TestTrader_Apply_OneGoldShortDeclined(t *testing.T) {
	// gold == goldAsked-1: declined, no partial effects
	trader := NewTrader(fixedRolls(t, 2, 2, 2)) // goldAsked = 3
	p := &domain.Player{Gold: 2, Food: 4, Water: 6}
	collector := &Collector{}

	trader.Apply(context.Background(), p, collector)

	assert.Equal(t, 4, p.Food, "declined trade must not change food")
	assert.Equal(t, 6, p.Water, "declined trade must not change water")
	assert.Equal(t, 2, p.Gold, "declined trade must not change gold")
	require.Len(t, collector.Lines(), 2)
	assert.Contains(t, strings.ToLower(collector.Lines()[1]), "declined")
}

func TestTrader_Apply_ZeroGoldNeverTrades(t *testing.T) {
	// goldAsked is always >= 1, so a broke player can never trade
	for roll := 0; roll < TraderGoldSpread; roll++ {
		trader := NewTrader(fixedRolls(t, 0, 0, roll))
		p := &domain.Player{Gold: 0}
		collector := &Collector{}

		trader.Apply(context.Background(), p, collector)

		assert.Equal(t, 0, p.Food)
		assert.Equal(t, 0, p.Water)
		assert.Equal(t, 0, p.Gold)
		assert.Contains(t, strings.ToLower(collector.Lines()[1]), "declined")
	}
}

func TestTrader_Apply_DrawRanges(t *testing.T) {
	// With the production roll, offers must stay inside the documented ranges
	trader := NewTrader(nil)

	for i := 0; i < 2000; i++ {
		// Rich player so every offer settles and deltas expose the draws
		p := &domain.Player{Gold: 1_000_000}
		trader.Apply(context.Background(), p, &Collector{})

		giveFood := p.Food
		giveWater := p.Water
		goldAsked := 1_000_000 - p.Gold

		assert.GreaterOrEqual(t, giveFood, 0)
		assert.Less(t, giveFood, TraderMaxGive)
		assert.GreaterOrEqual(t, giveWater, 0)
		assert.Less(t, giveWater, TraderMaxGive)
		assert.GreaterOrEqual(t, goldAsked, TraderMinGold)
		assert.Less(t, goldAsked, TraderMinGold+TraderGoldSpread)
	}
}

func TestTrader_Apply_FreshOfferPerCall(t *testing.T) {
	// Two applications draw two independent offers from the sequence
	trader := NewTrader(fixedRolls(t, 0, 0, 0, 2, 2, 2))
	p := &domain.Player{Gold: 10}

	trader.Apply(context.Background(), p, &Collector{})
	assert.Equal(t, 9, p.Gold, "first offer asks 1 gold")

	trader.Apply(context.Background(), p, &Collector{})
	assert.Equal(t, 6, p.Gold, "second offer asks 3 gold")
	assert.Equal(t, 2, p.Food)
	assert.Equal(t, 2, p.Water)
}

func TestTrader_Repeatable_AlwaysTrue(t *testing.T) {
	trader := NewTrader(nil)

	assert.True(t, trader.Repeatable())
	trader.Apply(context.Background(), &domain.Player{Gold: 5}, &Collector{})
	assert.True(t, trader.Repeatable())
}
