package item

import (
	"context"
	"fmt"

	"github.com/kettlewell/stranded/internal/domain"
	"github.com/kettlewell/stranded/internal/utils"
)

// Trader offers a randomized food-and-water-for-gold trade. Each application
// is independent: a fresh offer is drawn every time, nothing spans calls.
type Trader struct {
	roll RollFunc
}

// NewTrader creates a trader. A nil roll falls back to the process-wide RNG;
// tests inject fixed sequences for deterministic offers.
func NewTrader(roll RollFunc) *Trader {
	if roll == nil {
		roll = defaultRoll
	}
	return &Trader{roll: roll}
}

func defaultRoll(n int) int {
	return utils.RandomInt(0, n-1)
}

// Apply draws an offer and settles it against the player's gold. The trade is
// accepted when gold >= asking price (inclusive boundary); otherwise nothing
// changes. Never fails either way.
func (t *Trader) Apply(ctx context.Context, p *domain.Player, notify Notifier) {
	giveFood := t.roll(TraderMaxGive)
	giveWater := t.roll(TraderMaxGive)
	goldAsked := t.roll(TraderGoldSpread) + TraderMinGold

	notify.Notify(ctx, fmt.Sprintf("A wandering trader offers %d food and %d water for %d gold.", giveFood, giveWater, goldAsked))

	if p.Gold < goldAsked {
		notify.Notify(ctx, fmt.Sprintf("Trade declined: you cannot afford %d gold.", goldAsked))
		return
	}

	p.AddFood(giveFood)
	p.AddWater(giveWater)
	p.AddGold(-goldAsked)
	notify.Notify(ctx, fmt.Sprintf("Trade accepted! +%d food, +%d water, -%d gold.", giveFood, giveWater, goldAsked))
}

// Repeatable always returns true; a trader never leaves.
func (t *Trader) Repeatable() bool {
	return true
}
