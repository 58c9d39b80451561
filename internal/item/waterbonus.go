package item

import (
	"context"
	"fmt"

	"github.com/kettlewell/stranded/internal/domain"
)

// WaterBonus grants a fixed amount of water on every application,
// regardless of the player's current state.
type WaterBonus struct {
	repeating bool
}

// NewWaterBonus creates a water bonus. repeating controls whether the item
// survives an application; it is fixed for the lifetime of the item.
func NewWaterBonus(repeating bool) *WaterBonus {
	return &WaterBonus{repeating: repeating}
}

// Apply adds the fixed water amount to the player. Always succeeds.
func (b *WaterBonus) Apply(ctx context.Context, p *domain.Player, notify Notifier) {
	p.AddWater(WaterBonusAmount)
	notify.Notify(ctx, fmt.Sprintf("You found fresh water! +%d water.", WaterBonusAmount))
}

// Repeatable returns the flag set at construction.
func (b *WaterBonus) Repeatable() bool {
	return b.repeating
}
