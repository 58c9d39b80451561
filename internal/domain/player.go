package domain

import "time"

// ResourcePolicy controls how a player's resource counters respond to deltas
// that would take them below zero.
type ResourcePolicy string

const (
	// PolicyAllowDeficit lets counters go negative. This is the default:
	// debt/starvation handling belongs to whatever system reads the counters,
	// not to the items that mutate them.
	PolicyAllowDeficit ResourcePolicy = "allow_deficit"

	// PolicyClampToZero floors counters at zero after every delta.
	PolicyClampToZero ResourcePolicy = "clamp_to_zero"
)

// Player holds the three survival resource counters items operate on.
// Counters are plain ints with no bounds enforcement by default; items never
// clamp, and callers must not assume the counters stay non-negative.
type Player struct {
	ID        string         `json:"player_id" db:"player_id"`
	Username  string         `json:"username" db:"username"`
	Food      int            `json:"food" db:"food"`
	Water     int            `json:"water" db:"water"`
	Gold      int            `json:"gold" db:"gold"`
	Policy    ResourcePolicy `json:"policy" db:"policy"`
	CreatedAt time.Time      `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at,omitempty" db:"updated_at"`
}

// AddFood adjusts the food counter by delta, routed through the policy.
func (p *Player) AddFood(delta int) {
	p.Food = p.applyDelta(p.Food, delta)
}

// AddWater adjusts the water counter by delta, routed through the policy.
func (p *Player) AddWater(delta int) {
	p.Water = p.applyDelta(p.Water, delta)
}

// AddGold adjusts the gold counter by delta, routed through the policy.
func (p *Player) AddGold(delta int) {
	p.Gold = p.applyDelta(p.Gold, delta)
}

func (p *Player) applyDelta(current, delta int) int {
	next := current + delta
	if p.Policy == PolicyClampToZero && next < 0 {
		return 0
	}
	return next
}
