package domain

import "time"

// Placement is an item instance placed at a named spot in the world.
// The world service applies the item when a player interacts with the spot
// and removes the placement afterwards if the item is not repeatable.
type Placement struct {
	ID       string    `json:"placement_id" db:"placement_id"`
	Spot     string    `json:"spot" db:"spot"`
	ItemName string    `json:"item_name" db:"item_name"`
	PlacedAt time.Time `json:"placed_at,omitempty" db:"placed_at"`
}
