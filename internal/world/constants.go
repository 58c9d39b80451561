package world

// Maximum lengths for user-supplied identifiers
const (
	MaxSpotLength = 64
)

// Event log entry types
const (
	LogTypeItemPlaced = "item.placed"
	LogTypeInteract   = "world.interact"
)
